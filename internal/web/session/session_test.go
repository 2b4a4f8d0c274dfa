package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dseza/portal/internal/web/session"
)

const cookieName = "test_session"

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	session.Init(nil, session.Config{Expiration: time.Minute, CookieName: cookieName})

	app := fiber.New()

	app.Get("/set", func(c *fiber.Ctx) error {
		return session.Update(c, func(s *session.ViewState) {
			menu := 2
			s.Menu = &menu
			s.News = "training"
		})
	})

	app.Get("/tab", func(c *fiber.Ctx) error {
		return session.Update(c, func(s *session.ViewState) {
			s.Resource = "videos"
		})
	})

	app.Get("/get", func(c *fiber.Ctx) error {
		state, err := session.Load(c)
		if err != nil {
			return err
		}

		return c.JSON(state)
	})

	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c
		}
	}

	t.Fatalf("no %s cookie in response", cookieName)

	return nil
}

func get(t *testing.T, app *fiber.App, target string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestLoad_NewVisitor(t *testing.T) {
	app := newApp(t)

	resp := get(t, app, "/get", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state session.ViewState
	require.NoError(t, jsonBody(resp, &state))
	assert.Nil(t, state.Menu)
	assert.Empty(t, state.News)
	assert.Empty(t, state.Resource)
}

func TestUpdate_RoundTrip(t *testing.T) {
	app := newApp(t)

	resp := get(t, app, "/set", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := sessionCookie(t, resp)

	resp = get(t, app, "/tab", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "/get", cookie)

	var state session.ViewState
	require.NoError(t, jsonBody(resp, &state))
	require.NotNil(t, state.Menu)
	assert.Equal(t, 2, *state.Menu)
	assert.Equal(t, "training", state.News)
	assert.Equal(t, "videos", state.Resource)
}

func TestLoad_SessionsAreIsolated(t *testing.T) {
	app := newApp(t)

	get(t, app, "/set", nil)

	resp := get(t, app, "/get", nil)

	var state session.ViewState
	require.NoError(t, jsonBody(resp, &state))
	assert.Nil(t, state.Menu)
}
