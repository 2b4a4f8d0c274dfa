package preferences

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/web/handler"
)

func newTestApp(secure bool) *fiber.App {
	app := fiber.New()
	Handler.Init(app, &config.Config{Session: config.Session{Secure: secure}}, &handler.Deps{})

	return app
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestSwitches(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     string
		wantValue  string
		wantCookie bool
	}{
		{name: "english", target: LanguageURL("en"), cookie: handler.CookieLanguage, wantValue: "en", wantCookie: true},
		{name: "vietnamese upper case", target: LanguageURL("VI"), cookie: handler.CookieLanguage, wantValue: "vi", wantCookie: true},
		{name: "unsupported language", target: LanguageURL("fr"), cookie: handler.CookieLanguage},
		{name: "dark", target: ThemeURL("dark"), cookie: handler.CookieTheme, wantValue: "dark", wantCookie: true},
		{name: "unknown theme", target: ThemeURL("sepia"), cookie: handler.CookieTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(false)

			req := httptest.NewRequest(fiber.MethodGet, tt.target, nil)
			req.Header.Set(fiber.HeaderReferer, "http://example.com/#news")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/#news", resp.Header.Get(fiber.HeaderLocation))

			cookie := findCookie(resp, tt.cookie)
			if !tt.wantCookie {
				assert.Nil(t, cookie)
				return
			}

			require.NotNil(t, cookie)
			assert.Equal(t, tt.wantValue, cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.False(t, cookie.Secure)
		})
	}
}

func TestSwitches_SecureCookie(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, ThemeURL("light"), nil))
	require.NoError(t, err)

	cookie := findCookie(resp, handler.CookieTheme)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}
