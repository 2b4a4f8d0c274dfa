package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dseza/portal/internal/i18n"
	"github.com/dseza/portal/internal/site"
	"github.com/dseza/portal/internal/theme"
	"github.com/dseza/portal/internal/web/handler"
)

func TestBack(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "no referer", referer: "", want: "/fallback"},
		{name: "same site", referer: "http://example.com/?x=1#news", want: "/?x=1#news"},
		{name: "same site root", referer: "http://example.com/", want: "/"},
		{name: "bare host", referer: "http://example.com", want: "/fallback"},
		{name: "other site", referer: "https://evil.test/", want: "/fallback"},
		{name: "host prefix trick", referer: "http://example.com.evil.test/", want: "/fallback"},
		{name: "protocol relative", referer: "http://example.com//evil.test/", want: "/fallback"},
		{name: "backslash protocol relative", referer: "http://example.com/\\evil.test", want: "/fallback"},
		{name: "backslash later in path", referer: "http://example.com/a\\b", want: "/a\\b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return c.SendString(handler.Back(c, "/fallback"))
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.referer != "" {
				req.Header.Set(fiber.HeaderReferer, tt.referer)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestSite(t *testing.T) {
	app := fiber.New()

	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(handler.LocalsSite, site.New(nil, i18n.English, theme.Dark))
		return c.SendString(handler.Site(c).Lang() + "/" + string(handler.Site(c).Theme))
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		return c.SendString(handler.Site(c).Lang() + "/" + string(handler.Site(c).Theme))
	})

	for target, want := range map[string]string{"/with": "en/dark", "/without": "vi/light"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(body), target)
	}
}

func TestCountSelection(t *testing.T) {
	assert.NotPanics(t, func() {
		handler.CountSelection("news", "training")
		handler.CountSelection("news", "training")
	})
}
