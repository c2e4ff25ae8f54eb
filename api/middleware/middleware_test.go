package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/certifypro-api/api/middleware"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recover())
	app.Use(middleware.CorrelationID(nil))
	app.Use(middleware.Cors([]string{"https://profly.uz", "http://localhost:5500"}))

	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(middleware.GetCorrelationID(c))
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func TestCorrelationID_GeneratedWhenMissing(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/id", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	id := resp.Header.Get(middleware.CorrelationIDHeader)
	assert.Len(t, id, 36)
}

func TestCorrelationID_PropagatesIncoming(t *testing.T) {
	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "req-42")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-42", resp.Header.Get(middleware.CorrelationIDHeader))
}

func TestLoggerFromContext_DefaultOutsideRequestScope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.NotNil(t, middleware.LoggerFromContext(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRecover_ReturnsServerError(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", "https://profly.uz", "https://profly.uz"},
		{"local dev origin", "http://localhost:5500", "http://localhost:5500"},
		{"unknown origin", "https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("OPTIONS", "/id", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", "POST")

			resp, err := newApp().Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
				assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
			}
		})
	}
}
