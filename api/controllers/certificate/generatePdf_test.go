package certificate_controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	certificate_controller "github.com/sunthewhat/certifypro-api/api/controllers/certificate"
	"github.com/sunthewhat/certifypro-api/internal/renderer"
	"github.com/sunthewhat/certifypro-api/type/payload"
)

type failingRenderer struct {
	err error
}

func (f failingRenderer) Render(context.Context, *payload.GeneratePdfPayload) (*renderer.Document, error) {
	return nil, f.err
}

func newTestApp(t *testing.T, r certificate_controller.Renderer) *fiber.App {
	t.Helper()
	if r == nil {
		r = renderer.NewCertificateRenderer(renderer.Options{FontsDir: t.TempDir(), Compress: false}, nil)
	}
	ctrl := certificate_controller.NewCertificateController(r, "CertifyPro")

	app := fiber.New()
	app.Post("/api/generate-pdf", ctrl.GeneratePdf)
	return app
}

func post(t *testing.T, app *fiber.App, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/generate-pdf", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestCertificateController_GeneratePdf(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantText    []string
	}{
		{
			name:        "name only",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"name":"Jane Doe"}`,
			wantText:    []string{"(Jane Doe)", "(CERTIFICATE)", "(of participation)"},
		},
		{
			name:        "non numeric font size falls back",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"title":"AWARD","titleStyle":{"fontSize":"large","color":"purple"}}`,
			wantText:    []string{"(AWARD)"},
		},
		{
			name:        "empty body renders defaults",
			contentType: fiber.MIMEApplicationJSON,
			body:        "",
			wantText:    []string{"(Name Surname)", "(Signature)", "(Date)"},
		},
		{
			name:        "non json content type is ignored",
			contentType: fiber.MIMETextPlain,
			body:        `{"name":"Jane Doe"}`,
			wantText:    []string{"(Name Surname)"},
		},
		{
			name:        "json with charset",
			contentType: fiber.MIMEApplicationJSONCharsetUTF8,
			body:        `{"name":"Ada Lovelace","orientation":"portrait"}`,
			wantText:    []string{"(Ada Lovelace)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, newTestApp(t, nil), tt.contentType, tt.body)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
			assert.Regexp(t, `^attachment; filename="CertifyPro_\d{6}\.pdf"$`, resp.Header.Get(fiber.HeaderContentDisposition))
			require.True(t, strings.HasPrefix(string(body), "%PDF-"), "body is a PDF")
			for _, text := range tt.wantText {
				assert.Contains(t, string(body), text)
			}
		})
	}
}

func TestCertificateController_GeneratePdf_MalformedJSON(t *testing.T) {
	resp, body := post(t, newTestApp(t, nil), fiber.MIMEApplicationJSON, `{"name":`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
	assert.Empty(t, resp.Header.Get(fiber.HeaderContentDisposition))

	var result map[string]any
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "PDF generation failed", result["error"])
	assert.NotEmpty(t, result["details"])
}

func TestCertificateController_GeneratePdf_RenderFailure(t *testing.T) {
	renderErr := errors.New("font table corrupt")
	resp, body := post(t, newTestApp(t, failingRenderer{err: renderErr}), fiber.MIMEApplicationJSON, `{}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderContentDisposition))

	var result map[string]string
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, map[string]string{
		"error":   "PDF generation failed",
		"details": "font table corrupt",
	}, result)
}
