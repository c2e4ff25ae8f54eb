package certificate_controller

import (
	"context"

	"github.com/sunthewhat/certifypro-api/internal/renderer"
	"github.com/sunthewhat/certifypro-api/type/payload"
)

// Renderer produces a finished certificate document.
type Renderer interface {
	Render(ctx context.Context, req *payload.GeneratePdfPayload) (*renderer.Document, error)
}

// CertificateController handles certificate-related HTTP requests
type CertificateController struct {
	renderer       Renderer
	filenamePrefix string
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(r Renderer, filenamePrefix string) *CertificateController {
	return &CertificateController{
		renderer:       r,
		filenamePrefix: filenamePrefix,
	}
}
