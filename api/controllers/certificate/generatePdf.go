package certificate_controller

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/certifypro-api/api/middleware"
	"github.com/sunthewhat/certifypro-api/common/util"
	"github.com/sunthewhat/certifypro-api/internal/metrics"
	"github.com/sunthewhat/certifypro-api/type/payload"
	"github.com/sunthewhat/certifypro-api/type/response"
)

func (ctrl *CertificateController) GeneratePdf(c *fiber.Ctx) error {
	logger := middleware.LoggerFromContext(c)

	// A missing body or a non-JSON content type renders the all-default certificate.
	var body payload.GeneratePdfPayload
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(&body); err != nil {
			logger.Warn("GeneratePdf body parse failed", "error", err)
			metrics.ObserveRender(metrics.RenderRejected, 0)
			return response.SendRenderError(c, err)
		}
	}

	start := time.Now()
	doc, err := ctrl.renderer.Render(c.UserContext(), &body)
	if err != nil {
		logger.Error("GeneratePdf render failed", "error", err)
		metrics.ObserveRender(metrics.RenderFailed, 0)
		return response.SendRenderError(c, err)
	}
	metrics.ObserveRender(metrics.RenderSuccess, time.Since(start))

	filename := util.RandomPdfFilename(ctrl.filenamePrefix)
	logger.Info("Certificate rendered",
		"filename", filename,
		"bytes", len(doc.Bytes),
		"orientation", doc.Geometry.Orientation,
		"signed", doc.Signed,
	)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	data := doc.Bytes
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if err := streamDocument(w, data, streamChunkSize); err != nil {
			logger.Debug("PDF stream aborted", "filename", filename, "error", err)
		}
	})
	return nil
}
