package response

import "github.com/gofiber/fiber/v2"

const RenderFailedMessage = "PDF generation failed"

func SendRenderError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(&RenderErrorResponse{
		Error:   RenderFailedMessage,
		Details: err.Error(),
	})
}

func SendHealth(c *fiber.Ctx, service string) error {
	return c.Status(fiber.StatusOK).JSON(&HealthResponse{Ok: true, Service: service})
}

func SendDebug(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(&DebugResponse{
		Ok:     true,
		Method: c.Method(),
		Url:    c.OriginalURL(),
	})
}
