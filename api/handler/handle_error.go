package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/certifypro-api/api/middleware"
	"github.com/sunthewhat/certifypro-api/type/response"
)

// HandleError is the app-wide ErrorHandler. A *fiber.Error keeps its status
// and message; any other error is answered as a 500.
func HandleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	logger := middleware.LoggerFromContext(c)
	if status >= fiber.StatusInternalServerError {
		logger.Error("Request failed", "status", status, "error", err)
	} else {
		logger.Debug("Request rejected", "status", status, "reason", message)
	}

	return c.Status(status).JSON(response.Error(message))
}
