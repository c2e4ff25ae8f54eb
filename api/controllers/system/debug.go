package system_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/certifypro-api/type/response"
)

// Debug echoes the method and original URL of any request.
func (ctrl *SystemController) Debug(c *fiber.Ctx) error {
	return response.SendDebug(c)
}
