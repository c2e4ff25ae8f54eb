package system_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/certifypro-api/type/response"
)

func (ctrl *SystemController) Health(c *fiber.Ctx) error {
	return response.SendHealth(c, ctrl.serviceName)
}
