package system_controller

import "github.com/gofiber/fiber/v2"

func (ctrl *SystemController) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(RootMessage)
}
