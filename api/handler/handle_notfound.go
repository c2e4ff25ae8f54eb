package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HandleNotFound catches every request no route matched. The error goes
// through HandleError so the body shape matches other failures.
func HandleNotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s %s not found", c.Method(), c.Path()))
}
