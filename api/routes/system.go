package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	system_controller "github.com/sunthewhat/certifypro-api/api/controllers/system"
)

func SetupSystemRoutes(router fiber.Router, ctrl *system_controller.SystemController) {
	router.Get("/", ctrl.Root)
	router.Get("metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := router.Group("api")
	api.Get("health", ctrl.Health)
	api.All("debug", ctrl.Debug)
}
