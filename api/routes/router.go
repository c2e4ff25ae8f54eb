package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/certifypro-api/api/controllers/certificate"
	system_controller "github.com/sunthewhat/certifypro-api/api/controllers/system"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Certificate *certificate_controller.CertificateController
	System      *system_controller.SystemController
}

func Init(router fiber.Router, controllers Controllers) {
	SetupSystemRoutes(router, controllers.System)

	api := router.Group("api")
	SetupCertificateRoutes(api, controllers.Certificate)
}
