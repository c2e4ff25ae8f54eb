package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/certifypro-api/api/controllers/certificate"
)

func SetupCertificateRoutes(router fiber.Router, ctrl *certificate_controller.CertificateController) {
	router.Post("generate-pdf", ctrl.GeneratePdf)
}
