package api

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	certificate_controller "github.com/sunthewhat/certifypro-api/api/controllers/certificate"
	system_controller "github.com/sunthewhat/certifypro-api/api/controllers/system"
	"github.com/sunthewhat/certifypro-api/api/handler"
	"github.com/sunthewhat/certifypro-api/api/middleware"
	"github.com/sunthewhat/certifypro-api/api/routes"
	"github.com/sunthewhat/certifypro-api/common"
	"github.com/sunthewhat/certifypro-api/internal/metrics"
	"github.com/sunthewhat/certifypro-api/internal/renderer"
	"github.com/sunthewhat/certifypro-api/type/shared"
)

// NewApp wires middleware, routes and controllers around r.
func NewApp(cfg *shared.Config, r certificate_controller.Renderer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "certifypro api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     cfg.BodyLimit,
	})

	metrics.Register()

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.CorrelationID(slog.Default()))
	app.Use(metrics.FiberMiddleware())
	app.Use(middleware.Cors(cfg.AllowedOrigins(common.DefaultCorsOrigins)))

	routes.Init(app, routes.Controllers{
		Certificate: certificate_controller.NewCertificateController(r, cfg.FilenamePrefix),
		System:      system_controller.NewSystemController(cfg.ServiceName),
	})

	app.Use(handler.HandleNotFound)

	return app
}

// NewRenderer builds the certificate renderer. A signer that cannot be
// loaded is logged and rendering continues unsigned.
func NewRenderer(cfg *shared.Config) *renderer.CertificateRenderer {
	signer, err := renderer.NewCertificateSigner(cfg.Signing)
	if err != nil {
		slog.Warn("Failed to initialize PDF signer, certificates will be unsigned", "error", err)
		signer = nil
	}

	return renderer.NewCertificateRenderer(renderer.Options{
		FontsDir: cfg.FontsDir,
		Compress: cfg.Compress,
		Creator:  cfg.ServiceName,
	}, signer)
}

func InitFiber(cfg *shared.Config) {
	app := NewApp(cfg, NewRenderer(cfg))

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
	err := app.Listen(addr)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
