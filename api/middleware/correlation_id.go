package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	correlationIDKey = "correlation_id"
	slogLoggerKey    = "slog_logger"
)

// CorrelationID makes sure every request carries an X-Correlation-ID and
// stores a request-scoped logger tagged with it.
func CorrelationID(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *fiber.Ctx) error {
		id := c.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(correlationIDKey, id)
		c.Set(CorrelationIDHeader, id)

		c.Locals(slogLoggerKey, logger.With(
			slog.String("correlation_id", id),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
		))

		return c.Next()
	}
}

func GetCorrelationID(c *fiber.Ctx) string {
	if id, ok := c.Locals(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns the request logger, or slog.Default outside a request.
func LoggerFromContext(c *fiber.Ctx) *slog.Logger {
	if logger, ok := c.Locals(slogLoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
