package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// LogErrors logs every sent error. 5xx responses are logged at error level,
// everything else at warn.
func LogErrors(logger *zap.Logger) Observer {
	return func(c *fiber.Ctx, e *woops.Error) {
		fields := []zap.Field{
			zap.Int("status", e.Status),
			zap.String("message", e.Message),
			zap.Bool("developer_error", e.IsDeveloperError),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("request_id", GetRequestID(c)),
		}
		if e.Origin != nil {
			fields = append(fields, zap.NamedError("origin", e.Origin))
		}

		if e.Status >= fiber.StatusInternalServerError {
			logger.Error("error response sent", fields...)
			return
		}
		logger.Warn("error response sent", fields...)
	}
}

// CountErrors records every sent error in the error response metrics
func CountErrors() Observer {
	return func(_ *fiber.Ctx, e *woops.Error) {
		RecordErrorResponse(e.Status, e.IsDeveloperError)
	}
}

// ReportDeveloperErrors sends developer errors and wrapped failures to Sentry
func ReportDeveloperErrors() Observer {
	return func(c *fiber.Ctx, e *woops.Error) {
		switch {
		case e.Origin != nil:
			CaptureError(c, e.Origin)
		case e.IsDeveloperError:
			CaptureError(c, e)
		}
	}
}
