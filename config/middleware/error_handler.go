package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
)

const internalServerErrorMessage = "Internal server error"

// ErrorHandler turns handler errors into {"message": ...} bodies. Only
// client-facing AppErrors keep their message; anything else is logged and
// reported as a bare 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok && appErr.Type != apperror.ErrorTypeInternal {
			return c.Status(appErr.StatusCode).JSON(models.ErrorResponse{Message: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Message: fiberErr.Message})
		}

		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("requestId", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Message: internalServerErrorMessage})
	}
}
