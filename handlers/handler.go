package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
)

// DefaultRequestTimeout bounds the store work of a single request.
const DefaultRequestTimeout = 5 * time.Second

// parseBody decodes a JSON body into out. An empty body decodes as {} so that
// missing fields are reported by validation rather than as a parse error.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperror.NewValidationError("Invalid request body", apperror.ErrCodeInvalidBody).WithCause(err)
	}
	return nil
}

func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// Health answers on "/", outside the documented /api base path.
func Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Message: "Employee Management System API is running",
		Status:  "running",
		Docs:    "/docs/index.html",
	})
}
