package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/pkg/logger"
)

// ErrorBody is the uniform error payload: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewErrorHandler builds the app-level fiber error handler. Errors returned
// from controllers funnel through here and come out as {"error": "..."}.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorBody{Error: fiberErr.Message})
		}

		status := apperror.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  c.Path(),
				"error": err.Error(),
			})
		}
		return c.Status(status).JSON(ErrorBody{Error: apperror.PublicMessage(err)})
	}
}
