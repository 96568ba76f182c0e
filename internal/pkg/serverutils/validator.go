package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jobboard-be/internal/pkg/apperror"
)

var validate = validator.New()

// ParseAndValidate binds the request body into req and runs struct validation.
// The returned error is ready for ErrorResponse (maps to 400).
func ParseAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			var fields []string
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return apperror.InvalidInput("validation failed: " + strings.Join(fields, ", "))
		}
		return apperror.InvalidInput("validation failed")
	}
	return nil
}
