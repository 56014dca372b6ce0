package middleware

import (
	"classroom-player/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam rejects a malformed path parameter before the handler runs.
// The parameter is reported under field.
func (vm *ValidationMiddleware) ValidateIDParam(param, field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateIdentifier(field, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}
