package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports every failing field
// in one message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewAppError(fiber.StatusBadRequest, err.Error())
	}

	var parts []string
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return NewAppError(fiber.StatusBadRequest, strings.Join(parts, "; "))
}
