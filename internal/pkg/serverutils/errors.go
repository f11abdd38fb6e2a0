package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error shape the HTTP layer knows how to render.
// Services return sentinel errors; controllers translate them into AppError.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// shared JSON envelope. Unknown errors are masked as 500 to avoid leaking
// internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
