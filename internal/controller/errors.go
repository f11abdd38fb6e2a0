package controller

import (
	"errors"

	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/service"
	"mock-interview-be/pkg/analysis"
	"mock-interview-be/pkg/capture"
	"mock-interview-be/pkg/media"

	"github.com/gofiber/fiber/v2"
)

// translateError maps service sentinels onto HTTP statuses. Anything not
// listed bubbles up as a 500 through the error handler middleware.
func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrAlreadyActive):
		return serverutils.NewAppError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoActiveSession):
		return serverutils.NewAppError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoQuestions):
		return serverutils.NewAppError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrResultNotFound):
		return serverutils.NewAppError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, capture.ErrDeviceUnavailable):
		return serverutils.NewAppError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, media.ErrFileNotFound):
		return serverutils.NewAppError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, media.ErrUnreadableVideo), errors.Is(err, analysis.ErrNoFrames):
		return serverutils.NewAppError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrPersistenceFailure):
		return serverutils.NewAppError(fiber.StatusInternalServerError, err.Error())
	default:
		return err
	}
}
