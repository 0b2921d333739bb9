package serverutils

import (
	"errors"

	"character-chat-be/internal/pkg/apperror"
	"character-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const errorModule = "http"

// ErrorHandler renders every error returned by a handler as a BaseResponse. Domain errors
// keep their message; anything unrecognised becomes a 500 without details.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status, code, message := classify(err)

		if status >= fiber.StatusInternalServerError {
			log.Error(errorModule, "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(code, message))
	}
}

func classify(err error) (int, string, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberCode(fiberErr.Code), fiberErr.Message
	}

	code := apperror.Code(err)
	switch code {
	case apperror.CodeUnauthorized:
		return fiber.StatusUnauthorized, code, apperror.ErrUnauthenticated.Error()
	case apperror.CodeForbidden:
		return fiber.StatusForbidden, code, err.Error()
	case apperror.CodeNotFound:
		return fiber.StatusNotFound, code, err.Error()
	case apperror.CodeValidation:
		return fiber.StatusUnprocessableEntity, code, err.Error()
	case apperror.CodeConstraintViolation:
		return fiber.StatusConflict, code, apperror.ErrConstraintViolation.Error()
	default:
		return fiber.StatusInternalServerError, apperror.CodeInternal, "internal server error"
	}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return apperror.CodeUnauthorized
	case fiber.StatusForbidden:
		return apperror.CodeForbidden
	case fiber.StatusNotFound:
		return apperror.CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return apperror.CodeMethodNotAllowed
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		return apperror.CodeValidation
	default:
		if status >= fiber.StatusInternalServerError {
			return apperror.CodeInternal
		}
		return "HTTP_ERROR"
	}
}
