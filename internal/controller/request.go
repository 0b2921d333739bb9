package controller

import (
	"character-chat-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseID(ctx *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(param))
	if err != nil {
		return uuid.Nil, apperror.Validation("%s must be a valid UUID", param)
	}
	return id, nil
}

// parseBody accepts an empty body as an empty request so field validation reports what is missing.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("invalid request body: %v", err)
	}
	return nil
}
