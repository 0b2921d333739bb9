package contract

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/repository/specification"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *entity.Character) error
	// UpdateWhere applies columns to every matching row and returns the number of rows changed.
	UpdateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Character, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Character, error)
}
