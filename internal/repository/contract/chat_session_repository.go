package contract

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	// Create fails with apperror.ErrConstraintViolation when the character does not exist.
	Create(ctx context.Context, session *entity.ChatSession) error
	UpdateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
}
