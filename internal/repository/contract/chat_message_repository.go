package contract

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/repository/specification"
)

// ChatMessageRepository is append-only: messages are never updated or deleted.
type ChatMessageRepository interface {
	// Create fails with apperror.ErrConstraintViolation when the session does not exist.
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
}
