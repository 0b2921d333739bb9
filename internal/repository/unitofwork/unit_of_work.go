package unitofwork

import (
	"context"

	"character-chat-be/internal/repository/contract"
)

// UnitOfWork hands out repositories that share one transaction between Begin and
// Commit/Rollback. Outside a transaction each call runs on its own.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CharacterRepository() contract.CharacterRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
