package unitofwork

import (
	"context"
	"fmt"

	"character-chat-be/internal/repository/contract"
	"character-chat-be/internal/repository/memory"
)

// MemoryUnitOfWork gives transactions to the in-memory store through an undo journal.
// Writes are visible to other callers before Commit; Rollback reverts them.
type MemoryUnitOfWork struct {
	store   *memory.Store
	journal *memory.Journal
}

func NewMemoryUnitOfWork(store *memory.Store) UnitOfWork {
	return &MemoryUnitOfWork{
		store: store,
	}
}

func (u *MemoryUnitOfWork) Begin(ctx context.Context) error {
	if u.journal != nil {
		return fmt.Errorf("transaction already started")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.journal = memory.NewJournal()
	return nil
}

func (u *MemoryUnitOfWork) Commit() error {
	if u.journal == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.journal.Discard()
	u.journal = nil
	return nil
}

func (u *MemoryUnitOfWork) Rollback() error {
	if u.journal == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.journal.Rollback()
	u.journal = nil
	return nil
}

func (u *MemoryUnitOfWork) CharacterRepository() contract.CharacterRepository {
	return memory.NewCharacterRepository(u.store, u.journal)
}

func (u *MemoryUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return memory.NewChatSessionRepository(u.store, u.journal)
}

func (u *MemoryUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return memory.NewChatMessageRepository(u.store, u.journal)
}
