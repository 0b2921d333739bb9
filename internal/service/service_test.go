package service

import (
	"context"
	"testing"
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/pkg/logger"
	"character-chat-be/internal/repository/memory"
	"character-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	factory    unitofwork.RepositoryFactory
	characters *characterService
	chats      *chatService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	log := logger.NewNopLogger()
	return &fixture{
		factory:    factory,
		characters: NewCharacterService(factory, log).(*characterService),
		chats:      NewChatService(factory, log).(*chatService),
	}
}

// fixedClock makes both services stamp every write with at.
func (f *fixture) fixedClock(at time.Time) {
	clock := func() time.Time { return at }
	f.characters.now = clock
	f.chats.now = clock
}

func (f *fixture) seedSystemCharacter(t *testing.T, name string) *entity.Character {
	t.Helper()
	ts := now()
	character := &entity.Character{
		Id:        uuid.New(),
		Name:      name,
		IsSystem:  true,
		IsPublic:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	uow := f.factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.CharacterRepository().Create(context.Background(), character))
	return character
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
