package unitofwork

import (
	"context"
	"testing"
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/repository/memory"
	"character-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemCharacter() *entity.Character {
	ts := time.Now().UTC()
	return &entity.Character{Id: uuid.New(), Name: "n", IsSystem: true, IsPublic: true, CreatedAt: ts, UpdatedAt: ts}
}

func TestMemoryUnitOfWork_CommitKeepsWrites(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryRepositoryFactory(memory.NewStore())

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	c := newSystemCharacter()
	require.NoError(t, uow.CharacterRepository().Create(ctx, c))
	require.NoError(t, uow.Commit())

	assert.Error(t, uow.Rollback(), "rollback after commit has nothing to undo")

	found, err := factory.NewUnitOfWork(ctx).CharacterRepository().FindOne(ctx, specification.ByID{ID: c.Id})
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestMemoryUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryRepositoryFactory(memory.NewStore())

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	c := newSystemCharacter()
	require.NoError(t, uow.CharacterRepository().Create(ctx, c))
	require.NoError(t, uow.Rollback())

	found, err := factory.NewUnitOfWork(ctx).CharacterRepository().FindOne(ctx, specification.ByID{ID: c.Id})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryUnitOfWork_StateErrors(t *testing.T) {
	ctx := context.Background()
	uow := NewMemoryRepositoryFactory(memory.NewStore()).NewUnitOfWork(ctx)

	assert.Error(t, uow.Commit())
	assert.Error(t, uow.Rollback())

	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, NewMemoryUnitOfWork(memory.NewStore()).Begin(canceled))
}
