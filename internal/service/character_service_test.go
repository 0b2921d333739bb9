package service

import (
	"context"
	"testing"
	"time"

	"character-chat-be/internal/dto"
	"character-chat-be/internal/entity"
	"character-chat-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous caller is rejected before validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.characters.Create(ctx, nil, &dto.CreateCharacterRequest{})
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.characters.Create(ctx, entity.NewIdentity("alice"), &dto.CreateCharacterRequest{Name: "   "})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("owner and flags are server controlled", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.characters.Create(ctx, entity.NewIdentity("alice"), &dto.CreateCharacterRequest{
			Name:   "Sherlock",
			Domain: strPtr("mystery"),
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.Id)
		require.NotNil(t, res.UserId)
		assert.Equal(t, "alice", *res.UserId)
		assert.False(t, res.IsSystem)
		assert.False(t, res.IsPublic)
		assert.Equal(t, "mystery", *res.Domain)
		assert.Equal(t, res.CreatedAt, res.UpdatedAt)
	})

	t.Run("public flag is honoured", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.characters.Create(ctx, entity.NewIdentity("alice"), &dto.CreateCharacterRequest{
			Name:     "Watson",
			IsPublic: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, res.IsPublic)
	})
}

func TestCharacterService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can patch and untouched fields survive", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{
			Name:        "Ada",
			Description: strPtr("mathematician"),
		})
		require.NoError(t, err)

		later := created.CreatedAt.Add(time.Minute)
		f.fixedClock(later)

		updated, err := f.characters.Update(ctx, alice, created.Id, &dto.UpdateCharacterRequest{
			IsPublic: boolPtr(true),
		})
		require.NoError(t, err)

		assert.True(t, updated.IsPublic)
		assert.Equal(t, "Ada", updated.Name)
		assert.Equal(t, "mathematician", *updated.Description)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, later, updated.UpdatedAt)
	})

	t.Run("missing and foreign characters produce the same error", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: "Ada"})
		require.NoError(t, err)

		_, errForeign := f.characters.Update(ctx, bob, created.Id, &dto.UpdateCharacterRequest{Name: strPtr("Stolen")})
		_, errMissing := f.characters.Update(ctx, bob, uuid.New(), &dto.UpdateCharacterRequest{Name: strPtr("Stolen")})

		assert.ErrorIs(t, errForeign, apperror.ErrNotFoundOrForbidden)
		assert.Equal(t, errMissing, errForeign)

		list, err := f.characters.List(ctx, alice, true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ada", list[0].Name)
	})

	t.Run("system characters cannot be edited by anyone", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")

		_, err := f.characters.Update(ctx, alice, system.Id, &dto.UpdateCharacterRequest{Name: strPtr("Mine")})
		assert.ErrorIs(t, err, apperror.ErrNotFoundOrForbidden)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.characters.Update(ctx, nil, uuid.New(), &dto.UpdateCharacterRequest{})
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("blank name in patch fails validation", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: "Ada"})
		require.NoError(t, err)

		_, err = f.characters.Update(ctx, alice, created.Id, &dto.UpdateCharacterRequest{Name: strPtr("")})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestCharacterService_List(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	system := f.seedSystemCharacter(t, "Narrator")

	private, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: "Diary"})
	require.NoError(t, err)
	public, err := f.characters.Create(ctx, bob, &dto.CreateCharacterRequest{Name: "Guide", IsPublic: boolPtr(true)})
	require.NoError(t, err)
	bobPrivate, err := f.characters.Create(ctx, bob, &dto.CreateCharacterRequest{Name: "Secret"})
	require.NoError(t, err)

	ids := func(list []*dto.CharacterResponse) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(list))
		for _, c := range list {
			out = append(out, c.Id)
		}
		return out
	}

	t.Run("anonymous sees public and system only", func(t *testing.T) {
		list, err := f.characters.List(ctx, nil, true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{system.Id, public.Id}, ids(list))
	})

	t.Run("private characters are hidden unless requested", func(t *testing.T) {
		list, err := f.characters.List(ctx, alice, false)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{system.Id, public.Id}, ids(list))
	})

	t.Run("owner sees own private characters on request", func(t *testing.T) {
		list, err := f.characters.List(ctx, alice, true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{system.Id, public.Id, private.Id}, ids(list))
		assert.NotContains(t, ids(list), bobPrivate.Id)
	})

	t.Run("ordered by creation time", func(t *testing.T) {
		list, err := f.characters.List(ctx, bob, true)
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].CreatedAt.Before(list[i-1].CreatedAt))
		}
	})
}

func TestCharacterService_ListTiesBrokenByID(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: name})
		require.NoError(t, err)
	}

	first, err := f.characters.List(ctx, alice, true)
	require.NoError(t, err)
	second, err := f.characters.List(ctx, alice, true)
	require.NoError(t, err)

	require.Len(t, first, 4)
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Id.String(), first[i].Id.String())
	}
}
