package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"character-chat-be/internal/constant"
	"character-chat-be/internal/dto"
	"character-chat-be/internal/entity"
	"character-chat-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = entity.NewIdentity("alice")
	bob   = entity.NewIdentity("bob")
)

func (f *fixture) openSession(t *testing.T, identity *entity.Identity, characterId uuid.UUID) *dto.ChatSessionResponse {
	t.Helper()
	session, err := f.chats.CreateSession(context.Background(), identity, &dto.CreateChatSessionRequest{CharacterId: characterId})
	require.NoError(t, err)
	return session
}

func TestChatService_CreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("system character starts a clean session", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")

		session, err := f.chats.CreateSession(ctx, alice, &dto.CreateChatSessionRequest{
			CharacterId: system.Id,
			Title:       strPtr("First chat"),
		})
		require.NoError(t, err)

		assert.Equal(t, "alice", session.UserId)
		assert.Equal(t, system.Id, session.CharacterId)
		assert.Equal(t, "First chat", *session.Title)
		assert.False(t, session.IsPinned)
		assert.False(t, session.IsArchived)
		assert.Nil(t, session.LastMessageAt)
	})

	t.Run("unknown character is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.chats.CreateSession(ctx, alice, &dto.CreateChatSessionRequest{CharacterId: uuid.New()})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("someone else's private character is forbidden", func(t *testing.T) {
		f := newFixture(t)
		private, err := f.characters.Create(ctx, bob, &dto.CreateCharacterRequest{Name: "Secret"})
		require.NoError(t, err)

		_, err = f.chats.CreateSession(ctx, alice, &dto.CreateChatSessionRequest{CharacterId: private.Id})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("own private character is allowed", func(t *testing.T) {
		f := newFixture(t)
		private, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: "Diary"})
		require.NoError(t, err)

		session := f.openSession(t, alice, private.Id)
		assert.Equal(t, private.Id, session.CharacterId)
	})

	t.Run("missing character id fails validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.chats.CreateSession(ctx, alice, &dto.CreateChatSessionRequest{})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.chats.CreateSession(ctx, nil, &dto.CreateChatSessionRequest{CharacterId: uuid.New()})
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestChatService_SessionSurvivesCharacterGoingPrivate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	character, err := f.characters.Create(ctx, bob, &dto.CreateCharacterRequest{Name: "Guide", IsPublic: boolPtr(true)})
	require.NoError(t, err)
	session := f.openSession(t, alice, character.Id)

	_, err = f.characters.Update(ctx, bob, character.Id, &dto.UpdateCharacterRequest{IsPublic: boolPtr(false)})
	require.NoError(t, err)

	_, err = f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
		SenderRole: constant.ChatMessageRoleUser,
		Content:    "still there?",
	})
	assert.NoError(t, err)

	_, err = f.chats.CreateSession(ctx, alice, &dto.CreateChatSessionRequest{CharacterId: character.Id})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestChatService_UpdateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can pin and archive", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		updated, err := f.chats.UpdateSession(ctx, alice, session.Id, &dto.UpdateChatSessionRequest{
			IsPinned:       boolPtr(true),
			ContextSummary: strPtr("talked about the weather"),
		})
		require.NoError(t, err)

		assert.True(t, updated.IsPinned)
		assert.False(t, updated.IsArchived)
		assert.Equal(t, "talked about the weather", *updated.ContextSummary)
		assert.Equal(t, session.CreatedAt, updated.CreatedAt)
		assert.Nil(t, updated.LastMessageAt)
	})

	t.Run("missing and foreign sessions produce the same error", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		_, errForeign := f.chats.UpdateSession(ctx, bob, session.Id, &dto.UpdateChatSessionRequest{IsArchived: boolPtr(true)})
		_, errMissing := f.chats.UpdateSession(ctx, bob, uuid.New(), &dto.UpdateChatSessionRequest{IsArchived: boolPtr(true)})

		assert.ErrorIs(t, errForeign, apperror.ErrNotFoundOrForbidden)
		assert.Equal(t, errMissing, errForeign)

		sessions, err := f.chats.ListSessions(ctx, alice, false)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.False(t, sessions[0].IsArchived)
	})
}

func TestChatService_ListSessions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	system := f.seedSystemCharacter(t, "Narrator")

	first := f.openSession(t, alice, system.Id)
	second := f.openSession(t, alice, system.Id)
	f.openSession(t, bob, system.Id)

	_, err := f.chats.UpdateSession(ctx, alice, second.Id, &dto.UpdateChatSessionRequest{IsArchived: boolPtr(true)})
	require.NoError(t, err)

	t.Run("archived sessions are hidden by default", func(t *testing.T) {
		sessions, err := f.chats.ListSessions(ctx, alice, false)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, first.Id, sessions[0].Id)
	})

	t.Run("archived sessions are listed on request", func(t *testing.T) {
		sessions, err := f.chats.ListSessions(ctx, alice, true)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		for _, s := range sessions {
			assert.Equal(t, "alice", s.UserId)
		}
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		_, err := f.chats.ListSessions(ctx, nil, true)
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestChatService_CreateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("message moves session recency to its own timestamp", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		at := session.CreatedAt.Add(time.Hour)
		f.fixedClock(at)

		msg, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    "hello",
			Metadata:   json.RawMessage(`{"client":"web"}`),
		})
		require.NoError(t, err)

		assert.Equal(t, at, msg.CreatedAt)
		require.NotNil(t, msg.UserId)
		assert.Equal(t, "alice", *msg.UserId)
		assert.JSONEq(t, `{"client":"web"}`, string(msg.Metadata))

		sessions, err := f.chats.ListSessions(ctx, alice, false)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.NotNil(t, sessions[0].LastMessageAt)
		assert.Equal(t, msg.CreatedAt, *sessions[0].LastMessageAt)
		assert.Equal(t, msg.CreatedAt, sessions[0].UpdatedAt)
	})

	t.Run("non-user roles carry no sender", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		for _, role := range []string{constant.ChatMessageRoleCharacter, constant.ChatMessageRoleSystem} {
			msg, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
				SenderRole: role,
				Content:    "reply",
			})
			require.NoError(t, err)
			assert.Nil(t, msg.UserId, role)
			assert.Nil(t, msg.Metadata, role)
		}
	})

	t.Run("invalid input is rejected before the session is looked up", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.chats.CreateMessage(ctx, alice, uuid.New(), &dto.CreateChatMessageRequest{
			SenderRole: "narrator",
			Content:    "hi",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)

		_, err = f.chats.CreateMessage(ctx, alice, uuid.New(), &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    " \n\t",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("metadata is kept byte for byte", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		raw := `{"trace_id":12345678901234567891,"ratio":0.1,"a":{"z":1,"b":[1.50,2]}}`
		msg, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    "hello",
			Metadata:   json.RawMessage(raw),
		})
		require.NoError(t, err)
		assert.Equal(t, raw, string(msg.Metadata))

		messages, err := f.chats.ListMessages(ctx, alice, session.Id)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, raw, string(messages[0].Metadata))
	})

	t.Run("metadata whitespace is compacted and null means absent", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		msg, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    "hello",
			Metadata:   json.RawMessage(" { \"k\" : \"v w\" }\n"),
		})
		require.NoError(t, err)
		assert.Equal(t, `{"k":"v w"}`, string(msg.Metadata))

		msg, err = f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    "hello",
			Metadata:   json.RawMessage("null"),
		})
		require.NoError(t, err)
		assert.Nil(t, msg.Metadata)
	})

	t.Run("metadata that is not an object is rejected", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		for _, raw := range []string{`[1,2]`, `"text"`, `42`, `true`, `{"a":`} {
			_, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
				SenderRole: constant.ChatMessageRoleUser,
				Content:    "hello",
				Metadata:   json.RawMessage(raw),
			})
			assert.ErrorIs(t, err, apperror.ErrValidation, raw)
		}

		messages, err := f.chats.ListMessages(ctx, alice, session.Id)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("foreign and missing sessions produce the same error and write nothing", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		req := &dto.CreateChatMessageRequest{SenderRole: constant.ChatMessageRoleUser, Content: "intrusion"}
		_, errForeign := f.chats.CreateMessage(ctx, bob, session.Id, req)
		_, errMissing := f.chats.CreateMessage(ctx, bob, uuid.New(), req)

		assert.ErrorIs(t, errForeign, apperror.ErrNotFoundOrForbidden)
		assert.Equal(t, errMissing, errForeign)

		messages, err := f.chats.ListMessages(ctx, alice, session.Id)
		require.NoError(t, err)
		assert.Empty(t, messages)

		sessions, err := f.chats.ListSessions(ctx, alice, false)
		require.NoError(t, err)
		assert.Nil(t, sessions[0].LastMessageAt)
		assert.Equal(t, session.UpdatedAt, sessions[0].UpdatedAt)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.chats.CreateMessage(ctx, nil, uuid.New(), &dto.CreateChatMessageRequest{
			SenderRole: constant.ChatMessageRoleUser,
			Content:    "hi",
		})
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestChatService_ListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("messages with equal timestamps keep insertion order", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)
		f.fixedClock(session.CreatedAt.Add(time.Second))

		contents := []string{"one", "two", "three", "four", "five"}
		for i, content := range contents {
			role := constant.ChatMessageRoleUser
			if i%2 == 1 {
				role = constant.ChatMessageRoleCharacter
			}
			_, err := f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
				SenderRole: role,
				Content:    content,
			})
			require.NoError(t, err)
		}

		messages, err := f.chats.ListMessages(ctx, alice, session.Id)
		require.NoError(t, err)
		require.Len(t, messages, len(contents))
		for i, m := range messages {
			assert.Equal(t, contents[i], m.Content)
		}
	})

	t.Run("messages are scoped to their session", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		one := f.openSession(t, alice, system.Id)
		two := f.openSession(t, alice, system.Id)

		_, err := f.chats.CreateMessage(ctx, alice, one.Id, &dto.CreateChatMessageRequest{SenderRole: "user", Content: "in one"})
		require.NoError(t, err)
		_, err = f.chats.CreateMessage(ctx, alice, two.Id, &dto.CreateChatMessageRequest{SenderRole: "user", Content: "in two"})
		require.NoError(t, err)

		messages, err := f.chats.ListMessages(ctx, alice, one.Id)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "in one", messages[0].Content)
	})

	t.Run("foreign session is indistinguishable from a missing one", func(t *testing.T) {
		f := newFixture(t)
		system := f.seedSystemCharacter(t, "Narrator")
		session := f.openSession(t, alice, system.Id)

		_, errForeign := f.chats.ListMessages(ctx, bob, session.Id)
		_, errMissing := f.chats.ListMessages(ctx, bob, uuid.New())
		assert.ErrorIs(t, errForeign, apperror.ErrNotFoundOrForbidden)
		assert.Equal(t, errMissing, errForeign)
	})
}

// End to end: a user creates a character, chats with it, archives the session and
// then finds it again only when asking for archived sessions.
func TestChatService_Conversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	character, err := f.characters.Create(ctx, alice, &dto.CreateCharacterRequest{Name: "Socrates"})
	require.NoError(t, err)

	session := f.openSession(t, alice, character.Id)

	var last *dto.ChatMessageResponse
	for _, turn := range []struct{ role, content string }{
		{constant.ChatMessageRoleUser, "What is virtue?"},
		{constant.ChatMessageRoleCharacter, "What do you think it is?"},
		{constant.ChatMessageRoleUser, "Knowledge?"},
	} {
		last, err = f.chats.CreateMessage(ctx, alice, session.Id, &dto.CreateChatMessageRequest{
			SenderRole: turn.role,
			Content:    turn.content,
		})
		require.NoError(t, err)
	}

	messages, err := f.chats.ListMessages(ctx, alice, session.Id)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "What is virtue?", messages[0].Content)
	assert.Equal(t, last.Id, messages[2].Id)

	_, err = f.chats.UpdateSession(ctx, alice, session.Id, &dto.UpdateChatSessionRequest{IsArchived: boolPtr(true)})
	require.NoError(t, err)

	active, err := f.chats.ListSessions(ctx, alice, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := f.chats.ListSessions(ctx, alice, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].LastMessageAt)
	assert.Equal(t, last.CreatedAt, *all[0].LastMessageAt)
	assert.True(t, all[0].IsArchived)

	raw, err := json.Marshal(all[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"is_archived":true`)
}
