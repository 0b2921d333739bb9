package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"character-chat-be/internal/constant"
	"character-chat-be/internal/dto"
	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/pkg/apperror"
	"character-chat-be/internal/pkg/logger"
	"character-chat-be/internal/pkg/validation"
	"character-chat-be/internal/repository/specification"
	"character-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const chatModule = "chat"

type IChatService interface {
	CreateSession(ctx context.Context, identity *entity.Identity, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error)
	UpdateSession(ctx context.Context, identity *entity.Identity, id uuid.UUID, req *dto.UpdateChatSessionRequest) (*dto.ChatSessionResponse, error)
	ListSessions(ctx context.Context, identity *entity.Identity, includeArchived bool) ([]*dto.ChatSessionResponse, error)
	CreateMessage(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error)
	ListMessages(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	mapper     *mapper.ChatMapper
	now        func() time.Time
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		logger:     logger,
		mapper:     mapper.NewChatMapper(),
		now:        now,
	}
}

// CreateSession opens a session with a character the caller can see. Visibility is only
// checked here; sessions keep working if the character later becomes private.
func (cs *chatService) CreateSession(ctx context.Context, identity *entity.Identity, req *dto.CreateChatSessionRequest) (*dto.ChatSessionResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx, specification.ByID{ID: req.CharacterId})
	if err != nil {
		return nil, fmt.Errorf("find character: %w", err)
	}
	if character == nil {
		return nil, apperror.ErrNotFound
	}
	if !character.VisibleTo(identity.UserId) {
		cs.logger.Warn(chatModule, "session creation denied for private character", map[string]interface{}{
			"character_id": character.Id.String(),
			"user_id":      identity.UserId,
		})
		return nil, apperror.ErrForbidden
	}

	ts := cs.now()
	session := entity.ChatSession{
		Id:          uuid.New(),
		CharacterId: character.Id,
		UserId:      identity.UserId,
		Title:       req.Title,
		IsPinned:    false,
		IsArchived:  false,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		cs.logger.Error(chatModule, "failed to create session", map[string]interface{}{
			"character_id": character.Id.String(),
			"user_id":      identity.UserId,
			"error":        err,
		})
		return nil, fmt.Errorf("create session: %w", err)
	}

	cs.logger.Info(chatModule, "session created", map[string]interface{}{
		"session_id":   session.Id.String(),
		"character_id": character.Id.String(),
		"user_id":      identity.UserId,
	})
	return toChatSessionResponse(&session), nil
}

func (cs *chatService) UpdateSession(ctx context.Context, identity *entity.Identity, id uuid.UUID, req *dto.UpdateChatSessionRequest) (*dto.ChatSessionResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := entity.ChatSessionPatch{
		Title:          req.Title,
		ContextSummary: req.ContextSummary,
		IsPinned:       req.IsPinned,
		IsArchived:     req.IsArchived,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	affected, err := repo.UpdateWhere(ctx, cs.mapper.ChatSessionPatchToColumns(&patch, cs.now()),
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: identity.UserId},
	)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if affected == 0 {
		return nil, apperror.ErrNotFoundOrForbidden
	}

	session, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("reload session: %w", err)
	}
	if session == nil {
		return nil, apperror.ErrNotFoundOrForbidden
	}
	return toChatSessionResponse(session), nil
}

func (cs *chatService) ListSessions(ctx context.Context, identity *entity.Identity, includeArchived bool) ([]*dto.ChatSessionResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: identity.UserId},
	}
	if !includeArchived {
		specs = append(specs, specification.NotArchived{})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	response := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, toChatSessionResponse(s))
	}
	return response, nil
}

// CreateMessage appends a message and moves the session's recency to the message time,
// both inside one transaction.
func (cs *chatService) CreateMessage(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	metadata, err := compactMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := cs.findOwnedSession(ctx, uow, identity, sessionId)
	if err != nil {
		return nil, err
	}

	var senderId *string
	if req.SenderRole == constant.ChatMessageRoleUser {
		userId := identity.UserId
		senderId = &userId
	}

	message := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		UserId:        senderId,
		SenderRole:    req.SenderRole,
		Content:       req.Content,
		Metadata:      metadata,
		CreatedAt:     cs.now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	if _, err := uow.ChatSessionRepository().UpdateWhere(ctx,
		cs.mapper.ChatSessionRecencyColumns(message.CreatedAt),
		specification.ByID{ID: session.Id},
	); err != nil {
		return nil, fmt.Errorf("touch session: %w", err)
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error(chatModule, "failed to commit message", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err,
		})
		return nil, fmt.Errorf("commit message: %w", err)
	}

	cs.logger.Debug(chatModule, "message created", map[string]interface{}{
		"session_id":  session.Id.String(),
		"message_id":  message.Id.String(),
		"sender_role": message.SenderRole,
	})
	return toChatMessageResponse(&message), nil
}

func (cs *chatService) ListMessages(ctx context.Context, identity *entity.Identity, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := cs.findOwnedSession(ctx, uow, identity, sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "sequence"},
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	response := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, toChatMessageResponse(m))
	}
	return response, nil
}

// findOwnedSession returns apperror.ErrNotFoundOrForbidden for both a missing session and
// a session owned by another user.
func (cs *chatService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, identity *entity.Identity, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: identity.UserId},
	)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, apperror.ErrNotFoundOrForbidden
	}
	return session, nil
}

func toChatSessionResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:             s.Id,
		CharacterId:    s.CharacterId,
		UserId:         s.UserId,
		Title:          s.Title,
		ContextSummary: s.ContextSummary,
		IsPinned:       s.IsPinned,
		IsArchived:     s.IsArchived,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		LastMessageAt:  s.LastMessageAt,
	}
}

func toChatMessageResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	var metadata json.RawMessage
	if m.Metadata != nil {
		metadata = json.RawMessage(*m.Metadata)
	}
	return &dto.ChatMessageResponse{
		Id:            m.Id,
		ChatSessionId: m.ChatSessionId,
		UserId:        m.UserId,
		SenderRole:    m.SenderRole,
		Content:       m.Content,
		Metadata:      metadata,
		CreatedAt:     m.CreatedAt,
	}
}

// compactMetadata keeps the caller's bytes apart from insignificant whitespace.
// Absent or null metadata is stored as NULL; anything other than an object is rejected.
func compactMetadata(raw json.RawMessage) (*string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, apperror.Validation("metadata must be a JSON object")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, apperror.Validation("metadata must be a JSON object")
	}
	s := buf.String()
	return &s, nil
}
