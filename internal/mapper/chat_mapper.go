package mapper

import (
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
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

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
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

func (m *ChatMapper) ChatSessionsToEntities(sessions []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ChatSessionToEntity(s)
	}
	return entities
}

func (m *ChatMapper) ChatSessionPatchToColumns(p *entity.ChatSessionPatch, updatedAt time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": updatedAt}
	if p == nil {
		return columns
	}
	if p.Title != nil {
		columns["title"] = *p.Title
	}
	if p.ContextSummary != nil {
		columns["context_summary"] = *p.ContextSummary
	}
	if p.IsPinned != nil {
		columns["is_pinned"] = *p.IsPinned
	}
	if p.IsArchived != nil {
		columns["is_archived"] = *p.IsArchived
	}
	return columns
}

// ChatSessionRecencyColumns is the session update that accompanies every new message.
func (m *ChatMapper) ChatSessionRecencyColumns(at time.Time) map[string]interface{} {
	return map[string]interface{}{
		"updated_at":      at,
		"last_message_at": at,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var metadata *string
	if len(msg.Metadata) > 0 {
		s := string(msg.Metadata)
		metadata = &s
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		UserId:        msg.UserId,
		SenderRole:    msg.SenderRole,
		Content:       msg.Content,
		Metadata:      metadata,
		Sequence:      msg.Sequence,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var metadata datatypes.JSON
	if msg.Metadata != nil {
		metadata = datatypes.JSON(*msg.Metadata)
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		UserId:        msg.UserId,
		SenderRole:    msg.SenderRole,
		Content:       msg.Content,
		Metadata:      metadata,
		Sequence:      msg.Sequence,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, msg := range messages {
		entities[i] = m.ChatMessageToEntity(msg)
	}
	return entities
}
