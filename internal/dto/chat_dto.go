package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionRequest struct {
	CharacterId uuid.UUID `json:"character_id" validate:"required"`
	Title       *string   `json:"title" validate:"omitempty,max=255"`
}

type UpdateChatSessionRequest struct {
	Title          *string `json:"title" validate:"omitempty,max=255"`
	ContextSummary *string `json:"context_summary"`
	IsPinned       *bool   `json:"is_pinned"`
	IsArchived     *bool   `json:"is_archived"`
}

type ChatSessionResponse struct {
	Id             uuid.UUID  `json:"id"`
	CharacterId    uuid.UUID  `json:"character_id"`
	UserId         string     `json:"user_id"`
	Title          *string    `json:"title"`
	ContextSummary *string    `json:"context_summary"`
	IsPinned       bool       `json:"is_pinned"`
	IsArchived     bool       `json:"is_archived"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastMessageAt  *time.Time `json:"last_message_at"`
}

type CreateChatMessageRequest struct {
	SenderRole string          `json:"sender_role" validate:"required,oneof=user character system"`
	Content    string          `json:"content" validate:"required,notblank"`
	Metadata   json.RawMessage `json:"metadata"`
}

type ChatMessageResponse struct {
	Id            uuid.UUID       `json:"id"`
	ChatSessionId uuid.UUID       `json:"chat_session_id"`
	UserId        *string         `json:"user_id"`
	SenderRole    string          `json:"sender_role"`
	Content       string          `json:"content"`
	Metadata      json.RawMessage `json:"metadata"`
	CreatedAt     time.Time       `json:"created_at"`
}
