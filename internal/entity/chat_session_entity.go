package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id             uuid.UUID
	CharacterId    uuid.UUID
	UserId         string
	Title          *string
	ContextSummary *string
	IsPinned       bool
	IsArchived     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastMessageAt  *time.Time
}

type ChatSessionPatch struct {
	Title          *string
	ContextSummary *string
	IsPinned       *bool
	IsArchived     *bool
}
