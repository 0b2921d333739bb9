package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	UserId        *string
	SenderRole    string
	Content       string
	Metadata      *string // serialized JSON object
	Sequence      int64   // assigned by the store on insert
	CreatedAt     time.Time
}
