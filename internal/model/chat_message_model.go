package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index:idx_chat_messages_session_order,priority:1"`
	UserId        *string        `gorm:"type:varchar(255)"`
	SenderRole    string         `gorm:"type:varchar(20);not null"`
	Content       string         `gorm:"type:text;not null"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	Sequence      int64          `gorm:"autoIncrement;not null;uniqueIndex"`
	CreatedAt     time.Time      `gorm:"not null;index:idx_chat_messages_session_order,priority:2;autoCreateTime:false"`

	ChatSession ChatSession `gorm:"foreignKey:ChatSessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
