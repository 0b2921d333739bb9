package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CharacterId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId         string     `gorm:"type:varchar(255);not null;index"` // User ownership for data isolation
	Title          *string    `gorm:"type:text"`
	ContextSummary *string    `gorm:"type:text"`
	IsPinned       bool       `gorm:"not null;default:false"`
	IsArchived     bool       `gorm:"not null;default:false;index"`
	CreatedAt      time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt      time.Time  `gorm:"not null;autoUpdateTime:false"`
	LastMessageAt  *time.Time `gorm:"index"`

	Character Character `gorm:"foreignKey:CharacterId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
