package model

import (
	"time"

	"github.com/google/uuid"
)

type Character struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           *string   `gorm:"type:varchar(255);index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Slug             *string   `gorm:"type:varchar(255);index"`
	ShortDescription *string   `gorm:"type:text"`
	Description      *string   `gorm:"type:text"`
	SystemPrompt     *string   `gorm:"type:text"`
	SpeakingStyle    *string   `gorm:"type:text"`
	Domain           *string   `gorm:"type:varchar(100)"`
	AvatarUrl        *string   `gorm:"type:text"`
	IsSystem         bool      `gorm:"not null;default:false;index"`
	IsPublic         bool      `gorm:"not null;default:false;index"`
	CreatedAt        time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Character) TableName() string {
	return "characters"
}
