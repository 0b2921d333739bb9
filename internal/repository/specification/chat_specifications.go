package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

func (s ByChatSessionID) IsSatisfiedBy(row Row) bool {
	return row["chat_session_id"] == s.ChatSessionID
}

type NotArchived struct{}

func (s NotArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", false)
}

func (s NotArchived) IsSatisfiedBy(row Row) bool {
	return row["is_archived"] == false
}
