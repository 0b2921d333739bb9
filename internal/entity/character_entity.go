package entity

import (
	"time"

	"github.com/google/uuid"
)

type Character struct {
	Id               uuid.UUID
	UserId           *string // nil for platform-provided characters
	Name             string
	Slug             *string
	ShortDescription *string
	Description      *string
	SystemPrompt     *string
	SpeakingStyle    *string
	Domain           *string
	AvatarUrl        *string
	IsSystem         bool
	IsPublic         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether userId owns the character. System characters have no owner.
func (c *Character) OwnedBy(userId string) bool {
	return c.UserId != nil && *c.UserId == userId
}

// VisibleTo reports whether the character may be read or chatted with by userId.
func (c *Character) VisibleTo(userId string) bool {
	return c.IsPublic || c.IsSystem || c.OwnedBy(userId)
}

// CharacterPatch carries the fields of a partial update. A nil field is left untouched.
type CharacterPatch struct {
	Name             *string
	Slug             *string
	ShortDescription *string
	Description      *string
	SystemPrompt     *string
	SpeakingStyle    *string
	Domain           *string
	AvatarUrl        *string
	IsPublic         *bool
}
