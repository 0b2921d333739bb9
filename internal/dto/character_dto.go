package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCharacterRequest struct {
	Name             string  `json:"name" validate:"required,notblank,max=255"`
	Slug             *string `json:"slug" validate:"omitempty,max=255"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Description      *string `json:"description"`
	SystemPrompt     *string `json:"system_prompt"`
	SpeakingStyle    *string `json:"speaking_style"`
	Domain           *string `json:"domain" validate:"omitempty,max=100"`
	AvatarUrl        *string `json:"avatar_url" validate:"omitempty,url"`
	IsPublic         *bool   `json:"is_public"`
}

// UpdateCharacterRequest is a partial update: omitted fields are left as they are.
type UpdateCharacterRequest struct {
	Name             *string `json:"name" validate:"omitempty,notblank,max=255"`
	Slug             *string `json:"slug" validate:"omitempty,max=255"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Description      *string `json:"description"`
	SystemPrompt     *string `json:"system_prompt"`
	SpeakingStyle    *string `json:"speaking_style"`
	Domain           *string `json:"domain" validate:"omitempty,max=100"`
	AvatarUrl        *string `json:"avatar_url" validate:"omitempty,url"`
	IsPublic         *bool   `json:"is_public"`
}

type CharacterResponse struct {
	Id               uuid.UUID `json:"id"`
	UserId           *string   `json:"user_id"`
	Name             string    `json:"name"`
	Slug             *string   `json:"slug"`
	ShortDescription *string   `json:"short_description"`
	Description      *string   `json:"description"`
	SystemPrompt     *string   `json:"system_prompt"`
	SpeakingStyle    *string   `json:"speaking_style"`
	Domain           *string   `json:"domain"`
	AvatarUrl        *string   `json:"avatar_url"`
	IsSystem         bool      `json:"is_system"`
	IsPublic         bool      `json:"is_public"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
