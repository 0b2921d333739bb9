package mapper

import (
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/model"
)

type CharacterMapper struct{}

func NewCharacterMapper() *CharacterMapper {
	return &CharacterMapper{}
}

func (m *CharacterMapper) ToEntity(c *model.Character) *entity.Character {
	if c == nil {
		return nil
	}
	return &entity.Character{
		Id:               c.Id,
		UserId:           c.UserId,
		Name:             c.Name,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		SystemPrompt:     c.SystemPrompt,
		SpeakingStyle:    c.SpeakingStyle,
		Domain:           c.Domain,
		AvatarUrl:        c.AvatarUrl,
		IsSystem:         c.IsSystem,
		IsPublic:         c.IsPublic,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToModel(c *entity.Character) *model.Character {
	if c == nil {
		return nil
	}
	return &model.Character{
		Id:               c.Id,
		UserId:           c.UserId,
		Name:             c.Name,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		SystemPrompt:     c.SystemPrompt,
		SpeakingStyle:    c.SpeakingStyle,
		Domain:           c.Domain,
		AvatarUrl:        c.AvatarUrl,
		IsSystem:         c.IsSystem,
		IsPublic:         c.IsPublic,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToEntities(characters []*model.Character) []*entity.Character {
	entities := make([]*entity.Character, len(characters))
	for i, c := range characters {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

// PatchToColumns converts a patch into the column set of a single UPDATE.
// updated_at is always part of it.
func (m *CharacterMapper) PatchToColumns(p *entity.CharacterPatch, updatedAt time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": updatedAt}
	if p == nil {
		return columns
	}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Slug != nil {
		columns["slug"] = *p.Slug
	}
	if p.ShortDescription != nil {
		columns["short_description"] = *p.ShortDescription
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}
	if p.SystemPrompt != nil {
		columns["system_prompt"] = *p.SystemPrompt
	}
	if p.SpeakingStyle != nil {
		columns["speaking_style"] = *p.SpeakingStyle
	}
	if p.Domain != nil {
		columns["domain"] = *p.Domain
	}
	if p.AvatarUrl != nil {
		columns["avatar_url"] = *p.AvatarUrl
	}
	if p.IsPublic != nil {
		columns["is_public"] = *p.IsPublic
	}
	return columns
}
