// Package seeder installs the platform-provided characters.
package seeder

import (
	"context"
	"fmt"
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/repository/specification"
	"character-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type SystemCharacter struct {
	Slug             string
	Name             string
	ShortDescription string
	SystemPrompt     string
	SpeakingStyle    string
	Domain           string
}

var DefaultSystemCharacters = []SystemCharacter{
	{
		Slug:             "narrator",
		Name:             "The Narrator",
		ShortDescription: "Sets the scene and keeps the story moving.",
		SystemPrompt:     "You are a storyteller. Describe scenes vividly and end each reply with a choice for the user.",
		SpeakingStyle:    "descriptive, second person",
		Domain:           "storytelling",
	},
	{
		Slug:             "tutor",
		Name:             "Patient Tutor",
		ShortDescription: "Explains things step by step.",
		SystemPrompt:     "You are a tutor. Ask what the user already knows, then explain one step at a time.",
		SpeakingStyle:    "calm, encouraging",
		Domain:           "education",
	},
	{
		Slug:             "debate-partner",
		Name:             "Debate Partner",
		ShortDescription: "Argues the other side, politely.",
		SystemPrompt:     "You take the opposing position to whatever the user argues and defend it with evidence.",
		SpeakingStyle:    "direct, courteous",
		Domain:           "reasoning",
	},
}

type Result struct {
	Created []string
	Skipped []string
}

// SeedSystemCharacters inserts every character whose slug is not yet taken by a system
// character. Running it twice creates nothing the second time.
func SeedSystemCharacters(ctx context.Context, factory unitofwork.RepositoryFactory, characters []SystemCharacter) (*Result, error) {
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.CharacterRepository()
	result := &Result{}

	for _, sc := range characters {
		existing, err := repo.FindOne(ctx, specification.SystemCharacters{}, specification.BySlug{Slug: sc.Slug})
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", sc.Slug, err)
		}
		if existing != nil {
			result.Skipped = append(result.Skipped, sc.Slug)
			continue
		}

		ts := time.Now().UTC().Truncate(time.Microsecond)
		slug, short, prompt, style, domain := sc.Slug, sc.ShortDescription, sc.SystemPrompt, sc.SpeakingStyle, sc.Domain
		character := &entity.Character{
			Id:               uuid.New(),
			Name:             sc.Name,
			Slug:             &slug,
			ShortDescription: &short,
			SystemPrompt:     &prompt,
			SpeakingStyle:    &style,
			Domain:           &domain,
			IsSystem:         true,
			IsPublic:         true,
			CreatedAt:        ts,
			UpdatedAt:        ts,
		}
		if err := repo.Create(ctx, character); err != nil {
			return nil, fmt.Errorf("create %s: %w", sc.Slug, err)
		}
		result.Created = append(result.Created, sc.Slug)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
