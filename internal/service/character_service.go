package service

import (
	"context"
	"fmt"
	"time"

	"character-chat-be/internal/dto"
	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/pkg/apperror"
	"character-chat-be/internal/pkg/logger"
	"character-chat-be/internal/pkg/validation"
	"character-chat-be/internal/repository/specification"
	"character-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const characterModule = "character"

type ICharacterService interface {
	Create(ctx context.Context, identity *entity.Identity, req *dto.CreateCharacterRequest) (*dto.CharacterResponse, error)
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.CharacterResponse, error)
	// List returns public and system characters, plus the caller's own when includePrivate
	// is set and identity is present. identity may be nil.
	List(ctx context.Context, identity *entity.Identity, includePrivate bool) ([]*dto.CharacterResponse, error)
}

type characterService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	mapper     *mapper.CharacterMapper
	now        func() time.Time
}

func NewCharacterService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ICharacterService {
	return &characterService{
		uowFactory: uowFactory,
		logger:     logger,
		mapper:     mapper.NewCharacterMapper(),
		now:        now,
	}
}

func (s *characterService) Create(ctx context.Context, identity *entity.Identity, req *dto.CreateCharacterRequest) (*dto.CharacterResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ts := s.now()
	userId := identity.UserId
	character := entity.Character{
		Id:               uuid.New(),
		UserId:           &userId,
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		SystemPrompt:     req.SystemPrompt,
		SpeakingStyle:    req.SpeakingStyle,
		Domain:           req.Domain,
		AvatarUrl:        req.AvatarUrl,
		IsSystem:         false,
		IsPublic:         isPublic,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CharacterRepository().Create(ctx, &character); err != nil {
		s.logger.Error(characterModule, "failed to create character", map[string]interface{}{
			"user_id": userId,
			"error":   err,
		})
		return nil, fmt.Errorf("create character: %w", err)
	}

	s.logger.Info(characterModule, "character created", map[string]interface{}{
		"character_id": character.Id.String(),
		"user_id":      userId,
		"is_public":    character.IsPublic,
	})
	return toCharacterResponse(&character), nil
}

func (s *characterService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.CharacterResponse, error) {
	if !identity.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := entity.CharacterPatch{
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		SystemPrompt:     req.SystemPrompt,
		SpeakingStyle:    req.SpeakingStyle,
		Domain:           req.Domain,
		AvatarUrl:        req.AvatarUrl,
		IsPublic:         req.IsPublic,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CharacterRepository()

	// Ownership is part of the predicate: a missing row and someone else's row both
	// update nothing and produce the same error.
	affected, err := repo.UpdateWhere(ctx, s.mapper.PatchToColumns(&patch, s.now()),
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: identity.UserId},
	)
	if err != nil {
		return nil, fmt.Errorf("update character: %w", err)
	}
	if affected == 0 {
		s.logger.Warn(characterModule, "character update rejected", map[string]interface{}{
			"character_id": id.String(),
			"user_id":      identity.UserId,
		})
		return nil, apperror.ErrNotFoundOrForbidden
	}

	character, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("reload character: %w", err)
	}
	if character == nil {
		return nil, apperror.ErrNotFoundOrForbidden
	}

	return toCharacterResponse(character), nil
}

func (s *characterService) List(ctx context.Context, identity *entity.Identity, includePrivate bool) ([]*dto.CharacterResponse, error) {
	visibility := specification.CharacterVisibleTo{}
	if includePrivate && identity.Authenticated() {
		visibility.UserID = identity.UserId
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	characters, err := uow.CharacterRepository().FindAll(ctx,
		visibility,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}

	response := make([]*dto.CharacterResponse, 0, len(characters))
	for _, c := range characters {
		response = append(response, toCharacterResponse(c))
	}
	return response, nil
}

func toCharacterResponse(c *entity.Character) *dto.CharacterResponse {
	return &dto.CharacterResponse{
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
