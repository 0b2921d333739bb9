package memory

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/model"
	"character-chat-be/internal/repository/contract"
	"character-chat-be/internal/repository/specification"
)

type ChatSessionRepository struct {
	table  *table[model.ChatSession]
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(store *Store, journal *Journal) contract.ChatSessionRepository {
	return &ChatSessionRepository{
		table: &table[model.ChatSession]{
			store:     store,
			cache:     store.sessions,
			journal:   journal,
			key:       func(s *model.ChatSession) string { return s.Id.String() },
			row:       chatSessionRow,
			set:       setChatSessionColumn,
			parent:    store.characters,
			parentKey: func(s *model.ChatSession) string { return s.CharacterId.String() },
		},
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.table.insert(ctx, m); err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepository) UpdateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error) {
	return r.table.updateWhere(ctx, columns, specs...)
}

func (r *ChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	m, err := r.table.findOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(m), nil
}

func (r *ChatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	models, err := r.table.findAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatSessionsToEntities(models), nil
}
