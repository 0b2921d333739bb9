package memory

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/model"
	"character-chat-be/internal/repository/contract"
	"character-chat-be/internal/repository/specification"
)

type ChatMessageRepository struct {
	table  *table[model.ChatMessage]
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(store *Store, journal *Journal) contract.ChatMessageRepository {
	return &ChatMessageRepository{
		table: &table[model.ChatMessage]{
			store:     store,
			cache:     store.messages,
			journal:   journal,
			key:       func(m *model.ChatMessage) string { return m.Id.String() },
			row:       chatMessageRow,
			set:       setChatMessageColumn,
			parent:    store.sessions,
			parentKey: func(m *model.ChatMessage) string { return m.ChatSessionId.String() },
			onInsert:  func(m *model.ChatMessage, seq int64) { m.Sequence = seq },
		},
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ChatMessageToModel(message)
	if err := r.table.insert(ctx, m); err != nil {
		return err
	}
	*message = *r.mapper.ChatMessageToEntity(m)
	return nil
}

func (r *ChatMessageRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	m, err := r.table.findOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatMessageToEntity(m), nil
}

func (r *ChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	models, err := r.table.findAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatMessagesToEntities(models), nil
}
