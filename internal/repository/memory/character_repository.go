package memory

import (
	"context"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/model"
	"character-chat-be/internal/repository/contract"
	"character-chat-be/internal/repository/specification"
)

type CharacterRepository struct {
	table  *table[model.Character]
	mapper *mapper.CharacterMapper
}

func NewCharacterRepository(store *Store, journal *Journal) contract.CharacterRepository {
	return &CharacterRepository{
		table: &table[model.Character]{
			store:   store,
			cache:   store.characters,
			journal: journal,
			key:     func(c *model.Character) string { return c.Id.String() },
			row:     characterRow,
			set:     setCharacterColumn,
		},
		mapper: mapper.NewCharacterMapper(),
	}
}

func (r *CharacterRepository) Create(ctx context.Context, character *entity.Character) error {
	m := r.mapper.ToModel(character)
	if err := r.table.insert(ctx, m); err != nil {
		return err
	}
	*character = *r.mapper.ToEntity(m)
	return nil
}

func (r *CharacterRepository) UpdateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error) {
	return r.table.updateWhere(ctx, columns, specs...)
}

func (r *CharacterRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Character, error) {
	m, err := r.table.findOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *CharacterRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Character, error) {
	models, err := r.table.findAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
