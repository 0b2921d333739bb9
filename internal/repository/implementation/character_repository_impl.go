package implementation

import (
	"context"
	"errors"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/mapper"
	"character-chat-be/internal/model"
	"character-chat-be/internal/repository/contract"
	"character-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CharacterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CharacterMapper
}

func NewCharacterRepository(db *gorm.DB) contract.CharacterRepository {
	return &CharacterRepositoryImpl{
		db:     db,
		mapper: mapper.NewCharacterMapper(),
	}
}

func (r *CharacterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CharacterRepositoryImpl) Create(ctx context.Context, character *entity.Character) error {
	m := r.mapper.ToModel(character)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*character = *r.mapper.ToEntity(m)
	return nil
}

func (r *CharacterRepositoryImpl) UpdateWhere(ctx context.Context, columns map[string]interface{}, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Character{}), specs...)
	result := query.Updates(columns)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CharacterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Character, error) {
	var m model.Character
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CharacterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Character, error) {
	var models []*model.Character
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
