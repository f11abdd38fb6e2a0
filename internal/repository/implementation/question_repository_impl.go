package implementation

import (
	"context"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/mapper"
	"mock-interview-be/internal/model"
	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/internal/repository/specification"

	"gorm.io/gorm"
)

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var models []*model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Question{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
