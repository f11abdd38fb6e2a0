package implementation

import (
	"context"
	"errors"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/mapper"
	"mock-interview-be/internal/model"
	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MediaArtifactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MediaArtifactMapper
}

func NewMediaArtifactRepository(db *gorm.DB) contract.MediaArtifactRepository {
	return &MediaArtifactRepositoryImpl{
		db:     db,
		mapper: mapper.NewMediaArtifactMapper(),
	}
}

func (r *MediaArtifactRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MediaArtifactRepositoryImpl) Create(ctx context.Context, artifact *entity.MediaArtifact) error {
	m := r.mapper.ToModel(artifact)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*artifact = *r.mapper.ToEntity(m)
	return nil
}

func (r *MediaArtifactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaArtifact, error) {
	var m model.MediaArtifact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MediaArtifactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaArtifact, error) {
	var models []*model.MediaArtifact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
