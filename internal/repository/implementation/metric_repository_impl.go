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

type MetricRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MetricMapper
}

func NewMetricRepository(db *gorm.DB) contract.MetricRepository {
	return &MetricRepositoryImpl{
		db:     db,
		mapper: mapper.NewMetricMapper(),
	}
}

func (r *MetricRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MetricRepositoryImpl) CreateEmotion(ctx context.Context, metric *entity.EmotionMetric) error {
	m := r.mapper.ToEmotionModel(metric)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metric = *r.mapper.ToEmotionEntity(m)
	return nil
}

func (r *MetricRepositoryImpl) CreatePosture(ctx context.Context, metric *entity.PostureMetric) error {
	m := r.mapper.ToPostureModel(metric)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metric = *r.mapper.ToPostureEntity(m)
	return nil
}

func (r *MetricRepositoryImpl) CreateGaze(ctx context.Context, metric *entity.GazeMetric) error {
	m := r.mapper.ToGazeModel(metric)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metric = *r.mapper.ToGazeEntity(m)
	return nil
}

func (r *MetricRepositoryImpl) FindEmotion(ctx context.Context, specs ...specification.Specification) (*entity.EmotionMetric, error) {
	var m model.EmotionMetric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEmotionEntity(&m), nil
}

func (r *MetricRepositoryImpl) FindPosture(ctx context.Context, specs ...specification.Specification) (*entity.PostureMetric, error) {
	var m model.PostureMetric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToPostureEntity(&m), nil
}

func (r *MetricRepositoryImpl) FindGaze(ctx context.Context, specs ...specification.Specification) (*entity.GazeMetric, error) {
	var m model.GazeMetric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToGazeEntity(&m), nil
}
