package contract

import (
	"context"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/repository/specification"
)

// MetricRepository persists the three analysis result families. They always
// travel together (one row each per analyzed interview), so a single contract
// keeps the transaction story simple.
type MetricRepository interface {
	CreateEmotion(ctx context.Context, metric *entity.EmotionMetric) error
	CreatePosture(ctx context.Context, metric *entity.PostureMetric) error
	CreateGaze(ctx context.Context, metric *entity.GazeMetric) error

	FindEmotion(ctx context.Context, specs ...specification.Specification) (*entity.EmotionMetric, error)
	FindPosture(ctx context.Context, specs ...specification.Specification) (*entity.PostureMetric, error)
	FindGaze(ctx context.Context, specs ...specification.Specification) (*entity.GazeMetric, error)
}
