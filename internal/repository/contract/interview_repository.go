package contract

import (
	"context"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *entity.Interview) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
