package contract

import (
	"context"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/repository/specification"
)

type MediaArtifactRepository interface {
	Create(ctx context.Context, artifact *entity.MediaArtifact) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaArtifact, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaArtifact, error)
}
