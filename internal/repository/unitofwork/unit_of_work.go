package unitofwork

import (
	"context"

	"mock-interview-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InterviewRepository() contract.InterviewRepository
	QuestionRepository() contract.QuestionRepository
	MediaArtifactRepository() contract.MediaArtifactRepository
	MetricRepository() contract.MetricRepository
}
