package unitofwork

import (
	"context"
	"fmt"

	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when not started
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) InterviewRepository() contract.InterviewRepository {
	return implementation.NewInterviewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuestionRepository() contract.QuestionRepository {
	return implementation.NewQuestionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MediaArtifactRepository() contract.MediaArtifactRepository {
	return implementation.NewMediaArtifactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MetricRepository() contract.MetricRepository {
	return implementation.NewMetricRepository(u.getDB())
}
