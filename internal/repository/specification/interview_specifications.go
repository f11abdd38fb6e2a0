package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByInterviewID filters metric and artifact rows by their parent interview.
type ByInterviewID struct {
	InterviewID uuid.UUID
}

func (s ByInterviewID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interview_id = ?", s.InterviewID)
}

// BySubmissionID filters by the submission a question or interview belongs to.
type BySubmissionID struct {
	SubmissionID string
}

func (s BySubmissionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_id = ?", s.SubmissionID)
}

// ByKind filters media artifacts by kind ("video" or "audio").
type ByKind struct {
	Kind string
}

func (s ByKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", s.Kind)
}

// BySubjectID filters interviews by the interviewed subject.
type BySubjectID struct {
	SubjectID string
}

func (s BySubjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject_id = ?", s.SubjectID)
}
