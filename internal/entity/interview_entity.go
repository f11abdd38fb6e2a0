package entity

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	Id           uuid.UUID
	SubjectId    string
	SubmissionId string
	RoundNumber  int
	CreatedAt    time.Time
}
