package entity

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id           uuid.UUID
	SubmissionId string
	Position     int
	Content      string
	IsCommon     bool
	CreatedAt    time.Time
}
