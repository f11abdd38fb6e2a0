package model

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectId    string    `gorm:"type:varchar(64);not null;index"`
	SubmissionId string    `gorm:"type:varchar(64);not null;index"`
	RoundNumber  int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Interview) TableName() string {
	return "interviews"
}
