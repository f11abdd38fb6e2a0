package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId string    `gorm:"type:varchar(64);not null;index"`
	Position     int       `gorm:"not null"`
	Content      string    `gorm:"type:text;not null"`
	IsCommon     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
