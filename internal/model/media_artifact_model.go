package model

import (
	"time"

	"github.com/google/uuid"
)

type MediaArtifact struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InterviewId uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(16);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	Width       int
	Height      int
	FrameRate   int
	SampleRate  int
	Channels    int
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (MediaArtifact) TableName() string {
	return "media_artifacts"
}
