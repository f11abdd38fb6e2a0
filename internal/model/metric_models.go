package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmotionMetric struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InterviewId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Averages    datatypes.JSONMap `gorm:"type:jsonb"`
	Score       float64           `gorm:"not null"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

func (EmotionMetric) TableName() string {
	return "emotion_metrics"
}

type PostureMetric struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InterviewId    uuid.UUID `gorm:"type:uuid;not null;index"`
	GoodPosePct    float64   `gorm:"not null"`
	BadNeckPct     float64   `gorm:"not null"`
	BadShoulderPct float64   `gorm:"not null"`
	BadPosePct     float64   `gorm:"not null"`
	Score          float64   `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (PostureMetric) TableName() string {
	return "posture_metrics"
}

type GazeMetric struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InterviewId uuid.UUID `gorm:"type:uuid;not null;index"`
	AvgMovement float64   `gorm:"not null"`
	MinMovement float64   `gorm:"not null"`
	MaxMovement float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (GazeMetric) TableName() string {
	return "gaze_metrics"
}
