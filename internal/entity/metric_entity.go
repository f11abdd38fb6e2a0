package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmotionMetric holds per-category emotion averages over all frames of a
// recording plus the derived score on the 10..100 scale.
type EmotionMetric struct {
	Id          uuid.UUID
	InterviewId uuid.UUID
	Averages    map[string]float64
	Score       float64
	CreatedAt   time.Time
}

// PostureMetric buckets every frame into exactly one posture class.
// The four percentages sum to 100.
type PostureMetric struct {
	Id             uuid.UUID
	InterviewId    uuid.UUID
	GoodPosePct    float64
	BadNeckPct     float64
	BadShoulderPct float64
	BadPosePct     float64
	Score          float64
	CreatedAt      time.Time
}

// GazeMetric summarizes eye-centroid displacement between consecutive frames.
type GazeMetric struct {
	Id          uuid.UUID
	InterviewId uuid.UUID
	AvgMovement float64
	MinMovement float64
	MaxMovement float64
	CreatedAt   time.Time
}
