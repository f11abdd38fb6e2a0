package dto

import "time"

type AnalyzeVideoRequest struct {
	InterviewId string `json:"interview_id" validate:"required,uuid"`
	SessionId   string `json:"session_id" validate:"required"`
	VideoFile   string `json:"video_file" validate:"required"`
}

// AnalyzeVideoMessage is the queue payload handed to the analysis consumer.
type AnalyzeVideoMessage struct {
	InterviewId string `json:"interview_id"`
	SessionId   string `json:"session_id"`
	VideoPath   string `json:"video_path"`
}

type EmotionResultResponse struct {
	Averages map[string]float64 `json:"averages"`
	Score    float64            `json:"score"`
}

type PostureResultResponse struct {
	GoodPosePct    float64 `json:"good_pose_pct"`
	BadNeckPct     float64 `json:"bad_neck_pct"`
	BadShoulderPct float64 `json:"bad_shoulder_pct"`
	BadPosePct     float64 `json:"bad_pose_pct"`
	Score          float64 `json:"score"`
}

type GazeResultResponse struct {
	AvgMovement float64 `json:"avg_movement"`
	MinMovement float64 `json:"min_movement"`
	MaxMovement float64 `json:"max_movement"`
}

type InterviewResultResponse struct {
	InterviewId string                 `json:"interview_id"`
	SessionId   string                 `json:"session_id"`
	Emotion     *EmotionResultResponse `json:"emotion,omitempty"`
	Posture     *PostureResultResponse `json:"posture,omitempty"`
	Gaze        *GazeResultResponse    `json:"gaze,omitempty"`
	AnalyzedAt  time.Time              `json:"analyzed_at"`
}
