package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartInterviewRequest struct {
	SubjectId    string   `json:"subject_id" validate:"required"`
	SubmissionId string   `json:"submission_id" validate:"required"`
	RoundNumber  int      `json:"round_number" validate:"required,min=1"`
	Questions    []string `json:"questions" validate:"omitempty,dive,required"`
}

type StartInterviewResponse struct {
	SessionId   string    `json:"session_id"`
	InterviewId uuid.UUID `json:"interview_id"`
	VideoFile   string    `json:"video_file"`
	AudioFile   string    `json:"audio_file"`
	Questions   []string  `json:"questions"`
}

type SessionStatusResponse struct {
	SessionId        string `json:"session_id"`
	Stage            string `json:"stage"`
	RemainingSeconds int    `json:"remaining_seconds"`
	QuestionIndex    int    `json:"question_index"`
	CurrentQuestion  string `json:"current_question,omitempty"`
	Finished         bool   `json:"finished"`
	VideoFile        string `json:"video_file,omitempty"`
	AudioFile        string `json:"audio_file,omitempty"`
}

type StopInterviewResponse struct {
	SessionId string `json:"session_id"`
	VideoFile string `json:"video_file"`
	AudioFile string `json:"audio_file"`
}

type ArtifactResponse struct {
	Id        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

type ListArtifactsResponse struct {
	InterviewId uuid.UUID          `json:"interview_id"`
	Artifacts   []ArtifactResponse `json:"artifacts"`
}
