package events

import "time"

// Event types emitted by the interview lifecycle.
const (
	TypeInterviewStarted  = "INTERVIEW_STARTED"
	TypeInterviewFinished = "INTERVIEW_FINISHED"
	TypeAnalysisCompleted = "ANALYSIS_COMPLETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INTERVIEW_STARTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewInterviewStarted is published when a recording session begins.
func NewInterviewStarted(sessionId, subjectId, submissionId string, round int) BaseEvent {
	return BaseEvent{
		Type: TypeInterviewStarted,
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"subject_id":    subjectId,
			"submission_id": submissionId,
			"round_number":  round,
		},
		OccurredAt: time.Now(),
	}
}

// NewInterviewFinished is published when the session reaches its final stage
// and both media files are sealed.
func NewInterviewFinished(sessionId, videoFile, audioFile string) BaseEvent {
	return BaseEvent{
		Type: TypeInterviewFinished,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"video_file": videoFile,
			"audio_file": audioFile,
		},
		OccurredAt: time.Now(),
	}
}

// NewAnalysisCompleted is published after metrics are persisted for a session.
func NewAnalysisCompleted(sessionId string, emotionScore, postureScore float64) BaseEvent {
	return BaseEvent{
		Type: TypeAnalysisCompleted,
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"emotion_score": emotionScore,
			"posture_score": postureScore,
		},
		OccurredAt: time.Now(),
	}
}
