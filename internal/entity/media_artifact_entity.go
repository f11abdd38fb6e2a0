package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactKind string

const (
	ArtifactVideo ArtifactKind = "video"
	ArtifactAudio ArtifactKind = "audio"
)

// MediaArtifact records one file produced by a recording session.
// Video rows carry frame geometry, audio rows carry sample format.
type MediaArtifact struct {
	Id          uuid.UUID
	InterviewId uuid.UUID
	Kind        ArtifactKind
	FileName    string
	Width       int
	Height      int
	FrameRate   int
	SampleRate  int
	Channels    int
	CreatedAt   time.Time
}
