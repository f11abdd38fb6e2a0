package analysis

import (
	"context"
	"errors"

	"mock-interview-be/pkg/capture"
)

var ErrNoFrames = errors.New("video contains no decodable frames")

// Point is a 2D landmark in normalized [0,1] coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EmotionScores maps emotion category to its confidence percentage for one
// frame (categories: angry, disgust, fear, happy, sad, surprise, neutral).
type EmotionScores map[string]float64

type EmotionClassifier interface {
	ClassifyEmotion(ctx context.Context, frame *capture.Frame) (EmotionScores, error)
}

// PoseLandmarks carries the three landmarks posture analysis needs.
type PoseLandmarks struct {
	Detected      bool
	Nose          Point
	LeftShoulder  Point
	RightShoulder Point
}

type PoseEstimator interface {
	EstimatePose(ctx context.Context, frame *capture.Frame) (PoseLandmarks, error)
}

// EyeLandmarks carries the landmark points ringing each eye.
type EyeLandmarks struct {
	Detected bool
	Left     []Point
	Right    []Point
}

type FaceMeshEstimator interface {
	DetectEyes(ctx context.Context, frame *capture.Frame) (EyeLandmarks, error)
}

// FrameReader abstracts the decoded video stream.
type FrameReader interface {
	ReadFrame() (*capture.Frame, error)
	Close() error
}

// ReaderFactory opens a video file for frame iteration.
type ReaderFactory interface {
	OpenVideo(path string) (FrameReader, error)
}
