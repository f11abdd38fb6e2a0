package media

import (
	"errors"

	"mock-interview-be/pkg/capture"
)

var (
	ErrFileNotFound    = errors.New("media file not found")
	ErrUnreadableVideo = errors.New("video file cannot be decoded")
)

// FrameSink consumes raw video frames and seals them into a container.
type FrameSink interface {
	WriteFrame(frame *capture.Frame) error
	Close() error
}

// SampleSink consumes raw PCM chunks.
type SampleSink interface {
	WriteChunk(chunk []byte) error
	Close() error
}

// Factory builds the writers for a session and finalizes audio. It exists so
// the recording flow can be exercised without spawning encoder processes.
type Factory interface {
	NewVideoWriter(path string, width, height, frameRate int) (FrameSink, error)
	NewAudioWriter(path string, sampleRate, channels int) (SampleSink, error)
	TranscodeToMP3(wavPath, mp3Path string) error
}
