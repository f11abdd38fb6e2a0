package capture

import (
	"io"
	"sync"
)

// SyntheticProvider produces deterministic frames and silence without any
// hardware. Used by tests and the simulation tool.
type SyntheticProvider struct {
	// FailCamera and FailMicrophone force Open* to report an unavailable
	// device.
	FailCamera     bool
	FailMicrophone bool
}

func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

func (p *SyntheticProvider) OpenCamera(cfg CameraConfig) (FrameSource, error) {
	if p.FailCamera {
		return nil, ErrDeviceUnavailable
	}
	return &syntheticFrameSource{width: cfg.Width, height: cfg.Height}, nil
}

func (p *SyntheticProvider) OpenMicrophone(cfg MicrophoneConfig) (SampleSource, error) {
	if p.FailMicrophone {
		return nil, ErrDeviceUnavailable
	}
	return &syntheticSampleSource{chunkSize: cfg.ChunkFrames * cfg.Channels * 2}, nil
}

type syntheticFrameSource struct {
	mu      sync.Mutex
	closed  bool
	counter byte
	width   int
	height  int
}

func (s *syntheticFrameSource) ReadFrame() (*Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, io.EOF
	}
	buf := make([]byte, s.width*s.height*3)
	for i := range buf {
		buf[i] = s.counter
	}
	s.counter++
	return &Frame{Data: buf, Width: s.width, Height: s.height}, nil
}

func (s *syntheticFrameSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type syntheticSampleSource struct {
	mu        sync.Mutex
	closed    bool
	chunkSize int
}

func (s *syntheticSampleSource) ReadChunk() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, io.EOF
	}
	return make([]byte, s.chunkSize), nil
}

func (s *syntheticSampleSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
