package capture

import "errors"

var ErrDeviceUnavailable = errors.New("capture device unavailable")

// Frame is one raw BGR24 video frame.
type Frame struct {
	Data   []byte
	Width  int
	Height int
}

// Mirror flips the frame horizontally in place, matching what a subject
// expects to see of themselves on screen.
func (f *Frame) Mirror() {
	stride := f.Width * 3
	for y := 0; y < f.Height; y++ {
		row := f.Data[y*stride : (y+1)*stride]
		for l, r := 0, f.Width-1; l < r; l, r = l+1, r-1 {
			li, ri := l*3, r*3
			row[li], row[ri] = row[ri], row[li]
			row[li+1], row[ri+1] = row[ri+1], row[li+1]
			row[li+2], row[ri+2] = row[ri+2], row[li+2]
		}
	}
}

type CameraConfig struct {
	Device    string
	Width     int
	Height    int
	FrameRate int
}

type MicrophoneConfig struct {
	Device      string
	SampleRate  int
	Channels    int
	ChunkFrames int
}

// FrameSource yields raw video frames until closed.
type FrameSource interface {
	ReadFrame() (*Frame, error)
	Close() error
}

// SampleSource yields raw PCM sample chunks until closed.
type SampleSource interface {
	ReadChunk() ([]byte, error)
	Close() error
}

// DeviceProvider opens the physical (or synthetic) capture devices.
type DeviceProvider interface {
	OpenCamera(cfg CameraConfig) (FrameSource, error)
	OpenMicrophone(cfg MicrophoneConfig) (SampleSource, error)
}
