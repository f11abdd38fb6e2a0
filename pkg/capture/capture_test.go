package capture

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMirror(t *testing.T) {
	// 2x1 frame: pixel A then pixel B
	f := &Frame{
		Data:   []byte{1, 2, 3, 4, 5, 6},
		Width:  2,
		Height: 1,
	}
	f.Mirror()
	assert.Equal(t, []byte{4, 5, 6, 1, 2, 3}, f.Data)
}

func TestFrameMirrorOddWidth(t *testing.T) {
	// 3x1 frame: middle pixel stays put
	f := &Frame{
		Data:   []byte{1, 1, 1, 2, 2, 2, 3, 3, 3},
		Width:  3,
		Height: 1,
	}
	f.Mirror()
	assert.Equal(t, []byte{3, 3, 3, 2, 2, 2, 1, 1, 1}, f.Data)
}

func TestFrameMirrorTwice(t *testing.T) {
	orig := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2}
	f := &Frame{Data: append([]byte(nil), orig...), Width: 2, Height: 2}
	f.Mirror()
	f.Mirror()
	assert.Equal(t, orig, f.Data)
}

func TestOpenReleasesCameraWhenMicrophoneFails(t *testing.T) {
	provider := &SyntheticProvider{FailMicrophone: true}

	ch, err := Open(provider, CameraConfig{Width: 4, Height: 4, FrameRate: 10}, MicrophoneConfig{SampleRate: 44100, Channels: 1, ChunkFrames: 16})
	require.ErrorIs(t, err, ErrDeviceUnavailable)
	assert.Nil(t, ch)
}

func TestOpenFailsWhenCameraUnavailable(t *testing.T) {
	provider := &SyntheticProvider{FailCamera: true}

	_, err := Open(provider, CameraConfig{Width: 4, Height: 4}, MicrophoneConfig{ChunkFrames: 16, Channels: 1})
	require.ErrorIs(t, err, ErrDeviceUnavailable)
}

func TestChannelCloseIsIdempotent(t *testing.T) {
	provider := NewSyntheticProvider()

	ch, err := Open(provider, CameraConfig{Width: 4, Height: 4, FrameRate: 10}, MicrophoneConfig{SampleRate: 44100, Channels: 1, ChunkFrames: 16})
	require.NoError(t, err)

	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())

	_, err = ch.Video.ReadFrame()
	assert.ErrorIs(t, err, io.EOF)
	_, err = ch.Audio.ReadChunk()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSyntheticSourcesProduceSizedOutput(t *testing.T) {
	provider := NewSyntheticProvider()

	ch, err := Open(provider, CameraConfig{Width: 8, Height: 6, FrameRate: 10}, MicrophoneConfig{SampleRate: 44100, Channels: 2, ChunkFrames: 32})
	require.NoError(t, err)
	defer ch.Close()

	frame, err := ch.Video.ReadFrame()
	require.NoError(t, err)
	assert.Len(t, frame.Data, 8*6*3)

	chunk, err := ch.Audio.ReadChunk()
	require.NoError(t, err)
	assert.Len(t, chunk, 32*2*2)
}
