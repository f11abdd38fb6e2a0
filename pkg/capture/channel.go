package capture

import "sync"

// Channel bundles the camera and microphone for one recording session.
// Open acquires both or neither.
type Channel struct {
	Video FrameSource
	Audio SampleSource

	closeOnce sync.Once
	closeErr  error
}

func Open(provider DeviceProvider, cam CameraConfig, mic MicrophoneConfig) (*Channel, error) {
	video, err := provider.OpenCamera(cam)
	if err != nil {
		return nil, err
	}

	audio, err := provider.OpenMicrophone(mic)
	if err != nil {
		// Camera must not stay locked when the mic fails
		_ = video.Close()
		return nil, err
	}

	return &Channel{Video: video, Audio: audio}, nil
}

// Close releases both devices. Safe to call more than once; readers blocked
// on the sources are unblocked with an error.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		verr := c.Video.Close()
		aerr := c.Audio.Close()
		if verr != nil {
			c.closeErr = verr
		} else {
			c.closeErr = aerr
		}
	})
	return c.closeErr
}
