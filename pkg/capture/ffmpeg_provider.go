package capture

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// FFmpegProvider reads devices through ffmpeg child processes, piping raw
// bgr24 frames and s16le samples over stdout. This avoids linking any
// camera or audio library into the binary.
type FFmpegProvider struct {
	Bin string
}

func NewFFmpegProvider(bin string) *FFmpegProvider {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegProvider{Bin: bin}
}

func videoInputFormat() string {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "v4l2"
	}
}

func audioInputFormat() string {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "alsa"
	}
}

func (p *FFmpegProvider) OpenCamera(cfg CameraConfig) (FrameSource, error) {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", videoInputFormat(),
		"-framerate", fmt.Sprintf("%d", cfg.FrameRate),
		"-video_size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-i", cfg.Device,
		"-f", "rawvideo",
		"-pix_fmt", "bgr24",
		"pipe:1",
	}
	cmd := exec.Command(p.Bin, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	return &ffmpegFrameSource{
		cmd:    cmd,
		out:    stdout,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

func (p *FFmpegProvider) OpenMicrophone(cfg MicrophoneConfig) (SampleSource, error) {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", audioInputFormat(),
		"-ar", fmt.Sprintf("%d", cfg.SampleRate),
		"-ac", fmt.Sprintf("%d", cfg.Channels),
		"-i", cfg.Device,
		"-f", "s16le",
		"pipe:1",
	}
	cmd := exec.Command(p.Bin, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	// 2 bytes per sample
	chunk := cfg.ChunkFrames * cfg.Channels * 2
	return &ffmpegSampleSource{
		cmd:       cmd,
		out:       stdout,
		chunkSize: chunk,
	}, nil
}

type ffmpegFrameSource struct {
	cmd    *exec.Cmd
	out    io.ReadCloser
	width  int
	height int
}

func (s *ffmpegFrameSource) ReadFrame() (*Frame, error) {
	buf := make([]byte, s.width*s.height*3)
	if _, err := io.ReadFull(s.out, buf); err != nil {
		return nil, err
	}
	return &Frame{Data: buf, Width: s.width, Height: s.height}, nil
}

func (s *ffmpegFrameSource) Close() error {
	_ = s.out.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
	return nil
}

type ffmpegSampleSource struct {
	cmd       *exec.Cmd
	out       io.ReadCloser
	chunkSize int
}

func (s *ffmpegSampleSource) ReadChunk() ([]byte, error) {
	buf := make([]byte, s.chunkSize)
	if _, err := io.ReadFull(s.out, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *ffmpegSampleSource) Close() error {
	_ = s.out.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
	return nil
}
