package media

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"mock-interview-be/pkg/capture"
)

// VideoWriter pipes raw bgr24 frames into an ffmpeg child process that
// encodes an H.264 mp4.
type VideoWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	width  int
	height int
}

func NewVideoWriter(bin, path string, width, height, frameRate int) (*VideoWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "bgr24",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", frameRate),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		path,
	}
	cmd := exec.Command(bin, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &VideoWriter{
		cmd:    cmd,
		stdin:  stdin,
		width:  width,
		height: height,
	}, nil
}

func (w *VideoWriter) WriteFrame(frame *capture.Frame) error {
	if frame.Width != w.width || frame.Height != w.height {
		return fmt.Errorf("frame size %dx%d does not match writer %dx%d",
			frame.Width, frame.Height, w.width, w.height)
	}
	_, err := w.stdin.Write(frame.Data)
	return err
}

// Close ends the stream and waits for the encoder to seal the container.
func (w *VideoWriter) Close() error {
	if err := w.stdin.Close(); err != nil {
		_ = w.cmd.Wait()
		return err
	}
	return w.cmd.Wait()
}
