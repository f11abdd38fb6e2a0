package media

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"

	"mock-interview-be/pkg/capture"
)

// VideoReader decodes an mp4 back into raw bgr24 frames through ffmpeg.
// Geometry comes from an ffprobe pass before decoding starts.
type VideoReader struct {
	cmd    *exec.Cmd
	out    io.ReadCloser
	width  int
	height int
}

type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func probeDimensions(probeBin, path string) (int, int, error) {
	cmd := exec.Command(probeBin, "-v", "quiet", "-print_format", "json", "-show_streams", path)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnreadableVideo, err)
	}

	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnreadableVideo, err)
	}
	for _, s := range probe.Streams {
		if s.CodecType == "video" && s.Width > 0 && s.Height > 0 {
			return s.Width, s.Height, nil
		}
	}
	return 0, 0, ErrUnreadableVideo
}

func NewVideoReader(ffmpegBin, ffprobeBin, path string) (*VideoReader, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	width, height, err := probeDimensions(ffprobeBin, path)
	if err != nil {
		return nil, err
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", path,
		"-f", "rawvideo",
		"-pix_fmt", "bgr24",
		"pipe:1",
	}
	cmd := exec.Command(ffmpegBin, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableVideo, err)
	}

	return &VideoReader{
		cmd:    cmd,
		out:    stdout,
		width:  width,
		height: height,
	}, nil
}

// ReadFrame returns io.EOF when the stream is exhausted.
func (r *VideoReader) ReadFrame() (*capture.Frame, error) {
	buf := make([]byte, r.width*r.height*3)
	if _, err := io.ReadFull(r.out, buf); err != nil {
		// A trailing partial frame counts as end of stream
		if err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, err
	}
	return &capture.Frame{Data: buf, Width: r.width, Height: r.height}, nil
}

func (r *VideoReader) Close() error {
	_ = r.out.Close()
	if r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
	_ = r.cmd.Wait()
	return nil
}
