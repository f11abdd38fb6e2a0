package media

import (
	"fmt"
	"os"
	"os/exec"
)

// TranscodeToMP3 converts a wav recording to mp3 and removes the wav on
// success. The wav is an intermediate artifact only.
func TranscodeToMP3(bin, wavPath, mp3Path string) error {
	if _, err := os.Stat(wavPath); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return err
	}

	cmd := exec.Command(bin,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", wavPath,
		"-c:a", "libmp3lame",
		"-q:a", "2",
		mp3Path,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("transcode failed: %v: %s", err, out)
	}

	return os.Remove(wavPath)
}
