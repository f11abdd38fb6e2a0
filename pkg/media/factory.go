package media

// FFmpegFactory builds real encoder-backed writers.
type FFmpegFactory struct {
	FFmpegBin string
}

func NewFFmpegFactory(ffmpegBin string) *FFmpegFactory {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	return &FFmpegFactory{FFmpegBin: ffmpegBin}
}

func (f *FFmpegFactory) NewVideoWriter(path string, width, height, frameRate int) (FrameSink, error) {
	return NewVideoWriter(f.FFmpegBin, path, width, height, frameRate)
}

func (f *FFmpegFactory) NewAudioWriter(path string, sampleRate, channels int) (SampleSink, error) {
	return NewWAVWriter(path, sampleRate, channels)
}

func (f *FFmpegFactory) TranscodeToMP3(wavPath, mp3Path string) error {
	return TranscodeToMP3(f.FFmpegBin, wavPath, mp3Path)
}
