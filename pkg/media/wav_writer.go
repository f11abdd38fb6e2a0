package media

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

// WAVWriter streams s16le PCM to disk and patches the RIFF header with the
// final sizes on Close.
type WAVWriter struct {
	file       *os.File
	sampleRate int
	channels   int
	dataBytes  uint32
}

func NewWAVWriter(path string, sampleRate, channels int) (*WAVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := &WAVWriter{
		file:       f,
		sampleRate: sampleRate,
		channels:   channels,
	}
	if err := w.writeHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func (w *WAVWriter) writeHeader() error {
	const bitsPerSample = 16
	byteRate := uint32(w.sampleRate * w.channels * bitsPerSample / 8)
	blockAlign := uint16(w.channels * bitsPerSample / 8)

	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+w.dataBytes)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)            // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)             // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(w.channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], w.dataBytes)

	if _, err := w.file.Seek(0, 0); err != nil {
		return err
	}
	_, err := w.file.Write(header[:])
	return err
}

func (w *WAVWriter) WriteChunk(chunk []byte) error {
	n, err := w.file.Write(chunk)
	w.dataBytes += uint32(n)
	return err
}

func (w *WAVWriter) Close() error {
	if err := w.writeHeader(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
