package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder implements AudioDecoder for MP3 files
type MP3Decoder struct {
	decoder     *mp3.Decoder
	file        *os.File
	sampleRate  int
	numChannels int
}

// NewMP3Decoder creates a new MP3 decoder
func NewMP3Decoder(filename string) (*MP3Decoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	return &MP3Decoder{
		decoder:     decoder,
		file:        f,
		sampleRate:  decoder.SampleRate(),
		numChannels: 2, // go-mp3 always outputs stereo
	}, nil
}

// ReadChunk reads the next chunk of samples
func (d *MP3Decoder) ReadChunk(numSamples int) ([]float64, error) {
	// go-mp3 output is interleaved 16-bit stereo: 4 bytes per frame
	buf := make([]byte, numSamples*4)

	n, err := io.ReadFull(d.decoder, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read MP3 data: %w", err)
	}

	if n < 4 {
		return nil, io.EOF
	}

	frames := n / 4
	samples := make([]float64, frames)

	for i := 0; i < frames; i++ {
		leftInt16 := int16(buf[i*4]) | (int16(buf[i*4+1]) << 8)
		left := float64(leftInt16) / 32768.0

		rightInt16 := int16(buf[i*4+2]) | (int16(buf[i*4+3]) << 8)
		right := float64(rightInt16) / 32768.0

		samples[i] = (left + right) / 2.0
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *MP3Decoder) SampleRate() int {
	return d.sampleRate
}

// NumSamples returns the decoded length in frames
func (d *MP3Decoder) NumSamples() int64 {
	return d.decoder.Length() / 4
}

// NumChannels returns the number of audio channels
func (d *MP3Decoder) NumChannels() int {
	return d.numChannels
}

// Close closes the decoder and releases resources
func (d *MP3Decoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
