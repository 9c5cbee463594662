package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"
)

// VorbisDecoder implements AudioDecoder for Ogg Vorbis files
type VorbisDecoder struct {
	reader      *oggvorbis.Reader
	file        *os.File
	sampleRate  int
	numChannels int
}

// NewVorbisDecoder creates a new Ogg Vorbis decoder
func NewVorbisDecoder(filename string) (*VorbisDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create Vorbis decoder: %w", err)
	}

	return &VorbisDecoder{
		reader:      reader,
		file:        f,
		sampleRate:  reader.SampleRate(),
		numChannels: reader.Channels(),
	}, nil
}

// ReadChunk reads the next chunk of samples
func (d *VorbisDecoder) ReadChunk(numSamples int) ([]float64, error) {
	// Reader returns interleaved float32 values, numChannels per frame
	buf := make([]float32, numSamples*d.numChannels)

	n, err := d.reader.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read Vorbis data: %w", err)
	}

	frames := n / d.numChannels
	if frames == 0 {
		return nil, io.EOF
	}

	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < d.numChannels; ch++ {
			sum += float64(buf[i*d.numChannels+ch])
		}
		samples[i] = sum / float64(d.numChannels)
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *VorbisDecoder) SampleRate() int {
	return d.sampleRate
}

// NumSamples returns the stream length in frames
func (d *VorbisDecoder) NumSamples() int64 {
	return d.reader.Length()
}

// NumChannels returns the number of audio channels
func (d *VorbisDecoder) NumChannels() int {
	return d.numChannels
}

// Close closes the decoder and releases resources
func (d *VorbisDecoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
