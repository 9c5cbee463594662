package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AudioDecoder defines the interface for all input format decoders
type AudioDecoder interface {
	// ReadChunk reads the next chunk of mono samples as float64 in [-1, 1]
	// Returns io.EOF when the stream is exhausted
	ReadChunk(numSamples int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz
	SampleRate() int

	// NumSamples returns the total number of samples per channel
	// Returns 0 if the length is unknown
	NumSamples() int64

	// NumChannels returns the number of channels in the source (1=mono, 2=stereo)
	NumChannels() int

	// Close closes the decoder and releases resources
	Close() error
}

// NewDecoder opens filename with the decoder matching its extension
func NewDecoder(filename string) (AudioDecoder, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav", ".wave":
		return NewWAVDecoder(filename)
	case ".mp3":
		return NewMP3Decoder(filename)
	case ".flac":
		return NewFLACDecoder(filename)
	case ".ogg", ".oga":
		return NewVorbisDecoder(filename)
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
}

// NeedsTranscode reports whether filename must be converted to a canonical
// PCM WAVE file before its samples can be extracted
func NeedsTranscode(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".wave":
		return false
	default:
		return true
	}
}
