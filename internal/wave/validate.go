package wave

import "fmt"

// Params are the audio parameters of a validated header.
type Params struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	TotalSize     int64 // declared file size in bytes
}

// String returns the one-line summary printed when a file is opened
func (p Params) String() string {
	return fmt.Sprintf("Number of channels: %d, Sample Rate: %dHz, Total Size: %d bytes",
		p.Channels, p.SampleRate, p.TotalSize)
}

// Validate checks that h describes uncompressed PCM WAVE audio.
// Checks run in order (RIFF tag, WAVE tag, PCM format code) and the first
// failure is returned wrapping ErrNotWaveFormat.
func Validate(h *Header) (Params, error) {
	if h == nil {
		return Params{}, fmt.Errorf("%w: nil header", ErrInvalidArgument)
	}

	if h.ChunkID != TagRIFF {
		return Params{}, fmt.Errorf("%w: chunk ID %q is not RIFF", ErrNotWaveFormat, h.ChunkID[:])
	}
	if h.Format != TagWAVE {
		return Params{}, fmt.Errorf("%w: format %q is not WAVE", ErrNotWaveFormat, h.Format[:])
	}
	if h.AudioFormat != FormatPCM {
		return Params{}, fmt.Errorf("%w: audio format %d is not linear PCM", ErrNotWaveFormat, h.AudioFormat)
	}

	return Params{
		Channels:      int(h.NumChannels),
		SampleRate:    int(h.SampleRate),
		BitsPerSample: int(h.BitsPerSample),
		TotalSize:     h.DeclaredSize(),
	}, nil
}
