package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// Metadata holds information about a WAV file
type Metadata struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Format     int // WAVE format code, 1 for linear PCM
	Duration   time.Duration
}

// Inspect reads the format chunk of a WAV file, skipping any chunks the
// canonical layout does not allow, and reports its duration from the size
// of the PCM chunk
func Inspect(filename string) (*Metadata, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("failed to seek to PCM data: %w", err)
	}

	var duration time.Duration
	bytesPerSecond := int64(decoder.SampleRate) * int64(decoder.NumChans) * int64(decoder.BitDepth/8)
	if bytesPerSecond > 0 {
		duration = time.Duration(decoder.PCMLen() * int64(time.Second) / bytesPerSecond)
	}

	return &Metadata{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
		Format:     int(decoder.WavAudioFormat),
		Duration:   duration,
	}, nil
}
