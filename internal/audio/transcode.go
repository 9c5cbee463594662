package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// transcodeChunkSize is the number of samples read per decoder call
const transcodeChunkSize = 4096

// TranscodeToWAV drains dec and writes its samples to w as a canonical
// 16-bit mono PCM WAV file with a 44-byte header
func TranscodeToWAV(dec AudioDecoder, w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, dec.SampleRate(), 16, 1, 1)

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  dec.SampleRate(),
		},
		SourceBitDepth: 16,
	}

	written := 0
	for {
		chunk, err := dec.ReadChunk(transcodeChunkSize)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to decode input: %w", err)
		}

		if cap(intBuf.Data) < len(chunk) {
			intBuf.Data = make([]int, len(chunk))
		}
		intBuf.Data = intBuf.Data[:len(chunk)]
		for i, s := range chunk {
			intBuf.Data[i] = int(floatToPCM16(s))
		}

		if err := enc.Write(intBuf); err != nil {
			return fmt.Errorf("failed to write PCM data: %w", err)
		}
		written += len(chunk)
	}

	if written == 0 {
		return fmt.Errorf("input contains no audio samples")
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalise WAV header: %w", err)
	}
	return nil
}

// Source describes the input a transcode read from
type Source struct {
	SampleRate int
	Channels   int
	Samples    int64 // per channel, 0 when the decoder cannot tell
}

// String formats the source for display
func (s Source) String() string {
	if s.Samples == 0 {
		return fmt.Sprintf("%d ch, %d Hz", s.Channels, s.SampleRate)
	}
	return fmt.Sprintf("%d ch, %d Hz, %d samples", s.Channels, s.SampleRate, s.Samples)
}

// TranscodeFile decodes filename and writes a canonical PCM WAV copy to a
// temporary file. The caller must remove the returned path.
func TranscodeFile(filename string) (string, Source, error) {
	dec, err := NewDecoder(filename)
	if err != nil {
		return "", Source{}, err
	}
	defer dec.Close()

	src := Source{
		SampleRate: dec.SampleRate(),
		Channels:   dec.NumChannels(),
		Samples:    dec.NumSamples(),
	}

	out, err := os.CreateTemp("", "audiojak-*.wav")
	if err != nil {
		return "", src, fmt.Errorf("failed to create temporary WAV: %w", err)
	}

	if err := TranscodeToWAV(dec, out); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", src, err
	}

	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", src, fmt.Errorf("failed to close temporary WAV: %w", err)
	}
	return out.Name(), src, nil
}

// floatToPCM16 clamps x to [-1, 1] and scales it to a 16-bit sample
func floatToPCM16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
