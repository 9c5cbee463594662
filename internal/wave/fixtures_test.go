package wave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmHeader returns a canonical header for dataLen bytes of PCM data
func pcmHeader(channels, bitsPerSample uint16, dataLen int) *Header {
	blockAlign := channels * bitsPerSample / 8
	return &Header{
		ChunkID:       TagRIFF,
		ChunkSize:     uint32(36 + dataLen),
		Format:        TagWAVE,
		Subchunk1ID:   TagFmt,
		Subchunk1Size: 16,
		AudioFormat:   FormatPCM,
		NumChannels:   channels,
		SampleRate:    8000,
		ByteRate:      8000 * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   TagData,
		Subchunk2Size: uint32(dataLen),
	}
}

// writeFixture writes h followed by data to a file in a temp directory
func writeFixture(t *testing.T, h *Header, data []byte) string {
	t.Helper()

	raw := h.Bytes()
	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := os.WriteFile(path, append(raw[:], data...), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// openFixture opens path and closes it when the test ends
func openFixture(t *testing.T, path string) *os.File {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// encodeFixture writes a mono 16-bit WAV with go-audio/wav's encoder
func encodeFixture(t *testing.T, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "encoded.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 44100, 16, 1, FormatPCM)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to encode samples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to finalise fixture: %v", err)
	}
	return path
}
