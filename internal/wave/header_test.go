package wave

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadHeader(t *testing.T) {
	want := pcmHeader(1, 16, 4)
	f := openFixture(t, writeFixture(t, want, []byte{1, 2, 3, 4}))

	got, err := ReadHeader(f)
	if err != nil {
		t.Fatalf("ReadHeader() returned error: %v", err)
	}

	want.FileSize = HeaderSize + 4
	if *got != *want {
		t.Errorf("ReadHeader() = %+v, want %+v", *got, *want)
	}
	if err := got.CheckSize(); err != nil {
		t.Errorf("CheckSize() = %v, want nil", err)
	}
}

func TestReadHeaderRewinds(t *testing.T) {
	f := openFixture(t, writeFixture(t, pcmHeader(1, 8, 8), make([]byte, 8)))

	if _, err := f.Seek(20, 0); err != nil {
		t.Fatalf("seek failed: %v", err)
	}

	h, err := ReadHeader(f)
	if err != nil {
		t.Fatalf("ReadHeader() returned error: %v", err)
	}
	if h.ChunkID != TagRIFF {
		t.Errorf("ChunkID = %q, want RIFF", h.ChunkID[:])
	}
}

func TestReadHeaderSizeMismatch(t *testing.T) {
	h := pcmHeader(1, 16, 4)
	h.ChunkSize = 1000
	f := openFixture(t, writeFixture(t, h, []byte{1, 2, 3, 4}))

	got, err := ReadHeader(f)
	if err != nil {
		t.Fatalf("ReadHeader() returned error on size mismatch: %v", err)
	}

	err = got.CheckSize()
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("CheckSize() = %v, want ErrSizeMismatch", err)
	}

	// Mismatch is a warning only; the header still validates
	if _, err := Validate(got); err != nil {
		t.Errorf("Validate() after mismatch returned error: %v", err)
	}
}

func TestReadHeaderInvalidFile(t *testing.T) {
	dir := t.TempDir()

	exact := filepath.Join(dir, "exact.wav")
	raw := pcmHeader(1, 16, 0).Bytes()
	if err := os.WriteFile(exact, raw[:], 0o644); err != nil {
		t.Fatal(err)
	}

	short := filepath.Join(dir, "short.wav")
	if err := os.WriteFile(short, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		path string
	}{
		{name: "header only, no data", path: exact},
		{name: "shorter than header", path: short},
		{name: "directory", path: dir},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := openFixture(t, tc.path)
			_, err := ReadHeader(f)
			if !errors.Is(err, ErrInvalidFile) {
				t.Errorf("ReadHeader() = %v, want ErrInvalidFile", err)
			}
		})
	}
}

func TestReadHeaderNilStream(t *testing.T) {
	_, err := ReadHeader(nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ReadHeader(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestReadHeaderClosedFile(t *testing.T) {
	path := writeFixture(t, pcmHeader(1, 16, 4), []byte{1, 2, 3, 4})
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	// Stat fails first on a closed file
	_, err = ReadHeader(f)
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("ReadHeader(closed) = %v, want ErrInvalidFile", err)
	}
}

func TestParseHeaderOffsets(t *testing.T) {
	var raw [HeaderSize]byte
	for i := range raw {
		raw[i] = byte(i)
	}

	h := ParseHeader(raw)

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"ChunkSize", h.ChunkSize, 0x07060504},
		{"Subchunk1Size", h.Subchunk1Size, 0x13121110},
		{"AudioFormat", uint32(h.AudioFormat), 0x1514},
		{"NumChannels", uint32(h.NumChannels), 0x1716},
		{"SampleRate", h.SampleRate, 0x1b1a1918},
		{"ByteRate", h.ByteRate, 0x1f1e1d1c},
		{"BlockAlign", uint32(h.BlockAlign), 0x2120},
		{"BitsPerSample", uint32(h.BitsPerSample), 0x2322},
		{"Subchunk2Size", h.Subchunk2Size, 0x2b2a2928},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %#x, want %#x", c.name, c.got, c.want)
		}
	}

	if h.Subchunk2ID != [4]byte{36, 37, 38, 39} {
		t.Errorf("Subchunk2ID = %v, want bytes 36..39", h.Subchunk2ID)
	}
	if h.Bytes() != raw {
		t.Error("Bytes() did not reproduce the parsed header")
	}
}
