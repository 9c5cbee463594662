package wave

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// stream returns an in-memory WAVE file for h and data
func stream(h *Header, data []byte) *bytes.Reader {
	raw := h.Bytes()
	return bytes.NewReader(append(raw[:], data...))
}

func TestDecodeMono16(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	h := pcmHeader(1, 16, len(data))

	got, err := Decode(stream(h, data), h, 2, 0)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}

	// 10+127=137 and 20+127=147 in the top two bytes of the 24-bit word
	want := SampleBuffer{137<<16 | 147<<8, 157<<16 | 167<<8}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %#08x, want %#08x", i, got[i], want[i])
		}
		if got[i]&0xFF != 0 {
			t.Errorf("word %d low byte = %#02x, want 0", i, got[i]&0xFF)
		}
	}
}

func TestAudioWord(t *testing.T) {
	testCases := []struct {
		name  string
		bits  uint16
		frame []byte
		want  uint32
	}{
		{name: "8-bit zero", bits: 8, frame: []byte{0x00}, want: 0x7F000000},
		{name: "8-bit max", bits: 8, frame: []byte{0x7F}, want: 0xFE000000},
		{name: "8-bit min biases to -1", bits: 8, frame: []byte{0x80}, want: 0xFF000000},
		{name: "16-bit", bits: 16, frame: []byte{10, 20}, want: 0x00899300},
		{name: "16-bit negative high byte", bits: 16, frame: []byte{0x00, 0xFF}, want: 0x007F7E00},
		{name: "16-bit min low byte", bits: 16, frame: []byte{0x80, 0x00}, want: 0xFFFF7F00},
		{name: "24-bit", bits: 24, frame: []byte{1, 2, 3}, want: 0x80818200},
		{name: "32-bit drops last component", bits: 32, frame: []byte{1, 2, 3, 4}, want: 0x81828300},
		{name: "zero width", bits: 4, frame: []byte{1}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AudioWord(tc.bits, tc.frame)
			if got != tc.want {
				t.Errorf("AudioWord(%d, %v) = %#08x, want %#08x", tc.bits, tc.frame, got, tc.want)
			}
		})
	}
}

func TestDecodeAllSamples(t *testing.T) {
	pcm := []int{0, 1000, -1000, 32767, -32768, 12, -12}
	path := encodeFixture(t, pcm)
	f := openFixture(t, path)

	h, err := ReadHeader(f)
	if err != nil {
		t.Fatalf("ReadHeader() returned error: %v", err)
	}
	if err := h.CheckSize(); err != nil {
		t.Fatalf("encoder fixture has inconsistent size: %v", err)
	}

	got, err := Decode(f, h, AllSamples, 0)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if len(got) != len(pcm) {
		t.Fatalf("len = %d, want %d", len(got), len(pcm))
	}

	for i, s := range pcm {
		frame := []byte{byte(uint16(s)), byte(uint16(s) >> 8)}
		if want := AudioWord(16, frame); got[i] != want {
			t.Errorf("word %d = %#08x, want %#08x", i, got[i], want)
		}
		if got[i]&0xFF != 0 {
			t.Errorf("word %d low byte = %#02x, want 0", i, got[i]&0xFF)
		}
	}
}

func TestDecodeStartOffset(t *testing.T) {
	data := []byte{1, 1, 10, 20, 30, 40}
	h := pcmHeader(1, 16, len(data))

	got, err := Decode(stream(h, data), h, AllSamples, 2)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}

	want := SampleBuffer{AudioWord(16, []byte{10, 20}), AudioWord(16, []byte{30, 40})}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Decode() = %#08x, want %#08x", got, want)
	}
}

func TestDecodeStereoLeavesWordsUnpopulated(t *testing.T) {
	data := []byte{
		10, 20, 30, 40,
		50, 60, 70, 80,
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	h := pcmHeader(2, 16, len(data))

	testCases := []struct {
		name    string
		count   int
		wantLen int
	}{
		{name: "explicit count", count: 4, wantLen: 4},
		{name: "odd count", count: 3, wantLen: 3},
		{name: "all samples", count: AllSamples, wantLen: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(stream(h, data), h, tc.count, 0)
			if err != nil {
				t.Fatalf("Decode() returned error: %v", err)
			}
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tc.wantLen)
			}
			for i, w := range got {
				if w != 0 {
					t.Errorf("word %d = %#08x, want 0 for undecoded stereo frame", i, w)
				}
			}
		})
	}
}

func TestDecodeUnsupportedChannels(t *testing.T) {
	for _, channels := range []uint16{0, 3, 4, 6, 0xFFFF} {
		h := pcmHeader(channels, 16, 8)
		h.BitsPerSample = 0
		h.ChunkID = [4]byte{}

		_, err := Decode(stream(h, make([]byte, 8)), h, AllSamples, 0)
		if !errors.Is(err, ErrUnsupportedChannelLayout) {
			t.Errorf("%d channels: Decode() = %v, want ErrUnsupportedChannelLayout", channels, err)
		}
	}
}

func TestDecodeUnsupportedSampleWidth(t *testing.T) {
	for _, bits := range []uint16{0, 4, 12, 20, 64} {
		h := pcmHeader(1, 16, 8)
		h.BitsPerSample = bits

		_, err := Decode(stream(h, make([]byte, 8)), h, 1, 0)
		if !errors.Is(err, ErrUnsupportedSampleWidth) {
			t.Errorf("%d bits: Decode() = %v, want ErrUnsupportedSampleWidth", bits, err)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	h := pcmHeader(1, 16, len(data))

	testCases := []struct {
		name   string
		count  int
		offset int64
	}{
		{name: "count past end of data", count: 3, offset: 0},
		{name: "offset past end of data", count: 1, offset: 100},
		{name: "all samples from past declared data", count: AllSamples, offset: 6},
		{name: "partial final frame", count: 2, offset: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(stream(h, data), h, tc.count, tc.offset)
			if !errors.Is(err, ErrTruncatedData) {
				t.Fatalf("Decode() = %v, want ErrTruncatedData", err)
			}
			if got != nil {
				t.Errorf("Decode() returned partial buffer of length %d", len(got))
			}
		})
	}
}

func TestDecodeDeclaredSizeBeyondFile(t *testing.T) {
	data := []byte{10, 20}
	h := pcmHeader(1, 16, len(data))
	h.ChunkSize += 100

	_, err := Decode(stream(h, data), h, AllSamples, 0)
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("Decode() = %v, want ErrTruncatedData", err)
	}
}

func TestDecodeCountLargerThanStream(t *testing.T) {
	data := []byte{10, 20}

	testCases := []struct {
		name      string
		channels  uint16
		chunkSize uint32
		count     int
	}{
		{name: "declared size at maximum", channels: 1, chunkSize: math.MaxUint32, count: AllSamples},
		{name: "huge explicit count", channels: 1, count: math.MaxInt},
		{name: "huge stereo count", channels: 2, count: math.MaxInt},
		{name: "stereo declared size at maximum", channels: 2, chunkSize: math.MaxUint32, count: AllSamples},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := pcmHeader(tc.channels, 8, len(data))
			if tc.chunkSize != 0 {
				h.ChunkSize = tc.chunkSize
			}

			got, err := Decode(stream(h, data), h, tc.count, 0)
			if !errors.Is(err, ErrTruncatedData) {
				t.Fatalf("Decode() = %v, want ErrTruncatedData", err)
			}
			if got != nil {
				t.Errorf("Decode() returned buffer of length %d", len(got))
			}
		})
	}
}

func TestDecodeZeroSamplesPastEnd(t *testing.T) {
	h := pcmHeader(1, 16, 4)

	got, err := Decode(stream(h, make([]byte, 4)), h, 0, 100)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDecodeZeroSamples(t *testing.T) {
	h := pcmHeader(1, 16, 4)

	got, err := Decode(stream(h, make([]byte, 4)), h, 0, 0)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDecodeInvalidArguments(t *testing.T) {
	h := pcmHeader(1, 16, 4)
	r := stream(h, make([]byte, 4))

	testCases := []struct {
		name string
		run  func() error
	}{
		{name: "nil stream", run: func() error { _, err := Decode(nil, h, 1, 0); return err }},
		{name: "nil header", run: func() error { _, err := Decode(r, nil, 1, 0); return err }},
		{name: "negative offset", run: func() error { _, err := Decode(r, h, 1, -1); return err }},
		{name: "negative count", run: func() error { _, err := Decode(r, h, -2, 0); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Decode() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
