package wave

import (
	"bufio"
	"fmt"
	"io"
)

// AllSamples asks Decode for every frame remaining after the start offset.
const AllSamples = -1

// SampleBuffer holds one 32-bit audio word per decoded frame.
// The least significant byte of every word is zero.
type SampleBuffer []uint32

// Decode reads PCM frames from r, starting startOffset bytes into the sample
// data, and converts each mono frame into an audio word (see AudioWord).
//
// sampleCount is the number of counter units to decode, or AllSamples. The
// returned buffer always has exactly that length. Decode does not check the
// count against the data chunk size, but a count that runs past the end of the
// stream fails with ErrTruncatedData before any buffer is allocated.
//
// Stereo input is read but not decoded. Each stereo frame consumes two counter
// units and leaves its buffer entries zero, so the buffer has the requested
// length but only zero words.
func Decode(r io.ReadSeeker, h *Header, sampleCount int, startOffset int64) (SampleBuffer, error) {
	if r == nil || h == nil {
		return nil, fmt.Errorf("%w: nil stream or header", ErrInvalidArgument)
	}
	if h.NumChannels != 1 && h.NumChannels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, h.NumChannels)
	}
	if startOffset < 0 {
		return nil, fmt.Errorf("%w: negative start offset %d", ErrInvalidArgument, startOffset)
	}
	if sampleCount < 0 && sampleCount != AllSamples {
		return nil, fmt.Errorf("%w: sample count %d", ErrInvalidArgument, sampleCount)
	}

	width, err := sampleWidth(h.BitsPerSample)
	if err != nil {
		return nil, err
	}

	if sampleCount == AllSamples {
		remaining := h.DeclaredSize() - HeaderSize - startOffset
		if remaining < 0 {
			return nil, fmt.Errorf("%w: start offset %d is past the declared data", ErrTruncatedData, startOffset)
		}
		sampleCount = int(remaining / int64(width))
	}

	// Refuse counts the stream cannot hold before allocating for them
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: seek to end: %w", ErrTruncatedData, err)
	}
	frames := int64(sampleCount)
	if h.NumChannels == 2 {
		frames = frames/2 + frames%2
	}
	frameSize := int64(width) * int64(h.NumChannels)
	available := end - HeaderSize - startOffset
	if frames > 0 && (available < 0 || frames > available/frameSize) {
		return nil, fmt.Errorf("%w: %d frames requested, stream holds %d", ErrTruncatedData, frames, max(available/frameSize, 0))
	}

	if _, err := r.Seek(HeaderSize+startOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek to offset %d: %w", ErrTruncatedData, startOffset, err)
	}

	samples := make(SampleBuffer, sampleCount)
	br := bufio.NewReader(r)
	frame := make([]byte, width*int(h.NumChannels))

	for remaining := sampleCount; remaining > 0; {
		if _, err := io.ReadFull(br, frame); err != nil {
			return nil, fmt.Errorf("%w: frame %d: %w", ErrTruncatedData, sampleCount-remaining, err)
		}

		if h.NumChannels == 2 {
			// Stereo frames are consumed but not decoded
			remaining -= 2
			continue
		}

		samples[sampleCount-remaining] = AudioWord(h.BitsPerSample, frame)
		remaining--
	}

	return samples, nil
}

// AudioWord packs the significant bytes of one frame into a 32-bit word.
//
// Each byte is treated as a signed 8-bit component and biased by +127. Byte i
// is shifted into slot (slots-1-i) of a 24-bit word, where slots is the larger
// of 24/bitsPerSample and bitsPerSample/8. The 24-bit word is then shifted
// left by 8, so the lowest byte is always zero. A component that biases to -1
// sets every bit above its slot; consumers rely on this exact pattern.
func AudioWord(bitsPerSample uint16, frame []byte) uint32 {
	width := int(bitsPerSample / 8)
	if width == 0 {
		return 0
	}
	slots := max(24/int(bitsPerSample), width)

	var word uint32
	for i := 0; i < width && i < len(frame); i++ {
		component := int32(int8(frame[i])) + 127
		word |= uint32(component << (8 * (slots - 1 - i)))
	}
	return word << 8
}

// sampleWidth returns the byte width of one channel sample
func sampleWidth(bitsPerSample uint16) (int, error) {
	switch bitsPerSample {
	case 8, 16, 24, 32:
		return int(bitsPerSample / 8), nil
	default:
		return 0, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedSampleWidth, bitsPerSample)
	}
}
