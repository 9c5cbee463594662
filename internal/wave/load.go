package wave

import (
	"errors"
	"fmt"
	"os"
)

// Samples is the result of loading a WAVE file.
type Samples struct {
	Header *Header
	Params Params
	Buffer SampleBuffer

	// Warning is non-nil when the header's declared size disagrees with the
	// file size. It wraps ErrSizeMismatch.
	Warning error
}

// Load opens path, reads and validates its header, and decodes sampleCount
// frames starting startOffset bytes into the sample data. The file is closed
// before Load returns, whatever the outcome.
func Load(path string, sampleCount int, startOffset int64) (*Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	return LoadFile(f, sampleCount, startOffset)
}

// LoadFile runs the header reader, validator and decoder against an open
// file. The caller keeps ownership of f.
func LoadFile(f File, sampleCount int, startOffset int64) (*Samples, error) {
	h, err := ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	params, err := Validate(h)
	if err != nil {
		return nil, fmt.Errorf("failed to validate header: %w", err)
	}

	buf, err := Decode(f, h, sampleCount, startOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}

	s := &Samples{
		Header: h,
		Params: params,
		Buffer: buf,
	}
	if err := h.CheckSize(); errors.Is(err, ErrSizeMismatch) {
		s.Warning = err
	}
	return s, nil
}
