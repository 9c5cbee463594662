package wave

import "errors"

var (
	// ErrInvalidArgument is returned when a required stream or header is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFile is returned when the stream is not a regular file large
	// enough to hold a WAVE header.
	ErrInvalidFile = errors.New("invalid WAVE file")

	ErrTruncatedHeader = errors.New("truncated WAVE header")
	ErrNotWaveFormat   = errors.New("not a PCM WAVE file")

	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrUnsupportedSampleWidth   = errors.New("unsupported sample width")

	// ErrTruncatedData is returned when sample data cannot be read or seeked.
	// Any partially decoded buffer is discarded.
	ErrTruncatedData = errors.New("truncated sample data")

	// ErrSizeMismatch is a warning: the declared chunk size does not match the
	// file size. It never aborts decoding.
	ErrSizeMismatch = errors.New("declared size does not match file size")
)
