package wave

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
)

// HeaderSize is the fixed length of a canonical RIFF/WAVE header.
// Sample data starts immediately after it.
const HeaderSize = 44

// Chunk tags of a canonical PCM WAVE file
var (
	TagRIFF = [4]byte{'R', 'I', 'F', 'F'}
	TagWAVE = [4]byte{'W', 'A', 'V', 'E'}
	TagFmt  = [4]byte{'f', 'm', 't', ' '}
	TagData = [4]byte{'d', 'a', 't', 'a'}
)

// FormatPCM is the audio format code for linear PCM.
const FormatPCM = 1

// Header layout, byte offsets into the first HeaderSize bytes
const (
	offChunkID       = 0
	offChunkSize     = 4
	offFormat        = 8
	offSubchunk1ID   = 12
	offSubchunk1Size = 16
	offAudioFormat   = 20
	offNumChannels   = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offSubchunk2ID   = 36
	offSubchunk2Size = 40
)

// File is a seekable byte stream backed by a file on disk.
// *os.File satisfies it.
type File interface {
	io.ReadSeeker
	Stat() (fs.FileInfo, error)
}

// Header is the canonical 44-byte RIFF/WAVE header. It is read-only once parsed.
type Header struct {
	ChunkID   [4]byte
	ChunkSize uint32 // total file size minus 8
	Format    [4]byte

	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16 // bytes per frame
	BitsPerSample uint16

	Subchunk2ID   [4]byte
	Subchunk2Size uint32

	// FileSize is the actual size of the file the header was read from
	FileSize int64
}

// ReadHeader reads the fixed WAVE header from the start of f.
// The stream must be a regular file larger than HeaderSize. A declared size
// that disagrees with the file size is not an error here; see CheckSize.
func ReadHeader(f File) (*Header, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil stream", ErrInvalidArgument)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidFile, info.Name())
	}
	if info.Size() <= HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too small for a header", ErrInvalidFile, info.Size())
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}

	var buf [HeaderSize]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}

	h := ParseHeader(buf)
	h.FileSize = info.Size()
	return h, nil
}

// ParseHeader extracts the header fields from a raw 44-byte header.
// All multi-byte fields are little-endian.
func ParseHeader(buf [HeaderSize]byte) *Header {
	le := binary.LittleEndian
	h := &Header{
		ChunkSize:     le.Uint32(buf[offChunkSize:]),
		Subchunk1Size: le.Uint32(buf[offSubchunk1Size:]),
		AudioFormat:   le.Uint16(buf[offAudioFormat:]),
		NumChannels:   le.Uint16(buf[offNumChannels:]),
		SampleRate:    le.Uint32(buf[offSampleRate:]),
		ByteRate:      le.Uint32(buf[offByteRate:]),
		BlockAlign:    le.Uint16(buf[offBlockAlign:]),
		BitsPerSample: le.Uint16(buf[offBitsPerSample:]),
		Subchunk2Size: le.Uint32(buf[offSubchunk2Size:]),
	}
	copy(h.ChunkID[:], buf[offChunkID:])
	copy(h.Format[:], buf[offFormat:])
	copy(h.Subchunk1ID[:], buf[offSubchunk1ID:])
	copy(h.Subchunk2ID[:], buf[offSubchunk2ID:])
	return h
}

// Bytes encodes the header back into its 44-byte layout.
func (h *Header) Bytes() [HeaderSize]byte {
	var buf [HeaderSize]byte
	le := binary.LittleEndian

	copy(buf[offChunkID:], h.ChunkID[:])
	le.PutUint32(buf[offChunkSize:], h.ChunkSize)
	copy(buf[offFormat:], h.Format[:])

	copy(buf[offSubchunk1ID:], h.Subchunk1ID[:])
	le.PutUint32(buf[offSubchunk1Size:], h.Subchunk1Size)
	le.PutUint16(buf[offAudioFormat:], h.AudioFormat)
	le.PutUint16(buf[offNumChannels:], h.NumChannels)
	le.PutUint32(buf[offSampleRate:], h.SampleRate)
	le.PutUint32(buf[offByteRate:], h.ByteRate)
	le.PutUint16(buf[offBlockAlign:], h.BlockAlign)
	le.PutUint16(buf[offBitsPerSample:], h.BitsPerSample)

	copy(buf[offSubchunk2ID:], h.Subchunk2ID[:])
	le.PutUint32(buf[offSubchunk2Size:], h.Subchunk2Size)
	return buf
}

// DeclaredSize returns the file size the header claims, chunkSize + 8.
func (h *Header) DeclaredSize() int64 {
	return int64(h.ChunkSize) + 8
}

// CheckSize reports whether the declared size matches the actual file size.
// A mismatch returns an error wrapping ErrSizeMismatch, which callers should
// treat as a warning.
func (h *Header) CheckSize() error {
	if h.DeclaredSize() != h.FileSize {
		return fmt.Errorf("%w: expected %d bytes, file has %d", ErrSizeMismatch, h.DeclaredSize(), h.FileSize)
	}
	return nil
}
