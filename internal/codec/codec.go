package codec

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortBuffer is returned when a decode runs out of input bytes
var ErrShortBuffer = errors.New("short buffer")

// ErrValueTooLarge is returned when a variable-length value does not fit its
// 2-byte length prefix
var ErrValueTooLarge = errors.New("value too large for length prefix")

// Codec encodes and decodes one concrete key or value type
// FrameOverhead must be constant for the type: every encoded value carries
// exactly EncodedSize(v) = fixed payload + FrameOverhead() bytes of framing,
// which is what lets callers size a storage record before it exists
type Codec[T any] interface {
	// Append encodes v and appends it to dst, returning the extended slice
	Append(dst []byte, v T) ([]byte, error)

	// Decode reads one value from the front of src and returns it together
	// with the number of bytes consumed
	Decode(src []byte) (T, int, error)

	// EncodedSize returns the exact number of bytes Append would produce
	// for v, framing included
	EncodedSize(v T) int

	// FrameOverhead returns the constant per-value framing cost in bytes
	FrameOverhead() int
}

// Uint64 encodes 64-bit integers as fixed 8-byte little-endian values
type Uint64 struct{}

func (Uint64) Append(dst []byte, v uint64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, v), nil
}

func (Uint64) Decode(src []byte) (uint64, int, error) {
	if len(src) < 8 {
		return 0, 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint64(src), 8, nil
}

func (Uint64) EncodedSize(uint64) int { return 8 }

func (Uint64) FrameOverhead() int { return 0 }

// String encodes strings as a 2-byte little-endian length prefix followed by
// the raw bytes
type String struct{}

func (String) Append(dst []byte, v string) ([]byte, error) {
	if len(v) > math.MaxUint16 {
		return dst, ErrValueTooLarge
	}
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(v)))
	return append(dst, v...), nil
}

func (String) Decode(src []byte) (string, int, error) {
	if len(src) < 2 {
		return "", 0, ErrShortBuffer
	}
	n := int(binary.LittleEndian.Uint16(src))
	if len(src) < 2+n {
		return "", 0, ErrShortBuffer
	}
	return string(src[2 : 2+n]), 2 + n, nil
}

func (String) EncodedSize(v string) int { return 2 + len(v) }

func (String) FrameOverhead() int { return 2 }

// Bytes encodes byte slices the same way String encodes strings
// Decoded slices are copies and never alias the input buffer
type Bytes struct{}

func (Bytes) Append(dst []byte, v []byte) ([]byte, error) {
	if len(v) > math.MaxUint16 {
		return dst, ErrValueTooLarge
	}
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(v)))
	return append(dst, v...), nil
}

func (Bytes) Decode(src []byte) ([]byte, int, error) {
	if len(src) < 2 {
		return nil, 0, ErrShortBuffer
	}
	n := int(binary.LittleEndian.Uint16(src))
	if len(src) < 2+n {
		return nil, 0, ErrShortBuffer
	}
	out := make([]byte, n)
	copy(out, src[2:2+n])
	return out, 2 + n, nil
}

func (Bytes) EncodedSize(v []byte) int { return 2 + len(v) }

func (Bytes) FrameOverhead() int { return 2 }
