package codec

import (
	"errors"
	"strings"
	"testing"
)

// TestUint64RoundTrip tests the fixed-width integer codec
func TestUint64RoundTrip(t *testing.T) {
	c := Uint64{}

	for _, v := range []uint64{0, 1, 1<<32 - 1, 1<<64 - 1} {
		buf, err := c.Append(nil, v)
		if err != nil {
			t.Fatalf("Failed to encode %d: %v", v, err)
		}
		if len(buf) != c.EncodedSize(v) {
			t.Errorf("Value %d: expected %d bytes, got %d", v, c.EncodedSize(v), len(buf))
		}

		got, n, err := c.Decode(buf)
		if err != nil {
			t.Fatalf("Failed to decode %d: %v", v, err)
		}
		if got != v || n != 8 {
			t.Errorf("Expected (%d, 8), got (%d, %d)", v, got, n)
		}
	}

	if c.FrameOverhead() != 0 {
		t.Errorf("Fixed-width codec must carry no framing, got %d", c.FrameOverhead())
	}
}

// TestStringRoundTrip tests the length-prefixed string codec
func TestStringRoundTrip(t *testing.T) {
	c := String{}

	for _, v := range []string{"", "a", "hello, shard", strings.Repeat("x", 300)} {
		buf, err := c.Append(nil, v)
		if err != nil {
			t.Fatalf("Failed to encode %q: %v", v, err)
		}
		if len(buf) != c.EncodedSize(v) {
			t.Errorf("Value %q: expected %d bytes, got %d", v, c.EncodedSize(v), len(buf))
		}

		got, n, err := c.Decode(buf)
		if err != nil {
			t.Fatalf("Failed to decode %q: %v", v, err)
		}
		if got != v || n != len(buf) {
			t.Errorf("Expected (%q, %d), got (%q, %d)", v, len(buf), got, n)
		}
	}
}

// TestStringTooLarge tests the length-prefix ceiling
func TestStringTooLarge(t *testing.T) {
	c := String{}

	_, err := c.Append(nil, strings.Repeat("x", 1<<16))
	if !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("Expected ErrValueTooLarge, got %v", err)
	}
}

// TestDecodeShortBuffer tests truncated input handling for every codec
func TestDecodeShortBuffer(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) (int, error)
		input  []byte
	}{
		{
			name: "uint64 truncated",
			decode: func(b []byte) (int, error) {
				_, n, err := Uint64{}.Decode(b)
				return n, err
			},
			input: []byte{1, 2, 3},
		},
		{
			name: "string missing prefix",
			decode: func(b []byte) (int, error) {
				_, n, err := String{}.Decode(b)
				return n, err
			},
			input: []byte{5},
		},
		{
			name: "string truncated payload",
			decode: func(b []byte) (int, error) {
				_, n, err := String{}.Decode(b)
				return n, err
			},
			input: []byte{5, 0, 'a', 'b'},
		},
		{
			name: "bytes truncated payload",
			decode: func(b []byte) (int, error) {
				_, n, err := Bytes{}.Decode(b)
				return n, err
			},
			input: []byte{3, 0, 'a'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.decode(tt.input)
			if !errors.Is(err, ErrShortBuffer) {
				t.Errorf("Expected ErrShortBuffer, got %v", err)
			}
			if n != 0 {
				t.Errorf("Expected 0 bytes consumed on failure, got %d", n)
			}
		})
	}
}

// TestBytesDecodeCopies tests that decoded slices do not alias the input
func TestBytesDecodeCopies(t *testing.T) {
	c := Bytes{}

	buf, err := c.Append(nil, []byte("payload"))
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	got, _, err := c.Decode(buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	buf[2] = 'X'
	if string(got) != "payload" {
		t.Errorf("Decoded value aliases the input buffer: %q", got)
	}
}

// TestAppendExtends tests that Append composes onto an existing buffer, the
// way the record layer chains keys and values
func TestAppendExtends(t *testing.T) {
	var buf []byte
	var err error

	if buf, err = (String{}).Append(buf, "key"); err != nil {
		t.Fatalf("Failed to encode key: %v", err)
	}
	if buf, err = (Uint64{}).Append(buf, 42); err != nil {
		t.Fatalf("Failed to encode value: %v", err)
	}

	k, n, err := String{}.Decode(buf)
	if err != nil || k != "key" {
		t.Fatalf("Expected key %q, got (%q, %v)", "key", k, err)
	}
	v, _, err := Uint64{}.Decode(buf[n:])
	if err != nil || v != 42 {
		t.Fatalf("Expected value 42, got (%d, %v)", v, err)
	}
}
