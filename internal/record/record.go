package record

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/dreamware/shardmap/internal/codec"
	"github.com/dreamware/shardmap/internal/shard"
)

// HeaderSize is the fixed size of the record header: shard id (1 byte),
// item count (2 bytes), max items (2 bytes)
const HeaderSize = 1 + 2 + 2

// ErrInvalidShard is returned when a record's bytes do not describe a valid
// shard, or when a storage-unit address does not match its expected
// derivation
var ErrInvalidShard = errors.New("invalid shard record")

// Marshal encodes a shard into the payload bytes of its storage record
// Entry bytes are produced by the caller-supplied codec pair; the shard's
// own fields only reach the 5-byte header
func Marshal[K comparable, V any](s *shard.Shard[K, V], kc codec.Codec[K], vc codec.Codec[V]) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := buf.B[:0]
	b = append(b, s.ID())
	b = binary.LittleEndian.AppendUint16(b, uint16(s.Len()))
	b = binary.LittleEndian.AppendUint16(b, uint16(s.MaxCapacity()))

	var err error
	for _, e := range s.Entries() {
		if b, err = kc.Append(b, e.Key); err != nil {
			return nil, fmt.Errorf("encode key %v: %w", e.Key, err)
		}
		if b, err = vc.Append(b, e.Value); err != nil {
			return nil, fmt.Errorf("encode value for key %v: %w", e.Key, err)
		}
	}
	buf.B = b

	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Unmarshal decodes a shard from the payload bytes of its storage record
// Bytes past the encoded entries are slack from the record's fixed
// allocation and are ignored
// A truncated payload, an item count above max items, or a duplicate key
// all fail with ErrInvalidShard
func Unmarshal[K comparable, V any](data []byte, kc codec.Codec[K], vc codec.Codec[V]) (*shard.Shard[K, V], error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrInvalidShard, len(data), HeaderSize)
	}

	id := data[0]
	count := int(binary.LittleEndian.Uint16(data[1:3]))
	maxItems := binary.LittleEndian.Uint16(data[3:5])

	entries := make([]shard.Entry[K, V], 0, count)
	off := HeaderSize
	for i := 0; i < count; i++ {
		key, n, err := kc.Decode(data[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d key: %v", ErrInvalidShard, i, err)
		}
		off += n

		value, n, err := vc.Decode(data[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d value: %v", ErrInvalidShard, i, err)
		}
		off += n

		entries = append(entries, shard.Entry[K, V]{Key: key, Value: value})
	}

	s, err := shard.Restore(id, maxItems, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShard, err)
	}
	return s, nil
}
