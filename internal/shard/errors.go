package shard

import "errors"

// ErrShardFull is returned when an insertion would need more new slots than
// the shard has remaining
var ErrShardFull = errors.New("shard is full")

// ErrKeyNotFound is returned when a removal targets a key with no matching
// entry
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidCapacity is returned when a resize requests a maximum below the
// current item count
var ErrInvalidCapacity = errors.New("invalid capacity: new capacity cannot be smaller than current item count")

// ErrDuplicateKey is returned when stored parts handed to Restore contain
// two entries with the same key
var ErrDuplicateKey = errors.New("duplicate key")
