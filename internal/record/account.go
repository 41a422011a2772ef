package record

import (
	"fmt"

	"github.com/dreamware/shardmap/internal/shard"
)

// AddressSize is the width of a storage-unit address in bytes
const AddressSize = 32

// Address identifies one storage unit in the host ledger runtime
type Address [AddressSize]byte

// DeriveAddressFunc is the external address-derivation capability supplied
// by the host runtime: given a routing namespace and a shard index it
// deterministically derives the unique storage-unit address for that shard
// plus an auxiliary disambiguation value
// The function must be pure and injective over (namespace, index) pairs;
// this package declares the seam and never implements it
type DeriveAddressFunc func(namespace []byte, index uint8) (Address, uint8)

// VerifyAddress checks a storage unit's actual address against the one the
// host runtime derived for it, failing with ErrInvalidShard on mismatch
func VerifyAddress(expected, actual Address) error {
	if expected != actual {
		return fmt.Errorf("%w: address mismatch: expected %x, got %x", ErrInvalidShard, expected, actual)
	}
	return nil
}

// AccountShard is the owner structure embedding a shard in a ledger
// account: the authority that controls the account plus the shard payload
// It holds the shard for its entire persisted lifetime; the shard itself
// knows nothing about where it is stored
type AccountShard[K comparable, V any] struct {
	Authority Address
	Shard     *shard.Shard[K, V]
}

// NewAccountShard creates an account wrapper around a fresh, empty shard
func NewAccountShard[K comparable, V any](authority Address, shardID uint8, maxItems uint16) *AccountShard[K, V] {
	return &AccountShard[K, V]{
		Authority: authority,
		Shard:     shard.New[K, V](shardID, maxItems),
	}
}

// AddressCodec encodes storage-unit addresses as fixed 32-byte values, the
// natural key type for shards that map addresses to balances or indexes
type AddressCodec struct{}

func (AddressCodec) Append(dst []byte, v Address) ([]byte, error) {
	return append(dst, v[:]...), nil
}

func (AddressCodec) Decode(src []byte) (Address, int, error) {
	var a Address
	if len(src) < AddressSize {
		return a, 0, fmt.Errorf("%d bytes is shorter than a %d-byte address", len(src), AddressSize)
	}
	copy(a[:], src)
	return a, AddressSize, nil
}

func (AddressCodec) EncodedSize(Address) int { return AddressSize }

func (AddressCodec) FrameOverhead() int { return 0 }

// IsZero reports whether the address is the all-zero value
func (a Address) IsZero() bool {
	return a == Address{}
}
