package cwkit

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
)

// Hash is a 32-byte value such as a derived key or a content digest. It
// encodes as {"bytes":[...]} with one number per byte.
type Hash [EncKeyLen]byte

// ParseHash parses 64 hex characters.
func ParseHash(s string) (Hash, error) {
	var h Hash

	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if len(b) != EncKeyLen {
		return h, fmt.Errorf("%w: length is %d, want %d", ErrInvalidHash, len(b), EncKeyLen)
	}

	copy(h[:], b)
	return h, nil
}

// String returns the lowercase hex encoding.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// KeyBytes implements KeyMaterial.
func (h Hash) KeyBytes() [EncKeyLen]byte {
	return h
}

// ToNormDec maps the hash to a decimal in [0, 1): the first 16 bytes read
// as a big-endian integer divided by 2^128, truncated to 18 places.
func (h Hash) ToNormDec() cw.Decimal {
	var x uint256.Int
	x.SetBytes(h[:16])
	x.Mul(&x, uint256.NewInt(1_000_000_000_000_000_000))
	x.Rsh(&x, 128)

	// x < 10^18 here, so it always fits.
	atomics, _ := cw.Uint128FromBig(&x)
	return cw.DecimalFromAtomics(atomics)
}

type hashJSON struct {
	Bytes []int `json:"bytes"`
}

// MarshalJSON encodes the hash as {"bytes":[...]} with one integer per byte.
func (h Hash) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(h))
	for i, b := range h {
		ints[i] = int(b)
	}
	return json.Marshal(hashJSON{Bytes: ints})
}

// UnmarshalJSON accepts the form produced by MarshalJSON. Anything other than
// 32 integers in 0..255 fails with ErrInvalidHash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var v hashJSON
	if err := codec.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if len(v.Bytes) != EncKeyLen {
		return fmt.Errorf("%w: length is %d, want %d", ErrInvalidHash, len(v.Bytes), EncKeyLen)
	}

	for i, b := range v.Bytes {
		if b < 0 || b > 0xff {
			return fmt.Errorf("%w: element %d out of range", ErrInvalidHash, i)
		}
		h[i] = byte(b)
	}
	return nil
}
