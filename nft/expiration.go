package nft

import (
	"encoding/json"
	"fmt"

	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
)

// Expiration is the point at which an approval lapses. Exactly one field
// is set.
type Expiration struct {
	AtHeight *uint64       `json:"at_height,omitempty"`
	AtTime   *cw.Timestamp `json:"at_time,omitempty"`
	Never    *struct{}     `json:"never,omitempty"`
}

// ExpiresAtHeight expires once the block height reaches height.
func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

// ExpiresAtTime expires once the block time reaches t.
func ExpiresAtTime(t cw.Timestamp) Expiration {
	return Expiration{AtTime: &t}
}

// NeverExpires never expires.
func NeverExpires() Expiration {
	return Expiration{Never: &struct{}{}}
}

// IsExpired reports whether e has been reached at block, and stays true for
// every later block.
func (e Expiration) IsExpired(block cw.BlockInfo) bool {
	switch {
	case e.AtHeight != nil:
		return block.Height >= *e.AtHeight
	case e.AtTime != nil:
		return block.Time >= *e.AtTime
	}
	return false
}

func (e Expiration) variants() int {
	n := 0
	if e.AtHeight != nil {
		n++
	}
	if e.AtTime != nil {
		n++
	}
	if e.Never != nil {
		n++
	}
	return n
}

// MarshalJSON fails with ErrInvalidExpiration unless exactly one variant is set.
func (e Expiration) MarshalJSON() ([]byte, error) {
	if e.variants() != 1 {
		return nil, fmt.Errorf("%w: %d variants set", ErrInvalidExpiration, e.variants())
	}
	type plain Expiration
	return json.Marshal(plain(e))
}

// UnmarshalJSON requires exactly one variant key.
func (e *Expiration) UnmarshalJSON(data []byte) error {
	type plain Expiration
	var p plain
	if err := codec.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpiration, err)
	}
	if n := Expiration(p).variants(); n != 1 {
		return fmt.Errorf("%w: %d variants set", ErrInvalidExpiration, n)
	}
	*e = Expiration(p)
	return nil
}
