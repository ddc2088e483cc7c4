package crypto

import (
	"fmt"
	"strconv"
)

// NonceFromTimestamp builds a nonce from the first NonceSize decimal digits
// of a nanosecond timestamp. The digits are used as ASCII bytes.
//
// Timestamps below 10^11 ns (the first 100 seconds after the Unix epoch)
// have too few digits and are rejected instead of padded.
func NonceFromTimestamp(nanos uint64) ([NonceSize]byte, error) {
	var nonce [NonceSize]byte

	digits := strconv.FormatUint(nanos, 10)
	if len(digits) < NonceSize {
		return nonce, fmt.Errorf("%w: %d has %d digits, want at least %d", ErrTimestampTooShort, nanos, len(digits), NonceSize)
	}

	copy(nonce[:], digits[:NonceSize])
	return nonce, nil
}
