// Package bech32addr splits, joins and re-prefixes bech32 addresses.
package bech32addr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Delimiter separates the human-readable prefix from the data part.
const Delimiter = "1"

// ErrInvalidAddress is returned for strings that are not bech32 addresses.
var ErrInvalidAddress = errors.New("invalid bech32 address")

// Split returns the prefix and the data part of address, cut at the first
// delimiter. The checksum is not verified.
func Split(address string) (prefix, postfix string, err error) {
	prefix, postfix, ok := strings.Cut(address, Delimiter)
	if !ok {
		return "", "", fmt.Errorf("%w: %q has no delimiter", ErrInvalidAddress, address)
	}
	return prefix, postfix, nil
}

// Join is the inverse of Split.
func Join(prefix, postfix string) string {
	return prefix + Delimiter + postfix
}

// Convert re-encodes address under prefix, keeping its data. The checksum
// of address must be valid.
func Convert(address, prefix string) (string, error) {
	_, data, err := bech32.Decode(address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	out, err := bech32.Encode(prefix, data)
	if err != nil {
		return "", fmt.Errorf("%w: encode with prefix %q: %v", ErrInvalidAddress, prefix, err)
	}
	return out, nil
}
