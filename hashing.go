package cwkit

import (
	"strings"

	"github.com/cwkit/cwkit-go/internal/crypto"
)

// CalcHashBytes derives an encryption key from password and salt with
// Argon2id. The salt must be at least 8 bytes; AddressToSalt builds one
// from an address.
func CalcHashBytes(password, salt string) (Key, error) {
	var key Key

	derived, err := crypto.DeriveKey([]byte(password), []byte(salt))
	if err != nil {
		return key, &KeyDerivationError{Err: err}
	}

	copy(key[:], derived)
	clear(derived)
	return key, nil
}

// AddressToSalt builds a salt from a public identifier by repeating it.
// Identifiers of four bytes or more are repeated exactly twice; shorter
// non-empty ones are repeated until the salt is at least 8 bytes.
func AddressToSalt(address string) string {
	if address == "" {
		return ""
	}

	n := 2
	for n*len(address) < crypto.MinSaltSize {
		n++
	}
	return strings.Repeat(address, n)
}
