package cwkit

import (
	"errors"
	"fmt"

	"github.com/cwkit/cwkit-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyDerivation is returned when a key cannot be derived.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecryptionFailed is returned when an envelope cannot be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrDecode is returned for malformed envelope bytes.
	ErrDecode = errors.New("decode failed")

	// ErrEncryption is returned when a value cannot be sealed.
	ErrEncryption = errors.New("encryption failed")

	// ErrSerialization is returned when a value cannot be encoded.
	ErrSerialization = errors.New("serialization failed")

	// ErrInvalidHash is returned when a hex string is not a 32-byte hash.
	ErrInvalidHash = errors.New("invalid hash")

	// ErrTimestampTooShort is returned when a timestamp has fewer than 12
	// decimal digits of nanoseconds.
	ErrTimestampTooShort = crypto.ErrTimestampTooShort

	// ErrSaltTooShort is returned when a salt is shorter than 8 bytes.
	ErrSaltTooShort = crypto.ErrSaltTooShort
)

// Error is implemented by all typed errors of this package.
type Error interface {
	error
	CwkitError() // marker method
}

// KeyDerivationError represents a failure to derive a key from a password.
type KeyDerivationError struct {
	Err error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("key derivation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyDerivationError) Is(target error) bool {
	return target == ErrKeyDerivation
}

// CwkitError implements the Error interface.
func (e *KeyDerivationError) CwkitError() {}

// DecryptionError is returned for any failure while opening an envelope.
// It carries no detail about which step failed.
type DecryptionError struct{}

func (e *DecryptionError) Error() string {
	return "decryption failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// CwkitError implements the Error interface.
func (e *DecryptionError) CwkitError() {}

// DecodeError represents malformed envelope bytes.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// CwkitError implements the Error interface.
func (e *DecodeError) CwkitError() {}

// SerializationError represents a value that cannot be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

// CwkitError implements the Error interface.
func (e *SerializationError) CwkitError() {}

// EncryptionError represents a failure to seal an encoded value, such as a
// timestamp too short to derive a nonce from.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryption
}

// CwkitError implements the Error interface.
func (e *EncryptionError) CwkitError() {}
