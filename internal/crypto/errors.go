package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when authentication of a ciphertext fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrCiphertextTooShort is returned when a ciphertext cannot hold a tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrTimestampTooShort is returned when a timestamp renders to fewer
	// decimal digits than a nonce needs.
	ErrTimestampTooShort = errors.New("timestamp too short for nonce")

	// ErrSaltTooShort is returned when the Argon2 salt is below MinSaltSize.
	ErrSaltTooShort = errors.New("salt too short")

	// ErrInvalidKDFParams is returned when an Argon2 parameter set is unusable.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")

	// ErrInvalidBase64 is returned when text is not valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64")
)
