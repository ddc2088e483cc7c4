// Package crypto provides the cryptographic primitives behind private
// on-chain messaging: password-based key derivation, deterministic nonces
// and nonce-misuse-resistant authenticated encryption.
//
// # Algorithm Suite
//
//   - Argon2id, version 0x10 (RFC 9106 with the legacy overwrite rule):
//     derives a 32-byte key from a shared secret phrase and a salt. The
//     parameters in [KDFParamsV1] are part of the external contract.
//
//   - AES-256-GCM-SIV (RFC 8452): authenticated encryption with a 96-bit
//     nonce and no associated data. Output is ciphertext || tag (16 bytes).
//
//   - Base64 (RFC 4648 §4): standard alphabet, padded on encode, padding
//     optional on decode.
//
// # Nonces
//
// Nonces are not random. [NonceFromTimestamp] takes the first 12 decimal
// digits of a block timestamp in nanoseconds, so both parties can rebuild
// the nonce from the timestamp stored next to the ciphertext.
//
// Encrypting two different plaintexts with the same key under timestamps
// that share those 12 digits reuses a nonce. GCM-SIV degrades gracefully in
// that case (only equality of plaintexts leaks), which is the only reason
// the scheme tolerates public, predictable nonces.
//
// # Key Management
//
// Keys are never stored. Callers rebuild them on every call with
// [DeriveKey] from a phrase both parties know and a salt derived from a
// public identifier.
package crypto
