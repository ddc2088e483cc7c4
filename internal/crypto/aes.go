package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// EncryptGCMSIV encrypts plaintext using AES-256-GCM-SIV without associated data.
// Returns: ciphertext || tag (16 bytes)
func EncryptGCMSIV(key, nonce, plaintext []byte) ([]byte, error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, err
	}

	authKey, block, err := deriveRecordKeys(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to derive record keys: %w", err)
	}

	tag := computeTag(authKey, block, nonce, plaintext)

	out := make([]byte, len(plaintext)+TagSize)
	ctr(block, tag[:], out[:len(plaintext)], plaintext)
	copy(out[len(plaintext):], tag[:])

	return out, nil
}

// DecryptGCMSIV decrypts and authenticates ciphertext || tag produced by
// EncryptGCMSIV. Any authentication failure returns ErrDecryptionFailed.
func DecryptGCMSIV(key, nonce, ciphertext []byte) ([]byte, error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, err
	}

	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrCiphertextTooShort, len(ciphertext), TagSize)
	}

	authKey, block, err := deriveRecordKeys(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to derive record keys: %w", err)
	}

	body := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	plaintext := make([]byte, len(body))
	ctr(block, tag, plaintext, body)

	expected := computeTag(authKey, block, nonce, plaintext)
	if subtle.ConstantTimeCompare(expected[:], tag) != 1 {
		clear(plaintext)
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func checkSizes(key, nonce []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	return nil
}

// deriveRecordKeys derives the per-nonce POLYVAL key and AES-256 encryption
// key (RFC 8452 §4).
func deriveRecordKeys(key, nonce []byte) ([]byte, cipher.Block, error) {
	keyBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	var in, out [aes.BlockSize]byte
	copy(in[4:], nonce)

	derived := make([]byte, 16+KeySize)
	for i := uint32(0); i < uint32(len(derived)/8); i++ {
		binary.LittleEndian.PutUint32(in[:4], i)
		keyBlock.Encrypt(out[:], in[:])
		copy(derived[8*i:], out[:8])
	}

	block, err := aes.NewCipher(derived[16:])
	if err != nil {
		return nil, nil, err
	}

	return derived[:16], block, nil
}

func computeTag(authKey []byte, block cipher.Block, nonce, plaintext []byte) [TagSize]byte {
	var lengths [16]byte
	// The first half holds the associated data length, always zero here.
	binary.LittleEndian.PutUint64(lengths[8:], uint64(len(plaintext))*8)

	p := newPolyval(authKey)
	p.updatePadded(plaintext)
	p.updatePadded(lengths[:])
	s := p.sum()

	for i := 0; i < NonceSize; i++ {
		s[i] ^= nonce[i]
	}
	s[15] &= 0x7f

	var tag [TagSize]byte
	block.Encrypt(tag[:], s[:])
	return tag
}

// ctr applies AES-CTR with the 32-bit little-endian counter of RFC 8452.
func ctr(block cipher.Block, tag, dst, src []byte) {
	var counter, keystream [aes.BlockSize]byte
	copy(counter[:], tag)
	counter[15] |= 0x80

	for len(src) > 0 {
		block.Encrypt(keystream[:], counter[:])
		n := subtle.XORBytes(dst, src, keystream[:])
		dst, src = dst[n:], src[n:]

		binary.LittleEndian.PutUint32(counter[:4], binary.LittleEndian.Uint32(counter[:4])+1)
	}
}
