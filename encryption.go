package cwkit

import (
	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
	"github.com/cwkit/cwkit-go/internal/crypto"
)

// EncKeyLen is the length of an encryption key in bytes.
const EncKeyLen = crypto.KeySize

// Ciphersuite names the key derivation and encryption algorithms together
// with their parameters.
const Ciphersuite = crypto.Ciphersuite

// KeyMaterial is anything that yields a 32-byte encryption key.
type KeyMaterial interface {
	KeyBytes() [EncKeyLen]byte
}

// Key is a raw encryption key.
type Key [EncKeyLen]byte

// KeyBytes implements KeyMaterial.
func (k Key) KeyBytes() [EncKeyLen]byte {
	return k
}

// EncryptedResponse is the public envelope of an encrypted value. Value is
// the base64 ciphertext and Timestamp the time the nonce was derived from.
type EncryptedResponse struct {
	Value     string       `json:"value"`
	Timestamp cw.Timestamp `json:"timestamp"`
}

// SerializeEncrypt encodes value and seals it with key under the nonce
// derived from timestamp.
//
// The result is deterministic: the same key, timestamp and value always
// produce the same envelope.
func SerializeEncrypt(key KeyMaterial, timestamp cw.Timestamp, value any) (*EncryptedResponse, error) {
	k := key.KeyBytes()
	defer clear(k[:])

	nonce, err := crypto.NonceFromTimestamp(timestamp.Nanos())
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	plaintext, err := codec.Marshal(value)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	ciphertext, err := crypto.EncryptGCMSIV(k[:], nonce[:], plaintext)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return &EncryptedResponse{
		Value:     crypto.ToBase64(ciphertext),
		Timestamp: timestamp,
	}, nil
}

// DecryptDeserialize opens an envelope value sealed by SerializeEncrypt and
// decodes it into T. Any failure is reported as a *DecryptionError.
func DecryptDeserialize[T any](key KeyMaterial, timestamp cw.Timestamp, value string) (T, error) {
	var out T

	k := key.KeyBytes()
	defer clear(k[:])

	nonce, err := crypto.NonceFromTimestamp(timestamp.Nanos())
	if err != nil {
		return out, &DecryptionError{}
	}

	ciphertext, err := crypto.FromBase64(value)
	if err != nil {
		return out, &DecryptionError{}
	}

	plaintext, err := crypto.DecryptGCMSIV(k[:], nonce[:], ciphertext)
	if err != nil {
		return out, &DecryptionError{}
	}

	if err := codec.Unmarshal(plaintext, &out); err != nil {
		var zero T
		return zero, &DecryptionError{}
	}

	return out, nil
}

// DecryptResponse opens resp with key.
func DecryptResponse[T any](key KeyMaterial, resp *EncryptedResponse) (T, error) {
	if resp == nil {
		var zero T
		return zero, &DecryptionError{}
	}
	return DecryptDeserialize[T](key, resp.Timestamp, resp.Value)
}

// EncryptAtBlockTime seals value at the host's current block time.
func EncryptAtBlockTime(host cw.Host, key KeyMaterial, value any) (*EncryptedResponse, error) {
	return SerializeEncrypt(key, host.BlockTime(), value)
}

// Marshal returns the canonical encoding of the envelope.
func (r *EncryptedResponse) Marshal() ([]byte, error) {
	data, err := codec.Marshal(r)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return data, nil
}

// DecodeEnvelope parses an envelope from its canonical encoding.
func DecodeEnvelope(data []byte) (*EncryptedResponse, error) {
	var resp EncryptedResponse
	if err := codec.Unmarshal(data, &resp); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &resp, nil
}

// ExecuteMsgWithTimestamp pairs an execute message with the block time it
// was built at, so the receiver can derive the same nonce.
type ExecuteMsgWithTimestamp[T any] struct {
	Msg       T            `json:"msg"`
	Timestamp cw.Timestamp `json:"timestamp"`
}

// NewExecuteMsgWithTimestamp stamps msg with the block time of env.
func NewExecuteMsgWithTimestamp[T any](env cw.Env, msg T) ExecuteMsgWithTimestamp[T] {
	return ExecuteMsgWithTimestamp[T]{Msg: msg, Timestamp: env.Block.Time}
}
