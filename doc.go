// Package cwkit provides helpers for CosmWasm smart contracts that exchange
// private data through public chain storage.
//
// Two parties who share a secret phrase derive the same 32-byte key with
// CalcHashBytes, using a salt built from a public identifier such as an
// account address:
//
//	key, err := cwkit.CalcHashBytes(secretPhrase, cwkit.AddressToSalt(addr))
//	if err != nil {
//	    return err
//	}
//
// One side encrypts a value at the current block time:
//
//	resp, err := cwkit.SerializeEncrypt(key, env.Block.Time, msg)
//
// The other side recovers it from the envelope, which carries the timestamp
// in the clear:
//
//	msg, err := cwkit.DecryptDeserialize[Msg](key, resp.Timestamp, resp.Value)
//
// # Algorithms
//
// Keys are derived with Argon2id version 0x10 (m=64 KiB, t=4, p=1) and
// values are sealed with AES-256-GCM-SIV without associated data. Both are
// fixed by Ciphersuite; changing either makes existing envelopes unreadable.
//
// # Nonces
//
// The nonce is the first 12 decimal digits of the timestamp in nanoseconds,
// so it is public and repeats for timestamps that share those digits (a
// window of 10 ms for current chain times). Encrypting two different values
// with the same key inside one window reuses the nonce. GCM-SIV then leaks
// only whether the two plaintexts are equal, but callers should still avoid
// it, for example by encrypting at most once per key per block.
//
// # Errors
//
// DecryptDeserialize reports every failure as ErrDecryptionFailed without
// saying which stage failed.
package cwkit
