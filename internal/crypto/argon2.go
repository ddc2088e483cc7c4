// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.golang file.

package crypto

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

// The memory filling, compression and variable-length hash below are ported
// from golang.org/x/crypto/argon2 (argon2.go, blake2b.go, blamka_generic.go).
// That package only implements version 0x13. The port adds the version
// parameter, which selects the 0x10 overwrite rule in processSegment, and
// processes lanes sequentially.

const (
	argon2id    = 2
	blockLength = 128
	syncPoints  = 4
)

type block [blockLength]uint64

// DeriveKey derives a KeySize-byte key from password and salt using
// Argon2id with KDFParamsV1.
func DeriveKey(password, salt []byte) ([]byte, error) {
	return Argon2id(password, salt, KDFParamsV1)
}

// Argon2id derives a key with the given parameter set. Lanes are processed
// sequentially; the result does not depend on scheduling.
func Argon2id(password, salt []byte, params KDFParams) ([]byte, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrSaltTooShort, len(salt), MinSaltSize)
	}

	threads := uint32(params.Parallelism)
	h0 := initHash(password, salt, params)

	memory := params.Memory / (syncPoints * threads) * (syncPoints * threads)
	if memory < 2*syncPoints*threads {
		memory = 2 * syncPoints * threads
	}

	B := initBlocks(&h0, memory, threads)
	processBlocks(B, params.Iterations, memory, threads, params.Version)

	return extractKey(B, memory, threads, params.KeyLen), nil
}

func (p KDFParams) validate() error {
	switch {
	case p.Version != Argon2Version10 && p.Version != Argon2Version13:
		return fmt.Errorf("%w: unsupported version 0x%x", ErrInvalidKDFParams, p.Version)
	case p.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidKDFParams)
	case p.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidKDFParams)
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("%w: memory must be at least %d KiB", ErrInvalidKDFParams, 8*uint32(p.Parallelism))
	case p.KeyLen < 4:
		return fmt.Errorf("%w: key length must be at least 4 bytes", ErrInvalidKDFParams)
	}
	return nil
}

func initHash(password, salt []byte, p KDFParams) [blake2b.Size + 8]byte {
	var (
		h0     [blake2b.Size + 8]byte
		params [24]byte
		tmp    [4]byte
	)

	b2, _ := blake2b.New512(nil)
	binary.LittleEndian.PutUint32(params[0:4], uint32(p.Parallelism))
	binary.LittleEndian.PutUint32(params[4:8], p.KeyLen)
	binary.LittleEndian.PutUint32(params[8:12], p.Memory)
	binary.LittleEndian.PutUint32(params[12:16], p.Iterations)
	binary.LittleEndian.PutUint32(params[16:20], p.Version)
	binary.LittleEndian.PutUint32(params[20:24], argon2id)
	b2.Write(params[:])

	binary.LittleEndian.PutUint32(tmp[:], uint32(len(password)))
	b2.Write(tmp[:])
	b2.Write(password)
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(salt)))
	b2.Write(tmp[:])
	b2.Write(salt)

	// No secret key and no associated data.
	binary.LittleEndian.PutUint32(tmp[:], 0)
	b2.Write(tmp[:])
	b2.Write(tmp[:])

	b2.Sum(h0[:0])
	return h0
}

func initBlocks(h0 *[blake2b.Size + 8]byte, memory, threads uint32) []block {
	var block0 [1024]byte
	B := make([]block, memory)
	for lane := uint32(0); lane < threads; lane++ {
		j := lane * (memory / threads)
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 0)
		blake2bHash(block0[:], h0[:])
		for i := range B[j+0] {
			B[j+0][i] = binary.LittleEndian.Uint64(block0[i*8:])
		}

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 1)
		blake2bHash(block0[:], h0[:])
		for i := range B[j+1] {
			B[j+1][i] = binary.LittleEndian.Uint64(block0[i*8:])
		}
	}
	return B
}

func processBlocks(B []block, time, memory, threads, version uint32) {
	lanes := memory / threads
	segments := lanes / syncPoints

	for n := uint32(0); n < time; n++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			for lane := uint32(0); lane < threads; lane++ {
				processSegment(B, n, slice, lane, lanes, segments, memory, time, threads, version)
			}
		}
	}
}

func processSegment(B []block, n, slice, lane, lanes, segments, memory, time, threads, version uint32) {
	var addresses, in, zero block

	// Argon2id uses data-independent addressing for the first half of the first pass.
	independent := n == 0 && slice < syncPoints/2
	if independent {
		in[0] = uint64(n)
		in[1] = uint64(lane)
		in[2] = uint64(slice)
		in[3] = uint64(memory)
		in[4] = uint64(time)
		in[5] = uint64(argon2id)
	}

	index := uint32(0)
	if n == 0 && slice == 0 {
		index = 2 // the first two blocks come from initBlocks
		if independent {
			in[6]++
			processBlock(&addresses, &in, &zero, false)
			processBlock(&addresses, &addresses, &zero, false)
		}
	}

	// Version 0x10 always overwrites; 0x13 XORs into the previous pass.
	xor := version == Argon2Version13 && n > 0

	offset := lane*lanes + slice*segments + index
	var random uint64
	for index < segments {
		prev := offset - 1
		if index == 0 && slice == 0 {
			prev += lanes // last block in lane
		}
		if independent {
			if index%blockLength == 0 {
				in[6]++
				processBlock(&addresses, &in, &zero, false)
				processBlock(&addresses, &addresses, &zero, false)
			}
			random = addresses[index%blockLength]
		} else {
			random = B[prev][0]
		}
		newOffset := indexAlpha(random, lanes, segments, threads, n, slice, lane, index)
		processBlock(&B[offset], &B[prev], &B[newOffset], xor)
		index, offset = index+1, offset+1
	}
}

func extractKey(B []block, memory, threads, keyLen uint32) []byte {
	lanes := memory / threads
	for lane := uint32(0); lane < threads-1; lane++ {
		for i, v := range B[(lane*lanes)+lanes-1] {
			B[memory-1][i] ^= v
		}
	}

	var block [1024]byte
	for i, v := range B[memory-1] {
		binary.LittleEndian.PutUint64(block[i*8:], v)
	}
	key := make([]byte, keyLen)
	blake2bHash(key, block[:])
	return key
}

func indexAlpha(rand uint64, lanes, segments, threads, n, slice, lane, index uint32) uint32 {
	refLane := uint32(rand>>32) % threads
	if n == 0 && slice == 0 {
		refLane = lane
	}
	m, s := 3*segments, ((slice+1)%syncPoints)*segments
	if lane == refLane {
		m += index
	}
	if n == 0 {
		m, s = slice*segments, 0
		if slice == 0 || lane == refLane {
			m += index
		}
	}
	if index == 0 || lane == refLane {
		m--
	}
	return phi(rand, uint64(m), uint64(s), refLane, lanes)
}

func phi(rand, m, s uint64, lane, lanes uint32) uint32 {
	p := rand & 0xFFFFFFFF
	p = (p * p) >> 32
	p = (p * m) >> 32
	return lane*lanes + uint32((s+m-(p+1))%uint64(lanes))
}

// processBlock computes the Argon2 compression G(in1, in2) into out.
func processBlock(out, in1, in2 *block, xor bool) {
	var t block
	for i := range t {
		t[i] = in1[i] ^ in2[i]
	}

	var v [16]uint64
	for i := 0; i < blockLength; i += 16 {
		copy(v[:], t[i:i+16])
		permute(&v)
		copy(t[i:i+16], v[:])
	}
	for i := 0; i < blockLength/8; i += 2 {
		for j := 0; j < 8; j++ {
			v[2*j] = t[16*j+i]
			v[2*j+1] = t[16*j+i+1]
		}
		permute(&v)
		for j := 0; j < 8; j++ {
			t[16*j+i] = v[2*j]
			t[16*j+i+1] = v[2*j+1]
		}
	}

	if xor {
		for i := range t {
			out[i] ^= in1[i] ^ in2[i] ^ t[i]
		}
		return
	}
	for i := range t {
		out[i] = in1[i] ^ in2[i] ^ t[i]
	}
}

func permute(v *[16]uint64) {
	blamka(&v[0], &v[4], &v[8], &v[12])
	blamka(&v[1], &v[5], &v[9], &v[13])
	blamka(&v[2], &v[6], &v[10], &v[14])
	blamka(&v[3], &v[7], &v[11], &v[15])

	blamka(&v[0], &v[5], &v[10], &v[15])
	blamka(&v[1], &v[6], &v[11], &v[12])
	blamka(&v[2], &v[7], &v[8], &v[13])
	blamka(&v[3], &v[4], &v[9], &v[14])
}

func blamka(a, b, c, d *uint64) {
	*a += *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = bits.RotateLeft64(*d^*a, -32)
	*c += *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = bits.RotateLeft64(*b^*c, -24)
	*a += *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d = bits.RotateLeft64(*d^*a, -16)
	*c += *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b = bits.RotateLeft64(*b^*c, -63)
}

// blake2bHash is the variable-length hash H' from RFC 9106 §3.3.
func blake2bHash(out []byte, in []byte) {
	var b2 hash.Hash
	if n := len(out); n < blake2b.Size {
		b2, _ = blake2b.New(n, nil)
	} else {
		b2, _ = blake2b.New512(nil)
	}

	var buffer [blake2b.Size]byte
	binary.LittleEndian.PutUint32(buffer[:4], uint32(len(out)))
	b2.Write(buffer[:4])
	b2.Write(in)

	if len(out) <= blake2b.Size {
		b2.Sum(out[:0])
		return
	}

	outLen := len(out)
	b2.Sum(buffer[:0])
	b2.Reset()
	copy(out, buffer[:32])
	out = out[32:]
	for len(out) > blake2b.Size {
		b2.Write(buffer[:])
		b2.Sum(buffer[:0])
		copy(out, buffer[:32])
		out = out[32:]
		b2.Reset()
	}

	if outLen%blake2b.Size > 0 {
		r := ((outLen + 31) / 32) - 2
		b2, _ = blake2b.New(outLen-32*r, nil)
	}
	b2.Write(buffer[:])
	b2.Sum(out[:0])
}
