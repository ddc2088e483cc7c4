package crypto

import "encoding/binary"

// fieldElement is an element of GF(2^128) in POLYVAL's little-endian
// convention: bit i of lo|hi<<64 is the coefficient of x^i.
type fieldElement struct {
	lo, hi uint64
}

func fieldElementFromBytes(b []byte) fieldElement {
	return fieldElement{
		lo: binary.LittleEndian.Uint64(b[:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

func (e fieldElement) bytes() [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[:8], e.lo)
	binary.LittleEndian.PutUint64(out[8:], e.hi)
	return out
}

// dot returns a·b·x⁻¹²⁸ modulo x¹²⁸ + x¹²⁷ + x¹²⁶ + x¹²¹ + 1.
// It runs in constant time with respect to both operands.
func dot(a, b fieldElement) fieldElement {
	var r fieldElement
	for i := uint(0); i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = (b.lo >> i) & 1
		} else {
			bit = (b.hi >> (i - 64)) & 1
		}
		mask := -bit
		r.lo ^= a.lo & mask
		r.hi ^= a.hi & mask
		r = mulXInverse(r)
	}
	return r
}

// mulXInverse multiplies v by x⁻¹.
func mulXInverse(v fieldElement) fieldElement {
	mask := -(v.lo & 1)
	v.lo ^= 1 & mask
	v.hi ^= (1<<63 | 1<<62 | 1<<57) & mask
	return fieldElement{
		lo: v.lo>>1 | v.hi<<63,
		hi: v.hi>>1 | (1<<63)&mask,
	}
}

type polyval struct {
	h fieldElement
	s fieldElement
}

func newPolyval(key []byte) *polyval {
	return &polyval{h: fieldElementFromBytes(key)}
}

// updatePadded absorbs data, zero-padding the final partial block.
func (p *polyval) updatePadded(data []byte) {
	for len(data) > 0 {
		var blk [16]byte
		n := copy(blk[:], data)
		data = data[n:]

		x := fieldElementFromBytes(blk[:])
		p.s.lo ^= x.lo
		p.s.hi ^= x.hi
		p.s = dot(p.s, p.h)
	}
}

func (p *polyval) sum() [16]byte {
	return p.s.bytes()
}
