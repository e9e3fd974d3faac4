package hash

import (
	"encoding/binary"
	"math/bits"
)

var sha1IV = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

const (
	sha1K0 = 0x5a827999
	sha1K1 = 0x6ed9eba1
	sha1K2 = 0x8f1bbcdc
	sha1K3 = 0xca62c1d6
)

// sha1Block expands one decoded block to the 80-word schedule, runs the 80
// SHA-1 steps and returns the updated accumulator.
func sha1Block(acc [5]uint32, x *[16]uint32) [5]uint32 {
	var w [80]uint32
	copy(w[:], x[:])
	for t := 16; t < 80; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := acc[0], acc[1], acc[2], acc[3], acc[4]

	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f, k = (b&c)|(^b&d), sha1K0
		case t < 40:
			f, k = b^c^d, sha1K1
		case t < 60:
			f, k = (b&c)|(b&d)|(c&d), sha1K2
		default:
			f, k = b^c^d, sha1K3
		}
		tmp := bits.RotateLeft32(a, 5) + f + e + w[t] + k
		a, b, c, d, e = tmp, a, bits.RotateLeft32(b, 30), c, d
	}

	acc[0] += a
	acc[1] += b
	acc[2] += c
	acc[3] += d
	acc[4] += e
	return acc
}

// sha1State is the SHA-1 compressor: big-endian words, length and output.
type sha1State struct {
	h     [5]uint32
	order binary.ByteOrder
}

func newSHA1State() *sha1State {
	return &sha1State{order: binary.BigEndian}
}

func (s *sha1State) reset() {
	s.h = sha1IV
}

func (s *sha1State) block(p *[BlockSize]byte) {
	var x [16]uint32
	decodeWords(s.order, &x, p)
	s.h = sha1Block(s.h, &x)
}

func (s *sha1State) putLength(b []byte, length uint64) {
	s.order.PutUint64(b, length)
}

func (s *sha1State) appendSum(b []byte) []byte {
	return appendWords(s.order, b, s.h[:])
}

func (s *sha1State) wipe() {
	s.h = [5]uint32{}
}
