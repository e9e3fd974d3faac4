package hash

import (
	"encoding/binary"
	"math/bits"
)

var md5IV = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// md5T holds the additive constants floor(abs(sin(i+1)) * 2^32).
var md5T = [64]uint32{
	// round 1
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	// round 2
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	// round 3
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	// round 4
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// md5Shift holds the rotation amounts; each round cycles through its four.
var md5Shift = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

func md5F(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func md5G(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }
func md5H(x, y, z uint32) uint32 { return x ^ y ^ z }
func md5I(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// md5Block runs the 64 MD5 steps over one decoded block and returns the
// updated accumulator.
func md5Block(acc [4]uint32, x *[16]uint32) [4]uint32 {
	a, b, c, d := acc[0], acc[1], acc[2], acc[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i >> 4 {
		case 0:
			f, g = md5F(b, c, d), i
		case 1:
			f, g = md5G(b, c, d), (5*i+1)&15
		case 2:
			f, g = md5H(b, c, d), (3*i+5)&15
		default:
			f, g = md5I(b, c, d), (7*i)&15
		}
		f += a + md5T[i] + x[g]
		a, b, c, d = d, b+bits.RotateLeft32(f, md5Shift[i>>4][i&3]), b, c
	}

	acc[0] += a
	acc[1] += b
	acc[2] += c
	acc[3] += d
	return acc
}

// md5State is the MD5 compressor: little-endian words, length and output.
type md5State struct {
	s     [4]uint32
	order binary.ByteOrder
}

func newMD5State() *md5State {
	return &md5State{order: binary.LittleEndian}
}

func (m *md5State) reset() {
	m.s = md5IV
}

func (m *md5State) block(p *[BlockSize]byte) {
	var x [16]uint32
	decodeWords(m.order, &x, p)
	m.s = md5Block(m.s, &x)
}

func (m *md5State) putLength(b []byte, length uint64) {
	m.order.PutUint64(b, length)
}

func (m *md5State) appendSum(b []byte) []byte {
	return appendWords(m.order, b, m.s[:])
}

func (m *md5State) wipe() {
	m.s = [4]uint32{}
}
