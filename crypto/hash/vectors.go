package hash

import (
	"bytes"
	"encoding/hex"
)

// KnownAnswer is a published test vector: Input repeated Repeat times hashes to Digest.
type KnownAnswer struct {
	Algorithm HashingAlgorithm
	Input     string
	Repeat    int
	Digest    string
}

// Message returns the full message of the vector.
func (v KnownAnswer) Message() []byte {
	if v.Repeat <= 1 {
		return []byte(v.Input)
	}
	return bytes.Repeat([]byte(v.Input), v.Repeat)
}

func (v KnownAnswer) length() int {
	if v.Repeat <= 1 {
		return len(v.Input)
	}
	return len(v.Input) * v.Repeat
}

// Expected returns the decoded digest of the vector.
func (v KnownAnswer) Expected() Hash {
	h, err := hex.DecodeString(v.Digest)
	if err != nil {
		panic("malformed known-answer digest " + v.Digest)
	}
	return h
}

// KnownAnswerVectors returns the RFC 1321 suite for MD5, the FIPS 180-1
// examples for SHA-1 and a few extra strings.
func KnownAnswerVectors() []KnownAnswer {
	return []KnownAnswer{
		{Algorithm: MD5, Input: "", Digest: "d41d8cd98f00b204e9800998ecf8427e"},
		{Algorithm: MD5, Input: "a", Digest: "0cc175b9c0f1b6a831c399e269772661"},
		{Algorithm: MD5, Input: "abc", Digest: "900150983cd24fb0d6963f7d28e17f72"},
		{Algorithm: MD5, Input: "message digest", Digest: "f96b697d7cb7938d525a2f31aaf161d0"},
		{Algorithm: MD5, Input: "abcdefghijklmnopqrstuvwxyz", Digest: "c3fcd3d76192e4007dfb496cca67e13b"},
		{Algorithm: MD5, Input: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", Digest: "d174ab98d277d9f5a5611c2c9f419d9f"},
		{Algorithm: MD5, Input: "1234567890", Repeat: 8, Digest: "57edf4a22be3c955ac49da2e2107b67a"},
		{Algorithm: MD5, Input: "a", Repeat: 1000000, Digest: "7707d6ae4e027c70eea2a935c2296f21"},
		{Algorithm: MD5, Input: "The quick brown fox jumps over the lazy dog", Digest: "9e107d9d372bb6826bd81d3542a419d6"},
		{Algorithm: MD5, Input: "Gemini", Digest: "766cc4dd4d5005652e8514e3513683f8"},

		{Algorithm: SHA1, Input: "", Digest: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{Algorithm: SHA1, Input: "abc", Digest: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{Algorithm: SHA1, Input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", Digest: "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
		{Algorithm: SHA1, Input: "a", Repeat: 1000000, Digest: "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
		{Algorithm: SHA1, Input: "1234567890", Repeat: 8, Digest: "50abf5706a150990a08b2c5ea40fa0e585554732"},
		{Algorithm: SHA1, Input: "The quick brown fox jumps over the lazy dog", Digest: "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
		{Algorithm: SHA1, Input: "Gemini", Digest: "ddba2c9277cd909b2d4fac91a3cc754a462c7a90"},
	}
}
