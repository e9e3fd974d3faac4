// Package hash implements incremental MD5 (RFC 1321) and SHA-1 (FIPS 180-1)
// digest contexts.
//
// A context is created with NewMD5, NewSHA1 or NewHasher, fed with Update any
// number of times and closed with a single call to Final. Final wipes the
// context; any later call fails with a StateError.
//
// MD5 and SHA-1 are cryptographically broken and must not be used where
// collision resistance matters.
package hash

import (
	"bytes"
	"encoding/hex"
	"io"
)

// Hash is the output of a hashing algorithm.
type Hash []byte

// Hex returns the lowercase hexadecimal encoding of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

func (h Hash) String() string {
	return h.Hex()
}

// Equal checks if a hash is equal to a given hash
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hasher is a streaming digest context.
//
// A Hasher is owned by a single caller and is not safe for concurrent use.
type Hasher interface {
	io.Writer

	// Algorithm returns the hashing algorithm of this hasher.
	Algorithm() HashingAlgorithm
	// Size returns the digest length in bytes.
	Size() int
	// BlockSize returns the compression block length in bytes.
	BlockSize() int
	// Status returns the lifecycle state of the context.
	Status() Status
	// Update appends data to the message.
	Update(data []byte) error
	// Final pads the message, returns the digest and wipes the context.
	Final() (Hash, error)
}

// NewMD5 returns a new MD5 context.
func NewMD5() Hasher {
	return newDigest(MD5, newMD5State())
}

// NewSHA1 returns a new SHA-1 context.
func NewSHA1() Hasher {
	return newDigest(SHA1, newSHA1State())
}

// NewHasher returns a new context for the given algorithm.
func NewHasher(algo HashingAlgorithm) (Hasher, error) {
	switch algo {
	case MD5:
		return NewMD5(), nil
	case SHA1:
		return NewSHA1(), nil
	default:
		return nil, NewInvalidInputsErrorf("hashing algorithm %s is not supported", algo)
	}
}

// ComputeHash calculates the digest of data in a single pass.
func ComputeHash(algo HashingAlgorithm, data []byte) (Hash, error) {
	h, err := NewHasher(algo)
	if err != nil {
		return nil, err
	}
	if err := h.Update(data); err != nil {
		return nil, err
	}
	return h.Final()
}
