package hash

import (
	"fmt"
	"strings"
)

//revive:disable:var-naming

// HashingAlgorithm is an identifier for a hashing algorithm.
type HashingAlgorithm int

const (
	// Supported hashing algorithms
	UnknownHashingAlgorithm HashingAlgorithm = iota
	MD5
	SHA1
)

// String returns the string representation of this hashing algorithm.
func (a HashingAlgorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	default:
		return "UNKNOWN"
	}
}

// Size returns the digest length of the algorithm in bytes, or 0 for an unknown algorithm.
func (a HashingAlgorithm) Size() int {
	switch a {
	case MD5:
		return HashLenMD5
	case SHA1:
		return HashLenSHA1
	default:
		return 0
	}
}

// ParseHashingAlgorithm maps a case-insensitive name ("md5", "sha1", "sha-1") to its algorithm.
func ParseHashingAlgorithm(name string) (HashingAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md5":
		return MD5, nil
	case "sha1", "sha-1":
		return SHA1, nil
	default:
		return UnknownHashingAlgorithm, NewInvalidInputsErrorf("unknown hashing algorithm %q", name)
	}
}

// Algorithms lists every supported hashing algorithm.
func Algorithms() []HashingAlgorithm {
	return []HashingAlgorithm{MD5, SHA1}
}

const (
	// Lengths of hash outputs in bytes
	HashLenMD5  = 16
	HashLenSHA1 = 20

	// BlockSize is the block length of both algorithms in bytes.
	BlockSize = 64

	// lengthOffset is where the 8-byte message length starts in the last block.
	lengthOffset = BlockSize - 8
)

// Status is the lifecycle state of a digest context.
type Status int

const (
	// Active contexts accept Update and Final.
	Active Status = iota
	// Finalized contexts have produced their digest.
	Finalized
	// Corrupted contexts hit an unrecoverable error.
	Corrupted
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Finalized:
		return "finalized"
	case Corrupted:
		return "corrupted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
