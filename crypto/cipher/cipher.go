// Package cipher provides single-block ECB transforms over a prepared key
// schedule. It shares no state or buffers with package hash.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/des"
	"fmt"
	"strings"

	"golang.org/x/crypto/blowfish"
)

// CipherAlgorithm is an identifier for a block cipher.
type CipherAlgorithm int

const (
	// Supported block ciphers
	UnknownCipherAlgorithm CipherAlgorithm = iota
	DES
	Blowfish
	AES
)

// String returns the string representation of this cipher.
func (a CipherAlgorithm) String() string {
	switch a {
	case DES:
		return "DES"
	case Blowfish:
		return "BLOWFISH"
	case AES:
		return "AES"
	default:
		return "UNKNOWN"
	}
}

// ParseCipherAlgorithm maps a case-insensitive name to its cipher.
func ParseCipherAlgorithm(name string) (CipherAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "des":
		return DES, nil
	case "blowfish":
		return Blowfish, nil
	case "aes":
		return AES, nil
	default:
		return UnknownCipherAlgorithm, invalidInputsErrorf("unknown cipher %q", name)
	}
}

// Direction selects encryption or decryption.
type Direction int

const (
	Decrypt Direction = iota
	Encrypt
)

func (d Direction) String() string {
	if d == Encrypt {
		return "encrypt"
	}
	return "decrypt"
}

const (
	// BlockLenDES is the DES and Blowfish block length in bytes.
	BlockLenDES = 8
	// BlockLenAES is the AES block length in bytes.
	BlockLenAES = 16
	// KeyLenDES is the DES key length in bytes, parity bits included.
	KeyLenDES = 8
)

// BlockCipher transforms exactly one block at a time with a fixed key schedule.
type BlockCipher interface {
	// Algorithm returns the cipher of this key schedule.
	Algorithm() CipherAlgorithm
	// BlockSize returns the block length in bytes.
	BlockSize() int
	// ECB transforms the single block src into dst in the given direction.
	// dst and src must both be exactly one block long.
	ECB(dst, src []byte, dir Direction) error
}

// ecbCipher runs one block of an expanded key schedule.
type ecbCipher struct {
	algo  CipherAlgorithm
	block stdcipher.Block
}

// NewBlockCipher expands key into the key schedule of the given cipher.
//
// DES takes an 8-byte key whose low bit of each byte is ignored, Blowfish a
// key of 1 to 56 bytes, AES a key of 16, 24 or 32 bytes.
func NewBlockCipher(algo CipherAlgorithm, key []byte) (BlockCipher, error) {
	if len(key) == 0 {
		return nil, invalidInputsErrorf("%s key is empty", algo)
	}

	var (
		block stdcipher.Block
		err   error
	)
	switch algo {
	case DES:
		block, err = des.NewCipher(key)
	case Blowfish:
		block, err = blowfish.NewCipher(key)
	case AES:
		block, err = aes.NewCipher(key)
	default:
		return nil, invalidInputsErrorf("cipher %s is not supported", algo)
	}
	if err != nil {
		return nil, invalidInputsErrorf("invalid %s key: %w", algo, err)
	}

	return &ecbCipher{algo: algo, block: block}, nil
}

func (c *ecbCipher) Algorithm() CipherAlgorithm { return c.algo }

func (c *ecbCipher) BlockSize() int { return c.block.BlockSize() }

func (c *ecbCipher) ECB(dst, src []byte, dir Direction) error {
	size := c.block.BlockSize()
	if len(src) != size {
		return invalidInputsErrorf("%s input block must be %d bytes, got %d", c.algo, size, len(src))
	}
	if len(dst) != size {
		return invalidInputsErrorf("%s output block must be %d bytes, got %d", c.algo, size, len(dst))
	}

	switch dir {
	case Encrypt:
		c.block.Encrypt(dst, src)
	case Decrypt:
		c.block.Decrypt(dst, src)
	default:
		return invalidInputsErrorf("unknown direction %d", int(dir))
	}
	return nil
}

// Transform is the allocating form of ECB.
func Transform(c BlockCipher, src []byte, dir Direction) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("nil block cipher")
	}
	dst := make([]byte, c.BlockSize())
	if err := c.ECB(dst, src, dir); err != nil {
		return nil, err
	}
	return dst, nil
}
