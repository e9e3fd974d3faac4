package cipher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		algo       CipherAlgorithm
		key        string
		plaintext  string
		ciphertext string
	}{
		{DES, "133457799bbcdff1", "0123456789abcdef", "85e813540f0ab405"},
		{Blowfish, "0000000000000000", "0000000000000000", "4ef997456198dd78"},
		{AES, "000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	}

	for _, c := range cases {
		t.Run(c.algo.String(), func(t *testing.T) {
			bc, err := NewBlockCipher(c.algo, decodeHex(t, c.key))
			require.NoError(t, err)
			assert.Equal(t, c.algo, bc.Algorithm())

			out, err := Transform(bc, decodeHex(t, c.plaintext), Encrypt)
			require.NoError(t, err)
			assert.Equal(t, c.ciphertext, hex.EncodeToString(out))

			back, err := Transform(bc, out, Decrypt)
			require.NoError(t, err)
			assert.Equal(t, c.plaintext, hex.EncodeToString(back))
		})
	}
}

func TestBlockSizes(t *testing.T) {
	bc, err := NewBlockCipher(DES, make([]byte, KeyLenDES))
	require.NoError(t, err)
	assert.Equal(t, BlockLenDES, bc.BlockSize())

	bc, err = NewBlockCipher(Blowfish, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, BlockLenDES, bc.BlockSize())

	bc, err = NewBlockCipher(AES, make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, BlockLenAES, bc.BlockSize())
}

func TestInvalidInputs(t *testing.T) {
	_, err := NewBlockCipher(DES, make([]byte, 7))
	assert.True(t, IsInvalidInputsError(err))

	_, err = NewBlockCipher(AES, make([]byte, 15))
	assert.True(t, IsInvalidInputsError(err))

	_, err = NewBlockCipher(Blowfish, nil)
	assert.True(t, IsInvalidInputsError(err))

	_, err = NewBlockCipher(UnknownCipherAlgorithm, make([]byte, 8))
	assert.True(t, IsInvalidInputsError(err))

	bc, err := NewBlockCipher(DES, make([]byte, KeyLenDES))
	require.NoError(t, err)
	err = bc.ECB(make([]byte, 8), make([]byte, 9), Encrypt)
	assert.True(t, IsInvalidInputsError(err))
	err = bc.ECB(make([]byte, 16), make([]byte, 8), Encrypt)
	assert.True(t, IsInvalidInputsError(err))
	err = bc.ECB(make([]byte, 8), make([]byte, 8), Direction(7))
	assert.True(t, IsInvalidInputsError(err))

	_, err = Transform(nil, make([]byte, 8), Encrypt)
	assert.Error(t, err)
}

func TestParseCipherAlgorithm(t *testing.T) {
	for name, expected := range map[string]CipherAlgorithm{"des": DES, "DES": DES, "blowfish": Blowfish, "AES": AES} {
		algo, err := ParseCipherAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, expected, algo)
	}
	_, err := ParseCipherAlgorithm("rc4")
	assert.True(t, IsInvalidInputsError(err))
}

// decrypting an encrypted block gives back the block
func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		algo := rapid.SampledFrom([]CipherAlgorithm{DES, Blowfish, AES}).Draw(t, "algorithm")
		keyLen := map[CipherAlgorithm]int{DES: 8, Blowfish: 16, AES: 16}[algo]
		key := rapid.SliceOfN(rapid.Byte(), keyLen, keyLen).Draw(t, "key")

		bc, err := NewBlockCipher(algo, key)
		require.NoError(t, err)
		block := rapid.SliceOfN(rapid.Byte(), bc.BlockSize(), bc.BlockSize()).Draw(t, "block")

		out, err := Transform(bc, block, Encrypt)
		require.NoError(t, err)
		back, err := Transform(bc, out, Decrypt)
		require.NoError(t, err)
		require.Equal(t, block, back)
	})
}
