package hash

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// any chunking of a message gives the digest of the whole message
func TestIncrementalEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		algo := rapid.SampledFrom(Algorithms()).Draw(t, "algorithm")
		msg := rapid.SliceOfN(rapid.Byte(), 0, 4*BlockSize+7).Draw(t, "message")
		cuts := rapid.SliceOfN(rapid.IntRange(0, len(msg)), 0, 8).Draw(t, "cuts")
		sort.Ints(cuts)

		h, err := NewHasher(algo)
		require.NoError(t, err)
		prev := 0
		for _, cut := range cuts {
			require.NoError(t, h.Update(msg[prev:cut]))
			prev = cut
		}
		require.NoError(t, h.Update(msg[prev:]))

		digest, err := h.Final()
		require.NoError(t, err)
		require.Len(t, digest, algo.Size())
		require.Equal(t, reference(algo, msg), digest)
	})
}

// independent contexts never influence each other
func TestInterleavedContexts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		first := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(t, "first")
		second := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(t, "second")
		step := rapid.IntRange(1, 70).Draw(t, "step")

		a, b := NewMD5(), NewSHA1()
		for i := 0; i < len(first) || i < len(second); i += step {
			require.NoError(t, a.Update(window(first, i, step)))
			require.NoError(t, b.Update(window(second, i, step)))
		}

		digestA, err := a.Final()
		require.NoError(t, err)
		digestB, err := b.Final()
		require.NoError(t, err)
		require.Equal(t, reference(MD5, first), digestA)
		require.Equal(t, reference(SHA1, second), digestB)
	})
}

func window(b []byte, from, n int) []byte {
	if from >= len(b) {
		return nil
	}
	to := from + n
	if to > len(b) {
		to = len(b)
	}
	return b[from:to]
}
