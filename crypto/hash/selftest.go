package hash

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// SelfTest hashes every known-answer vector and returns all mismatches
// combined into a single error.
func SelfTest(log zerolog.Logger) error {
	return checkVectors(log, KnownAnswerVectors(), NewHasher)
}

func checkVectors(log zerolog.Logger, vectors []KnownAnswer, newHasher func(HashingAlgorithm) (Hasher, error)) error {
	var result *multierror.Error

	for i, v := range vectors {
		lg := log.With().
			Int("vector", i).
			Str("algorithm", v.Algorithm.String()).
			Int("length", v.length()).
			Logger()

		h, err := newHasher(v.Algorithm)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("vector %d: %w", i, err))
			continue
		}
		if err = h.Update(v.Message()); err != nil {
			result = multierror.Append(result, fmt.Errorf("vector %d: update failed: %w", i, err))
			continue
		}
		got, err := h.Final()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("vector %d: final failed: %w", i, err))
			continue
		}
		if !got.Equal(v.Expected()) {
			lg.Error().Str("expected", v.Digest).Str("got", got.Hex()).Msg("known-answer mismatch")
			result = multierror.Append(result, fmt.Errorf("vector %d (%s): expected %s, got %s", i, v.Algorithm, v.Digest, got))
			continue
		}
		lg.Debug().Str("digest", got.Hex()).Msg("known-answer vector passed")
	}

	return result.ErrorOrNil()
}
