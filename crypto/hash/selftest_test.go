package hash

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digestkit/digestkit/utils/unittest"
)

func TestSelfTest(t *testing.T) {
	passed := 0
	log := unittest.LoggerWithHook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, msg string) {
		if level == zerolog.DebugLevel && msg == "known-answer vector passed" {
			passed++
		}
	}))
	require.NoError(t, SelfTest(log))
	assert.Equal(t, len(KnownAnswerVectors()), passed)
}

func TestSelfTestReportsEveryMismatch(t *testing.T) {
	mismatches := 0
	log := unittest.LoggerWithHook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, msg string) {
		if level == zerolog.ErrorLevel {
			mismatches++
		}
	}))
	vectors := []KnownAnswer{
		{Algorithm: MD5, Input: "abc", Digest: "900150983cd24fb0d6963f7d28e17f72"},
		{Algorithm: MD5, Input: "abc", Digest: "00000000000000000000000000000000"},
		{Algorithm: SHA1, Input: "abc", Digest: "0000000000000000000000000000000000000000"},
		{Algorithm: UnknownHashingAlgorithm, Input: "abc", Digest: ""},
	}

	err := checkVectors(log, vectors, NewHasher)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.True(t, IsInvalidInputsError(merr.Errors[2]))
	assert.Equal(t, 2, mismatches)
}

func TestKnownAnswerMessage(t *testing.T) {
	v := KnownAnswer{Input: "ab", Repeat: 3}
	assert.Equal(t, []byte("ababab"), v.Message())
	assert.Equal(t, 6, v.length())

	v = KnownAnswer{Input: "ab"}
	assert.Equal(t, []byte("ab"), v.Message())
	assert.Equal(t, 2, v.length())
}
