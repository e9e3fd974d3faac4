package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/digestkit/digestkit/crypto/hash"
)

// AlgorithmsArg is a comma separated list of hashing algorithms given on the command line.
type AlgorithmsArg []hash.HashingAlgorithm

var _ pflag.Value = (*AlgorithmsArg)(nil)

func (f *AlgorithmsArg) String() string {
	names := make([]string, 0, len(*f))
	for _, algo := range *f {
		names = append(names, strings.ToLower(algo.String()))
	}
	return strings.Join(names, ",")
}

func (f *AlgorithmsArg) Set(value string) error {
	algos, err := selectAlgorithms(value)
	if err != nil {
		return err
	}
	*f = algos
	return nil
}

func (f *AlgorithmsArg) Type() string {
	return "algorithms"
}
