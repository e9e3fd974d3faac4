package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digestkit/digestkit/crypto/hash"
)

var flagAlgorithms = AlgorithmsArg(hash.Algorithms())

// inputs hashed when none are given on the command line
var demoInputs = []string{"Gemini", ""}

var sumCmd = &cobra.Command{
	Use:   "sum [input...]",
	Short: "Print the digest of each literal input",
	Long: `Print one line per input and algorithm in the form

  MD5("input") = <lowercase hex digest>

Without arguments the demo inputs "Gemini" and "" are hashed.`,
	RunE: runSum,
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().VarP(&flagAlgorithms, "algorithm", "a",
		"comma separated hashing algorithms: md5, sha1 or all")
	_ = viper.BindPFlag("algorithm", sumCmd.Flags().Lookup("algorithm"))
}

func runSum(cmd *cobra.Command, args []string) error {
	// flags win over DIGEST_ALGORITHM, which is parsed the same way
	algos, err := selectAlgorithms(viper.GetString("algorithm"))
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		log.Debug().Strs("inputs", demoInputs).Msg("no input given, hashing demo inputs")
		inputs = demoInputs
	}

	out := cmd.OutOrStdout()
	for _, input := range inputs {
		for _, algo := range algos {
			digest, err := hash.ComputeHash(algo, []byte(input))
			if err != nil {
				return errors.Wrapf(err, "could not hash %q with %s", input, algo)
			}
			log.Debug().
				Str("algorithm", algo.String()).
				Int("length", len(input)).
				Hex("digest", digest).
				Msg("computed digest")
			fmt.Fprintln(out, formatDigestLine(algo, input, digest))
		}
	}
	return nil
}

// selectAlgorithms parses a comma separated list of algorithm names; "all"
// selects every supported algorithm.
func selectAlgorithms(value string) ([]hash.HashingAlgorithm, error) {
	if strings.EqualFold(strings.TrimSpace(value), "all") {
		return hash.Algorithms(), nil
	}

	var algos []hash.HashingAlgorithm
	for _, name := range strings.Split(value, ",") {
		algo, err := hash.ParseHashingAlgorithm(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --algorithm")
		}
		algos = append(algos, algo)
	}
	return algos, nil
}

func formatDigestLine(algo hash.HashingAlgorithm, input string, digest hash.Hash) string {
	return fmt.Sprintf("%s(\"%s\") = %s", algo, input, digest.Hex())
}
