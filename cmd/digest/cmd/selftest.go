package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/digestkit/digestkit/crypto/hash"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check every algorithm against its published known-answer vectors",
	RunE:  runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, _ []string) error {
	vectors := len(hash.KnownAnswerVectors())
	log.Info().Int("vectors", vectors).Msg("running known-answer tests")

	if err := hash.SelfTest(log); err != nil {
		return errors.Wrap(err, "self-test failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "all %d known-answer vectors passed\n", vectors)
	return nil
}
