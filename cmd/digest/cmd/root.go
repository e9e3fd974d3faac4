package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagLogLevel string
	log          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "digest",
	Short:         "Compute MD5 and SHA-1 digests of literal strings",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initLogger(cmd.ErrOrStderr())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "log-level", "l", "info",
		"log level (panic, fatal, error, warn, info, debug, trace)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

// initConfig lets every flag be set from a DIGEST_ prefixed environment variable,
// e.g. DIGEST_LOG_LEVEL=debug.
func initConfig() {
	viper.SetEnvPrefix("DIGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initLogger(w io.Writer) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log-level")))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
	return nil
}
