package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digestkit/digestkit/crypto/cipher"
)

var (
	flagCipher  string
	flagKey     string
	flagBlock   string
	flagDecrypt bool
)

var ecbCmd = &cobra.Command{
	Use:   "ecb",
	Short: "Encrypt or decrypt a single hex encoded block",
	RunE:  runECB,
}

func init() {
	rootCmd.AddCommand(ecbCmd)

	ecbCmd.Flags().StringVar(&flagCipher, "cipher", "des",
		"block cipher: des, blowfish or aes")
	ecbCmd.Flags().StringVar(&flagKey, "key", "",
		"hex encoded key")
	ecbCmd.Flags().StringVar(&flagBlock, "block", "",
		"hex encoded input block")
	ecbCmd.Flags().BoolVar(&flagDecrypt, "decrypt", false,
		"decrypt instead of encrypt")
	_ = ecbCmd.MarkFlagRequired("block")

	_ = viper.BindPFlag("cipher", ecbCmd.Flags().Lookup("cipher"))
	_ = viper.BindPFlag("key", ecbCmd.Flags().Lookup("key"))
	_ = viper.BindPFlag("decrypt", ecbCmd.Flags().Lookup("decrypt"))
}

func runECB(cmd *cobra.Command, _ []string) error {
	algo, err := cipher.ParseCipherAlgorithm(viper.GetString("cipher"))
	if err != nil {
		return errors.Wrap(err, "invalid --cipher")
	}
	key, err := hex.DecodeString(viper.GetString("key"))
	if err != nil {
		return errors.Wrap(err, "invalid --key")
	}
	block, err := hex.DecodeString(flagBlock)
	if err != nil {
		return errors.Wrap(err, "invalid --block")
	}

	bc, err := cipher.NewBlockCipher(algo, key)
	if err != nil {
		return errors.Wrapf(err, "could not set %s key", algo)
	}

	dir := cipher.Encrypt
	if viper.GetBool("decrypt") {
		dir = cipher.Decrypt
	}
	out, err := cipher.Transform(bc, block, dir)
	if err != nil {
		return errors.Wrapf(err, "could not %s block", dir)
	}

	log.Debug().Str("cipher", algo.String()).Str("direction", dir.String()).Msg("transformed block")
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
	return nil
}
