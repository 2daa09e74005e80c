package cli

import (
	"github.com/TualatinX/chainaddr/batch"
	"github.com/TualatinX/chainaddr/wallet"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (cli *CommandLine) newPubKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey PRIVATE_KEY",
		Short: "Print the uncompressed public key of a hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := wallet.PublicKeyFromPrivate(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"public_key", pub})
		},
	}
}

func (cli *CommandLine) newWIFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wif PRIVATE_KEY",
		Short: "Encode a hex private key in Wallet Import Format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wif, err := wallet.EncodeWIF(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"wif", wif})
		},
	}
}

func (cli *CommandLine) newDecodeWIFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-wif WIF",
		Short: "Recover the hex private key held by a WIF string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, compressed, err := wallet.DecodeWIF(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(),
				field{"private_key", key},
				field{"compressed", compressed},
			)
		},
	}
}

func (cli *CommandLine) newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress PUBLIC_KEY",
		Short: "Compress an uncompressed hex public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compressed, err := wallet.CompressPublicKey(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"compressed_public_key", compressed})
		},
	}
}

func (cli *CommandLine) newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive PRIVATE_KEY",
		Short: "Derive public keys, WIF, Bitcoin and Ethereum addresses from a hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := batch.NewEncoder(cli.config.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			w, err := wallet.NewWallet(args[0])
			if err != nil {
				return err
			}
			keys, err := w.Derive()
			if err != nil {
				return err
			}

			cli.config.Logger().WithFields(logrus.Fields{
				"btc_address": keys.BitcoinAddress,
				"eth_address": keys.EthereumAddress,
			}).Debug("Derived keys")

			return enc.Encode(keys)
		},
	}
}
