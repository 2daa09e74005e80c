package cli

import (
	"strings"

	"github.com/TualatinX/chainaddr/wallet"
	"github.com/spf13/cobra"
)

func (cli *CommandLine) newBTCAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "btc-address PUBLIC_KEY",
		Short: "Derive the P2PKH address of an uncompressed hex public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := wallet.DeriveBTCAddress(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"btc_address", address})
		},
	}
}

func (cli *CommandLine) newETHAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eth-address PUBLIC_KEY",
		Short: "Derive the EIP-55 address of an uncompressed hex public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := wallet.DeriveETHAddress(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"eth_address", address})
		},
	}
}

func (cli *CommandLine) newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum ADDRESS",
		Short: "Apply the EIP-55 mixed-case checksum to a 0x address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := wallet.EIP55Checksum(args[0])
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(), field{"eth_address", address})
		},
	}
}

// verify treats 0x addresses as Ethereum and anything else as Bitcoin P2PKH.
func (cli *CommandLine) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify ADDRESS",
		Short: "Check a Bitcoin P2PKH address or an Ethereum EIP-55 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]

			if strings.HasPrefix(address, "0x") {
				if err := wallet.VerifyEIP55(address); err != nil {
					return err
				}
				return cli.print(cmd.OutOrStdout(),
					field{"chain", "ethereum"},
					field{"address", address},
				)
			}

			pubKeyHash, err := wallet.AddressPubKeyHash(address)
			if err != nil {
				return err
			}
			return cli.print(cmd.OutOrStdout(),
				field{"chain", "bitcoin"},
				field{"address", address},
				field{"hash160", wallet.EncodeHex(pubKeyHash)},
			)
		},
	}
}
