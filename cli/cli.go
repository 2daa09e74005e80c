package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TualatinX/chainaddr/batch"
	"github.com/TualatinX/chainaddr/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// CommandLine is the chainaddr command tree. The zero value uses the default
// configuration.
type CommandLine struct {
	config *config.Config
	viper  *viper.Viper
}

// NewCommandLine returns a CommandLine that loads flags, environment and
// config file into conf.
func NewCommandLine(conf *config.Config) *CommandLine {
	return &CommandLine{config: conf}
}

// Command builds the root command with every subcommand attached.
func (cli *CommandLine) Command() *cobra.Command {
	if cli.config == nil {
		cli.config = config.NewDefaultConfig()
	}
	cli.viper = viper.New()

	root := &cobra.Command{
		Use:               "chainaddr",
		Short:             "Derive Bitcoin and Ethereum keys and addresses from secp256k1 key material",
		SilenceUsage:      true,
		PersistentPreRunE: cli.loadConfig,
	}

	root.PersistentFlags().String("datadir", cli.config.DataDir, "Directory holding an optional chainaddr.{toml,yaml,json}")
	root.PersistentFlags().String("log", cli.config.LogLevel, "debug, info, warn, error, fatal, panic")
	root.PersistentFlags().String("log-file", cli.config.LogFile, "Also write logs to this file")
	root.PersistentFlags().StringP("output", "o", cli.config.Output, "Output format: text or json")

	root.AddCommand(
		cli.newPubKeyCmd(),
		cli.newWIFCmd(),
		cli.newDecodeWIFCmd(),
		cli.newCompressCmd(),
		cli.newBTCAddressCmd(),
		cli.newETHAddressCmd(),
		cli.newChecksumCmd(),
		cli.newVerifyCmd(),
		cli.newDeriveCmd(),
		cli.newBatchCmd(),
		cli.newVersionCmd(),
	)

	return root
}

// Run executes the command line and exits non-zero on failure.
func (cli *CommandLine) Run() {
	if err := cli.Command().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges flags, CHAINADDR_* environment variables and the config
// file found in datadir, in that order of precedence.
func (cli *CommandLine) loadConfig(cmd *cobra.Command, args []string) error {
	v := cli.viper

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix("CHAINADDR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	dataDir := v.GetString("datadir")
	v.SetConfigName(config.ConfigName)
	v.AddConfigPath(dataDir)

	configFile := ""
	if err := v.ReadInConfig(); err == nil {
		configFile = v.ConfigFileUsed()
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return err
	}

	if err := v.Unmarshal(cli.config); err != nil {
		return err
	}

	logger := cli.config.Logger()
	if configFile != "" {
		logger.Debugf("Using config file: %s", configFile)
	} else {
		logger.Debugf("No config file found in: %s", dataDir)
	}
	logger.WithFields(logrus.Fields{
		"datadir":  cli.config.DataDir,
		"log":      cli.config.LogLevel,
		"log-file": cli.config.LogFile,
		"output":   cli.config.Output,
		"workers":  cli.config.Workers,
	}).Debug(strings.ToUpper(cmd.Name()))

	return nil
}

type field struct {
	name  string
	value interface{}
}

// print writes a single value bare, several values as "name: value" lines,
// or all of them as one JSON object.
func (cli *CommandLine) print(w io.Writer, fields ...field) error {
	if cli.config.Output == config.OutputJSON {
		obj := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			obj[f.name] = f.value
		}
		return batch.NewJSONEncoder(w).Encode(obj)
	}
	if cli.config.Output != config.OutputText {
		_, err := batch.NewEncoder(cli.config.Output, w)
		return err
	}

	if len(fields) == 1 {
		_, err := fmt.Fprintln(w, fields[0].value)
		return err
	}
	for _, f := range fields {
		label := strings.ReplaceAll(f.name, "_", " ") + ":"
		if _, err := fmt.Fprintf(w, "%-22s %v\n", label, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (cli *CommandLine) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
