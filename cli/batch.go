package cli

import (
	"context"
	"io"
	"os"
	"syscall"

	"github.com/TualatinX/chainaddr/batch"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vrecan/death/v3"
)

func (cli *CommandLine) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Derive keys for every hex private key in FILE or stdin, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cli.runBatch,
	}
	cmd.Flags().IntP("workers", "w", cli.config.Workers, "Number of keys derived in parallel")
	return cmd
}

func (cli *CommandLine) runBatch(cmd *cobra.Command, args []string) error {
	logger := cli.config.Logger()

	enc, err := batch.NewEncoder(cli.config.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, source = f, args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go d.WaitForDeathWithFunc(func() {
		logger.Warn("Interrupted, finishing keys already in flight")
		cancel()
	})

	logger.WithFields(logrus.Fields{
		"source":  source,
		"workers": cli.config.Workers,
	}).Info("Starting batch")

	stats, err := batch.NewProcessor(cli.config.Workers, logger).Run(ctx, in, enc)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"total":  stats.Total,
		"failed": stats.Failed,
	}).Info("Batch finished")

	if stats.Failed > 0 {
		return errors.Errorf("%d of %d keys could not be derived", stats.Failed, stats.Total)
	}
	return nil
}
