package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/genotet/uploadbatch/batch"
	"github.com/genotet/uploadbatch/tool"
	"github.com/genotet/uploadbatch/transfer"
)

// injected at build time through ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <username> <manifest-file>",
		Short: "Upload a batch of files to a genotet server",
		Long: "Reads a tab separated manifest (file_path, data_name, file_type, description per line),\n" +
			"signs in once with the given username and uploads every file in order.\n" +
			"The run stops at the first failed upload.",
		Args:    cobra.ExactArgs(2),
		Version: fmt.Sprintf("%s (commit %s, built %s, %s)", version, commit, date, runtime.Version()),
	}
	flags := tool.BindFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tool.InitLogger()
		tool.SetLogMode(flags.Log)

		appCfg, err := tool.LoadConfig(flags.UseConfigPath)
		if err != nil {
			return err
		}
		tool.ApplyFlagOverrides(&appCfg, *flags)

		client, err := transfer.NewClient(appCfg)
		if err != nil {
			return err
		}
		// past argument validation, failures are not usage errors
		cmd.SilenceUsage = true

		runID := tool.GenerateRunID()
		logger := tool.DefaultLogger.With("run", runID)
		logger.Debugf("Using server %s", appCfg.Server)

		runner := &batch.Runner{
			Uploader: client,
			Prompter: tool.NewDefaultPrompter(),
			Out:      cmd.OutOrStdout(),
			Limiter:  tool.NewUploadLimiter(appCfg.UploadsPerSecond),
			Logger:   logger,
			DryRun:   flags.DryRun,
		}
		report := runner.Run(cmd.Context(), args[1], args[0])
		if !report.OK() {
			return report.Err
		}
		if !flags.DryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d of %d files\n", report.Uploaded, report.Total)
		}
		return nil
	}
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
