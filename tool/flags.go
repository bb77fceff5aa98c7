package tool

import (
	"github.com/spf13/cobra"

	"github.com/genotet/uploadbatch/types"
)

// BindFlags registers the optional CLI overrides on cmd and returns the struct they fill.
func BindFlags(cmd *cobra.Command) *types.Config {
	cfg := &types.Config{}
	flags := cmd.Flags()
	flags.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flags.StringVar(&cfg.UseConfigPath, "config", "", "override config file path")
	flags.StringVar(&cfg.UseServer, "server", "", "override genotet server URL, e.g. http://localhost:3000/genotet")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "parse and list the manifest without signing in or uploading")
	return cfg
}
