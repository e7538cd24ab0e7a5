package cli

import (
	"github.com/spf13/cobra"

	"estate-listings/config"
	"estate-listings/utils"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	flagDataset  string
	flagLogLevel string
	flagDebug    bool

	cfg    *config.Config
	logger *utils.Logger
}

// NewRootCmd creates the root cobra command for the estate CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "estate",
		Short: "Property listing search, estimates and API server",
		Long:  "estate serves and queries the property listing catalog: filter, sort and paginate listings, run the site calculators and export results.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.Load()
			if cmd.Flags().Changed("dataset") {
				a.cfg.DatasetPath = a.flagDataset
			}
			if cmd.Flags().Changed("log-level") {
				a.cfg.LogLevel = a.flagLogLevel
			}
			if a.flagDebug {
				a.cfg.LogLevel = "debug"
			}
			a.logger = utils.NewLoggerWithWriter(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if !a.cfg.EnvFileLoaded {
				a.logger.Debug("[config] No .env file found, using environment variables")
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.flagDataset, "dataset", "", "Dataset YAML/JSON file (or DATASET_PATH env; embedded demo data when empty)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.flagDebug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newSearchCmd(a),
		newEstimateCmd(),
		newInsightsCmd(a),
		newSeedCmd(a),
		newExportCmd(a),
	)

	return root
}
