package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fnol-cli/internal/adapters/driven/reader"
	"github.com/custodia-labs/fnol-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fnol-cli/internal/core/services"
	"github.com/custodia-labs/fnol-cli/internal/extract"
	"github.com/custodia-labs/fnol-cli/internal/logger"
)

var version = "0.1.0"

// processService is the wired pipeline. Tests may swap it for a mock.
var processService driving.ProcessService = services.NewProcessService(reader.New(), extract.NewExtractor())

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "fnol [file]",
	Short: "Rule-based FNOL claims processing agent",
	Long: `Extracts structured fields from a First-Notice-of-Loss document
(PDF or plain text), validates them against intake rules, and prints a
routing recommendation as JSON.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// `fnol claim.pdf` is shorthand for `fnol process claim.pdf`.
		if len(args) == 1 {
			return runProcess(cmd, args)
		}
		return cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command. The caller maps a non-nil error to a
// non-zero exit code; cobra has already printed the diagnostic to stderr.
func Execute() error {
	return rootCmd.Execute()
}
