package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Process one FNOL document",
	Long: `Reads the FNOL document at the given path, extracts the claim
fields, and prints the routing record as JSON. Fields that cannot be
located with confidence are reported as null and drive the routing
decision towards manual review.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if processService == nil {
		return errors.New("process service not configured")
	}

	result, err := processService.Process(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return outputResult(cmd, result)
}

func outputResult(cmd *cobra.Command, result *domain.ProcessResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
