package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fnol-cli/internal/adapters/driven/reader"
	"github.com/custodia-labs/fnol-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Process FNOL documents as they arrive in a directory",
	Long: `Watches a directory and processes every newly created PDF or TXT
file as an independent single-pass run, printing one routing record per
document. Documents that fail to read are logged and skipped. Stop with
Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if processService == nil {
		return errors.New("process service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	supported := reader.New()
	logger.Info("watching %s for new documents", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) || !supported.Supports(ev.Name) {
				continue
			}
			result, err := processService.Process(ctx, ev.Name)
			if err != nil {
				logger.Warn("skipping %s: %v", ev.Name, err)
				continue
			}
			if err := outputResult(cmd, result); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
