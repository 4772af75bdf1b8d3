package cmd

import (
	"fmt"

	"github.com/cianmb/hurltrack/internal/config"
	"github.com/cianmb/hurltrack/internal/storage"
	"github.com/cianmb/hurltrack/internal/tracker"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hurltrack",
	Short: "CLI training log for hurling: sessions, drills and weekly stats",
}

func Execute() error {
	return rootCmd.Execute()
}

// openTracker builds the tracker over the configured data dir and loads
// the full log. Every command starts here; mutating commands save after
// their change.
func openTracker() (*tracker.Tracker, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dir, err := cfg.EnsureDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data dir: %w", err)
	}

	tr := tracker.New(storage.NewStore(dir))
	if err := tr.Load(); err != nil {
		return nil, fmt.Errorf("failed to load training log: %w", err)
	}
	return tr, nil
}
