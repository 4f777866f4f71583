package main

import (
	"fmt"
	"log/slog"

	"github.com/flipside-id/flipside/internal/config"
	"github.com/flipside-id/flipside/internal/fetch"
	"github.com/flipside-id/flipside/internal/store"
	"github.com/flipside-id/flipside/internal/tui"
	"github.com/flipside-id/flipside/internal/tui/themes"

	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive transaction browser",
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.Debug("Starting browser", "endpoint", cfg.EndpointURL, "theme", cfg.Theme)

	err = tui.Run(cmd.Context(), tui.Config{
		Fetcher: fetch.NewClient(cfg.EndpointURL, cfg.Timeout),
		Store:   store.New(),
		Theme:   themes.ByName(cfg.Theme),
	})
	if err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}
