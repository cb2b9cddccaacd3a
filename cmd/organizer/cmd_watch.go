package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/homemedia/organizer/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and organize new files as they settle",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sourceDir := args[0]

	org, err := buildOrganizer()
	if err != nil {
		return err
	}

	settle := time.Duration(cfg.Watch.SettleSeconds) * time.Second
	watcher, err := watch.New(sourceDir, org, settle)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
