package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homemedia/organizer/internal/config"
	"github.com/homemedia/organizer/internal/logger"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Reconstructs capture moments from photo files and organizes them by date",
	Long: "organizer groups related photo files (RAW captures, JPEG previews, XMP " +
		"sidecars, numbered derivatives) into single capture moments and relocates " +
		"them into a canonical YYYY/MM/DD library layout.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it).
func loadConfig() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)
	return nil
}
