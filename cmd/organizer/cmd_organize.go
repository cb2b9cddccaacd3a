package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homemedia/organizer/internal/catalog"
	"github.com/homemedia/organizer/internal/exifdata"
	"github.com/homemedia/organizer/internal/logger"
	"github.com/homemedia/organizer/internal/organizer"
)

var organizeExecute bool

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Move scanned image groups into the date-based library layout",
	Long: "Group files in a directory into capture moments and move them under " +
		"<library root>/YYYY/MM/DD/. Runs as a dry run unless --execute is given.",
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func init() {
	organizeCmd.Flags().BoolVarP(&organizeExecute, "execute", "x", false, "perform the moves (default is a dry run)")
}

func runOrganize(cmd *cobra.Command, args []string) error {
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

	result, err := org.Organize(sourceDir, !organizeExecute)
	if err != nil {
		return err
	}

	fmt.Println(result)
	for _, e := range result.Errors {
		fmt.Printf("  error: %s: %s\n", e.Path, e.Message)
	}
	if !organizeExecute {
		fmt.Println("dry run; re-run with --execute to apply")
	}
	return nil
}

// buildOrganizer wires the organizer with the EXIF collaborator and, when
// configured, the catalog.
func buildOrganizer() (*organizer.Organizer, error) {
	opts := organizer.Options{
		Recursive:       cfg.Scanner.Recursive,
		IncludeSidecars: cfg.Scanner.IncludeSidecars,
		Metadata:        exifdata.Populator{},
	}

	if cfg.Catalog.Path != "" {
		cat, err := catalog.Open(cfg.Catalog.Path)
		if err != nil {
			logger.Warn("catalog unavailable, continuing without it", "error", err)
		} else {
			opts.Catalog = cat
		}
	}

	return organizer.New(cfg.Library.Root, opts)
}
