package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homemedia/organizer/internal/exifdata"
	"github.com/homemedia/organizer/internal/scanner"
)

var (
	scanRecursive bool
	scanSidecars  bool
	scanWithExif  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Scan a directory and report the image groups found",
	Long:  "Scan a directory, group related files into capture moments, and print the groups without touching anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanRecursive, "recursive", true, "scan subdirectories")
	scanCmd.Flags().BoolVar(&scanSidecars, "sidecars", true, "include sidecar files (XMP, THM)")
	scanCmd.Flags().BoolVar(&scanWithExif, "exif", false, "extract capture metadata per group")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	sourceDir := args[0]

	files, err := scanner.CollectFiles(sourceDir, scanner.CollectOptions{
		Recursive:       scanRecursive,
		IncludeSidecars: scanSidecars,
	})
	if err != nil {
		return err
	}

	images := scanner.GroupFiles(files, sourceDir)

	var populator exifdata.Populator
	for _, img := range images {
		img.RefineRoles()
		if scanWithExif {
			populator.Populate(img)
		}
	}

	for _, img := range images {
		captured := "-"
		if img.CapturedAt != nil {
			captured = img.CapturedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%s  (%s)  files=%d  captured=%s\n",
			img.BaseName, img.Subdirectory, img.FileCount(), captured)
		for _, f := range img.Files {
			fmt.Printf("    %-12s %-8s %s\n", f.Role, f.Format, f.Filename)
		}
	}

	fmt.Printf("\n%d groups, %d files\n", len(images), len(files))
	return nil
}
