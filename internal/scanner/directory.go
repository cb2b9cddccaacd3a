package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/homemedia/organizer/internal/media"
)

// skipFolders are directory names never descended into: sync/system
// folders and camera housekeeping directories.
var skipFolders = map[string]bool{
	".stfolder":       true, // Syncthing
	".fseventsd":      true, // macOS filesystem events
	".Trashes":        true, // macOS trash
	".Spotlight-V100": true, // macOS Spotlight index
	"PRIVATE":         true, // Camera system folder
	"AVF_INFO":        true, // Sony AVCHD info
	"THMBNL":          true, // Sony thumbnails
}

// CollectOptions controls which files CollectFiles returns.
type CollectOptions struct {
	Recursive       bool
	IncludeSidecars bool
}

// CollectFiles gathers candidate media files from a directory. Hidden
// files and known system folders are skipped. Image files (RAW and
// standard) are always collected; sidecars only when requested.
func CollectFiles(dir string, opts CollectOptions) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string

	if !opts.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if wanted(entry.Name(), opts.IncludeSidecars) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
		return files, nil
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if path != dir && (skipFolders[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if wanted(d.Name(), opts.IncludeSidecars) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	return files, nil
}

func wanted(name string, includeSidecars bool) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	// Generic .raw dumps have no format enum member but must still travel
	// with their group.
	if strings.EqualFold(filepath.Ext(name), ".raw") {
		return true
	}
	format := media.FormatFromFilename(name)
	if format.IsImage() {
		return true
	}
	return includeSidecars && IsSidecarFilename(name)
}
