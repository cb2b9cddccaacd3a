package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/homemedia/organizer/internal/logger"
	"github.com/homemedia/organizer/internal/media"
)

type groupKey struct {
	baseName     string
	subdirectory string
}

// GroupFiles groups a flat list of file paths into Image aggregates.
//
// Two files land in the same Image exactly when their extracted base name
// and their directory relative to root match. A path outside root degrades
// to using its parent directory's own name as the subdirectory rather than
// failing. Non-regular files are skipped. Group order follows first
// appearance in the input so repeated runs are deterministic.
func GroupFiles(paths []string, root string) []*media.Image {
	if len(paths) == 0 {
		return nil
	}

	groups := make(map[groupKey][]string)
	var order []groupKey

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		baseName, _ := ExtractBaseName(filepath.Base(path))
		key := groupKey{
			baseName:     baseName,
			subdirectory: subdirectoryFor(path, root),
		}

		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], path)
	}

	images := make([]*media.Image, 0, len(order))
	for _, key := range order {
		img := media.NewImage(key.baseName, key.subdirectory)
		for _, path := range groups[key] {
			file, err := media.NewMediaFile(path, key.baseName)
			if err != nil {
				logger.Warn("skipping unreadable file", "path", path, "error", err)
				continue
			}
			img.AddFile(file)
		}
		images = append(images, img)
	}

	return images
}

// subdirectoryFor computes a path's parent directory relative to root,
// falling back to the parent directory's name for paths outside root.
func subdirectoryFor(path, root string) string {
	parent := filepath.Dir(path)
	rel, err := filepath.Rel(root, parent)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(parent)
	}
	return rel
}
