package organizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// UniqueBaseName finds a base name under targetDir that is simultaneously
// free for every suffix the Image will produce. Candidates are tried as
// base, base_001, base_002, ... and the first one with no collision for
// any suffix wins, so all sibling files can share the final name.
//
// A targetDir that does not exist yet cannot collide and returns the
// candidate unchanged.
func UniqueBaseName(targetDir, baseName string, suffixes []string) string {
	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		return baseName
	}

	candidate := baseName
	for sequence := 1; ; sequence++ {
		conflict := false
		for _, suffix := range suffixes {
			if fileExists(filepath.Join(targetDir, candidate+suffix)) {
				conflict = true
				break
			}
		}
		if !conflict {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%03d", baseName, sequence)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
