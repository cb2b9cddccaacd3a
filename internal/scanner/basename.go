// Package scanner discovers media files and groups them into Images.
//
// Three competing filename conventions are supported when splitting a
// filename into its identity key (base name) and residual suffix:
//
//  1. Google Pixel multi-capture: PXL_20251210_200246684.RAW-01.COVER.jpg
//  2. Multi-extension sidecars: photo.jpg.xmp
//  3. Numbered derivatives: photo_001.jpg
package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	rawMarkerPattern    = regexp.MustCompile(`(?i)\.RAW-`)
	derivativeSeqSuffix = regexp.MustCompile(`_\d{3}$`)
)

// ExtractBaseName splits a filename into (base name, suffix) such that
// base+suffix reconstructs the filename exactly. The suffix keeps its
// original casing and every dropped extension.
func ExtractBaseName(filename string) (base, suffix string) {
	// Pixel multi-capture files: everything before the first ".RAW-"
	// marker is the base name.
	if loc := rawMarkerPattern.FindStringIndex(filename); loc != nil {
		return filename[:loc[0]], filename[loc[0]:]
	}

	// Strip all trailing dotted extensions to reach a dot-free stem.
	stem := filename
	for {
		ext := filepath.Ext(stem)
		if ext == "" || ext == stem {
			break
		}
		stem = stem[:len(stem)-len(ext)]
	}

	// A trailing _NNN is a derivative sequence number, not identity.
	base = derivativeSeqSuffix.ReplaceAllString(stem, "")
	if base == "" {
		base = stem
	}

	return base, filename[len(base):]
}

// IsSidecarFilename reports whether a filename looks like a sidecar or
// metadata file, including multi-extension forms such as photo.jpg.xmp.
func IsSidecarFilename(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.Contains(lower, ".xmp") || strings.HasSuffix(lower, ".thm")
}
