package scanner

import (
	"regexp"
	"strings"
	"time"
)

// Filename timestamp conventions, tried in priority order. Each pattern
// names the capture groups it feeds into the corresponding layout.
var (
	// 20250101_123045 (Android/Pixel)
	compactStampPattern = regexp.MustCompile(`(\d{8})_(\d{6})`)
	// 2025-01-01_12-30-45 (our own canonical format)
	canonicalStampPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})_(\d{2}-\d{2}-\d{2})`)
	// 2025-01-01 12.30.45 (some downloads)
	downloadStampPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{2}\.\d{2}\.\d{2})`)
	// Screenshot_20251214-082305
	screenshotStampPattern = regexp.MustCompile(`(\d{8})-(\d{6})`)
	// bare 20250101, constrained to 2010-2029 to avoid random digit runs
	bareCompactDatePattern = regexp.MustCompile(`(20[1-2]\d{5})`)
	// bare 2025-01-01
	bareISODatePattern = regexp.MustCompile(`(20[1-2]\d-\d{2}-\d{2})`)
)

// ParseDateFromFilename attempts to recover a capture timestamp from a
// filename or base name. Patterns are tried in priority order; a match
// that fails calendar validation falls through to the next pattern.
func ParseDateFromFilename(name string) (time.Time, bool) {
	if m := compactStampPattern.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("20060102150405", m[1]+m[2]); err == nil {
			return t, true
		}
	}

	if m := canonicalStampPattern.FindStringSubmatch(name); m != nil {
		stamp := m[1] + "_" + strings.ReplaceAll(m[2], "-", ":")
		if t, err := time.Parse("2006-01-02_15:04:05", stamp); err == nil {
			return t, true
		}
	}

	if m := downloadStampPattern.FindStringSubmatch(name); m != nil {
		stamp := m[1] + " " + strings.ReplaceAll(m[2], ".", ":")
		if t, err := time.Parse("2006-01-02 15:04:05", stamp); err == nil {
			return t, true
		}
	}

	if m := screenshotStampPattern.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("20060102150405", m[1]+m[2]); err == nil {
			return t, true
		}
	}

	if m := bareCompactDatePattern.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("20060102", m[1]); err == nil {
			return t, true
		}
	}

	if m := bareISODatePattern.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("2006-01-02", m[1]); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
