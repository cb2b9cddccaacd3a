package media

import (
	"path/filepath"
	"strings"
)

// FileFormat identifies the on-disk format of a media file.
//
// The set is closed: extension lookup never fails, it returns
// FormatUnknown for anything it does not recognize.
type FileFormat int

const (
	FormatUnknown FileFormat = iota

	// RAW formats
	FormatCR2 // Canon RAW 2
	FormatCR3 // Canon RAW 3
	FormatNEF // Nikon RAW
	FormatARW // Sony RAW
	FormatDNG // Adobe Digital Negative
	FormatRAF // Fujifilm RAW
	FormatORF // Olympus RAW
	FormatRW2 // Panasonic RAW

	// Standard image formats
	FormatJPEG
	FormatPNG
	FormatTIFF
	FormatHEIC
	FormatHEIF
	FormatWEBP

	// Metadata/sidecar formats
	FormatXMP
	FormatTHM

	// Video formats
	FormatMP4
	FormatMOV
	FormatAVI
)

// formatExtensions maps each format to its canonical extension (no dot).
var formatExtensions = map[FileFormat]string{
	FormatCR2:  "cr2",
	FormatCR3:  "cr3",
	FormatNEF:  "nef",
	FormatARW:  "arw",
	FormatDNG:  "dng",
	FormatRAF:  "raf",
	FormatORF:  "orf",
	FormatRW2:  "rw2",
	FormatJPEG: "jpg",
	FormatPNG:  "png",
	FormatTIFF: "tiff",
	FormatHEIC: "heic",
	FormatHEIF: "heif",
	FormatWEBP: "webp",
	FormatXMP:  "xmp",
	FormatTHM:  "thm",
	FormatMP4:  "mp4",
	FormatMOV:  "mov",
	FormatAVI:  "avi",
}

var extensionFormats = func() map[string]FileFormat {
	m := make(map[string]FileFormat, len(formatExtensions))
	for f, ext := range formatExtensions {
		m[ext] = f
	}
	return m
}()

// FormatFromExtension returns the FileFormat for a file extension.
// The extension may carry a leading dot and any casing. jpg/jpeg and
// tif/tiff collapse to single canonical members.
func FormatFromExtension(ext string) FileFormat {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))

	switch e {
	case "jpg", "jpeg":
		return FormatJPEG
	case "tif", "tiff":
		return FormatTIFF
	}

	if f, ok := extensionFormats[e]; ok {
		return f
	}
	return FormatUnknown
}

// FormatFromFilename extracts the final extension of a filename or path
// and returns its format.
func FormatFromFilename(name string) FileFormat {
	return FormatFromExtension(filepath.Ext(name))
}

// Extension returns the canonical extension for the format, without a dot.
// FormatUnknown has no extension.
func (f FileFormat) Extension() string {
	return formatExtensions[f]
}

// IsRaw reports whether the format is a camera RAW format. TIFF is
// treated as RAW because scanned masters are stored as TIFF.
func (f FileFormat) IsRaw() bool {
	switch f {
	case FormatCR2, FormatCR3, FormatNEF, FormatARW,
		FormatDNG, FormatRAF, FormatORF, FormatRW2, FormatTIFF:
		return true
	}
	return false
}

// IsImage reports whether the format is a viewable image format,
// RAW formats included.
func (f FileFormat) IsImage() bool {
	switch f {
	case FormatJPEG, FormatPNG, FormatHEIC, FormatHEIF, FormatWEBP:
		return true
	}
	return f.IsRaw()
}

// IsSidecar reports whether the format is a metadata sidecar format.
func (f FileFormat) IsSidecar() bool {
	return f == FormatXMP || f == FormatTHM
}

// IsVideo reports whether the format is a video format.
func (f FileFormat) IsVideo() bool {
	switch f {
	case FormatMP4, FormatMOV, FormatAVI:
		return true
	}
	return false
}

func (f FileFormat) String() string {
	switch f {
	case FormatUnknown:
		return "unknown"
	case FormatJPEG:
		return "jpeg"
	default:
		return formatExtensions[f]
	}
}
