package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want FileFormat
	}{
		{"canon raw", ".cr2", FormatCR2},
		{"canon raw 3 uppercase", ".CR3", FormatCR3},
		{"nikon raw no dot", "nef", FormatNEF},
		{"sony raw", ".ARW", FormatARW},
		{"dng", ".dng", FormatDNG},
		{"jpg", ".jpg", FormatJPEG},
		{"jpeg variant", ".jpeg", FormatJPEG},
		{"jpeg uppercase", ".JPEG", FormatJPEG},
		{"tif variant", ".tif", FormatTIFF},
		{"tiff", ".tiff", FormatTIFF},
		{"png", ".png", FormatPNG},
		{"heic", ".heic", FormatHEIC},
		{"webp", ".webp", FormatWEBP},
		{"xmp sidecar", ".xmp", FormatXMP},
		{"thm sidecar", ".THM", FormatTHM},
		{"mp4 video", ".mp4", FormatMP4},
		{"unrecognized", ".docx", FormatUnknown},
		{"empty", "", FormatUnknown},
		{"bare dot", ".", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromExtension(tt.ext))
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, FormatJPEG, FormatFromFilename("photo.jpg"))
	assert.Equal(t, FormatCR2, FormatFromFilename("/photos/2025/01/IMG_1234.CR2"))
	assert.Equal(t, FormatXMP, FormatFromFilename("photo.jpg.xmp"))
	assert.Equal(t, FormatUnknown, FormatFromFilename("README"))
}

func TestFormatPredicates(t *testing.T) {
	rawFormats := []FileFormat{
		FormatCR2, FormatCR3, FormatNEF, FormatARW,
		FormatDNG, FormatRAF, FormatORF, FormatRW2,
	}
	for _, f := range rawFormats {
		assert.True(t, f.IsRaw(), "%s should be raw", f)
		assert.True(t, f.IsImage(), "%s should be an image", f)
	}

	// TIFF counts as RAW.
	assert.True(t, FormatTIFF.IsRaw())

	assert.False(t, FormatJPEG.IsRaw())
	assert.True(t, FormatJPEG.IsImage())
	assert.True(t, FormatWEBP.IsImage())

	assert.True(t, FormatXMP.IsSidecar())
	assert.True(t, FormatTHM.IsSidecar())
	assert.False(t, FormatXMP.IsImage())

	assert.True(t, FormatMP4.IsVideo())
	assert.True(t, FormatMOV.IsVideo())
	assert.False(t, FormatMP4.IsImage())

	assert.False(t, FormatUnknown.IsRaw())
	assert.False(t, FormatUnknown.IsImage())
	assert.False(t, FormatUnknown.IsSidecar())
	assert.False(t, FormatUnknown.IsVideo())
}
