package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBaseName(t *testing.T) {
	tests := []struct {
		filename   string
		wantBase   string
		wantSuffix string
	}{
		{"2025-01-01_00-28-40.jpg", "2025-01-01_00-28-40", ".jpg"},
		{"2025-01-01_00-28-40.CR3", "2025-01-01_00-28-40", ".CR3"},
		{"2025-01-01_00-28-40_001.jpg", "2025-01-01_00-28-40", "_001.jpg"},
		{"PXL_20251210_200246684.RAW-01.COVER.jpg", "PXL_20251210_200246684", ".RAW-01.COVER.jpg"},
		{"PXL_20251210_200246684.RAW-02.ORIGINAL.dng", "PXL_20251210_200246684", ".RAW-02.ORIGINAL.dng"},
		{"PXL_20251210_200246684.raw-01.cover.jpg", "PXL_20251210_200246684", ".raw-01.cover.jpg"},
		{"photo.jpg.xmp", "photo", ".jpg.xmp"},
		{"photo_001.jpg", "photo", "_001.jpg"},
		{"photo_001.jpg.xmp", "photo", "_001.jpg.xmp"},
		{"IMG_1234.CR2", "IMG_1234", ".CR2"},
		{"IMG_1234.jpg", "IMG_1234", ".jpg"},
		// Only a three-digit trailing group is a derivative marker.
		{"IMG_12.jpg", "IMG_12", ".jpg"},
		{"photo_1234.jpg", "photo_1234", ".jpg"},
		// Zero-extension inputs.
		{"README", "README", ""},
		{"photo_002", "photo", "_002"},
		// Casing of the suffix is preserved.
		{"Photo.JPG", "Photo", ".JPG"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			base, suffix := ExtractBaseName(tt.filename)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantSuffix, suffix)
		})
	}
}

// base + suffix must reconstruct the filename exactly, for any input.
func TestExtractBaseNameRoundTrip(t *testing.T) {
	filenames := []string{
		"2025-01-01_00-28-40.jpg",
		"PXL_20251210_200246684.RAW-01.COVER.jpg",
		"photo.jpg.xmp",
		"photo_001.jpg",
		"a.b.c.d.e",
		"no_extension",
		"_001",
		"UPPER.CASE.TIFF",
		"trailing.",
		"with space 2025-01-01.png",
	}

	for _, filename := range filenames {
		base, suffix := ExtractBaseName(filename)
		assert.Equal(t, filename, base+suffix, "round trip failed for %q", filename)
	}
}

func TestIsSidecarFilename(t *testing.T) {
	assert.True(t, IsSidecarFilename("photo.xmp"))
	assert.True(t, IsSidecarFilename("photo.jpg.xmp"))
	assert.True(t, IsSidecarFilename("clip.THM"))
	assert.False(t, IsSidecarFilename("photo.jpg"))
	assert.False(t, IsSidecarFilename("photo.cr2"))
}
