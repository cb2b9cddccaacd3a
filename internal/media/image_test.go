package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(filename, suffix string, format FileFormat) *MediaFile {
	return &MediaFile{
		Filename:  filename,
		Suffix:    suffix,
		Format:    format,
		Role:      InferRole(suffix, format),
		SizeBytes: 100,
	}
}

func countRole(img *Image, role FileRole) int {
	n := 0
	for _, f := range img.Files {
		if f.Role == role {
			n++
		}
	}
	return n
}

func TestRefineRolesRawWithJPEG(t *testing.T) {
	img := NewImage("IMG_1234", "2025/01/01")
	raw := testFile("IMG_1234.CR2", ".CR2", FormatCR2)
	jpeg := testFile("IMG_1234.jpg", ".jpg", FormatJPEG)
	img.AddFile(raw)
	img.AddFile(jpeg)

	require.Equal(t, RoleOriginal, raw.Role)
	require.Equal(t, RoleOriginal, jpeg.Role, "bare .jpg starts as original")

	img.RefineRoles()

	assert.Equal(t, RoleOriginal, raw.Role)
	assert.Equal(t, RoleExport, jpeg.Role, "jpeg demoted when a raw sibling exists")
	assert.LessOrEqual(t, countRole(img, RoleOriginal), 1)
}

func TestRefineRolesPixelMultiCapture(t *testing.T) {
	img := NewImage("PXL_20251210_200246684", ".")
	plain := testFile("PXL_20251210_200246684.jpg", ".jpg", FormatJPEG)
	cover := testFile("PXL_20251210_200246684.RAW-01.COVER.jpg", ".RAW-01.COVER.jpg", FormatJPEG)
	original := testFile("PXL_20251210_200246684.RAW-02.ORIGINAL.dng", ".RAW-02.ORIGINAL.dng", FormatDNG)
	img.AddFile(plain)
	img.AddFile(cover)
	img.AddFile(original)

	img.RefineRoles()

	assert.Equal(t, RoleOriginal, original.Role)
	assert.Equal(t, RoleCover, cover.Role)
	assert.Equal(t, RoleExport, plain.Role)
	assert.Equal(t, 1, countRole(img, RoleOriginal))
}

// A cover-suffixed JPEG holding RoleOriginal becomes a cover when no
// sibling claimed the role first.
func TestRefineRolesCoverSuffixPromotion(t *testing.T) {
	img := NewImage("PXL_1", ".")
	raw := testFile("PXL_1.dng", ".dng", FormatDNG)
	jpeg := testFile("PXL_1.COVER.jpg", ".COVER.jpg", FormatJPEG)
	// Force the pre-refinement state under test: an original-claiming
	// JPEG whose suffix carries the cover marker.
	jpeg.Role = RoleOriginal
	img.AddFile(raw)
	img.AddFile(jpeg)

	img.RefineRoles()

	assert.Equal(t, RoleCover, jpeg.Role)
}

func TestRefineRolesStandaloneJPEGPromoted(t *testing.T) {
	img := NewImage("photo", ".")
	export := testFile("photo-edit.jpg", "-edit.jpg", FormatJPEG)
	img.AddFile(export)

	require.Equal(t, RoleExport, export.Role)

	img.RefineRoles()

	assert.Equal(t, RoleOriginal, export.Role, "lone jpeg without raw becomes the original")
}

func TestRefineRolesLoneDerivativeNotPromoted(t *testing.T) {
	img := NewImage("photo", ".")
	derivative := testFile("photo_001.jpg", "_001.jpg", FormatJPEG)
	img.AddFile(derivative)

	img.RefineRoles()

	assert.Equal(t, RoleDerivative, derivative.Role)
}

func TestRefineRolesMultipleJPEGsUntouched(t *testing.T) {
	img := NewImage("photo", ".")
	a := testFile("photo-a.jpg", "-a.jpg", FormatJPEG)
	b := testFile("photo-b.jpg", "-b.jpg", FormatJPEG)
	img.AddFile(a)
	img.AddFile(b)

	img.RefineRoles()

	assert.Equal(t, RoleExport, a.Role)
	assert.Equal(t, RoleExport, b.Role)
}

func TestRefineRolesAtMostOneOriginal(t *testing.T) {
	layouts := [][]*MediaFile{
		{
			testFile("a.CR2", ".CR2", FormatCR2),
			testFile("a.jpg", ".jpg", FormatJPEG),
			testFile("a.jpg.xmp", ".jpg.xmp", FormatXMP),
		},
		{
			testFile("b.jpg", ".jpg", FormatJPEG),
		},
		{
			testFile("c.dng", ".dng", FormatDNG),
			testFile("c.RAW-01.COVER.jpg", ".RAW-01.COVER.jpg", FormatJPEG),
		},
	}

	for _, files := range layouts {
		img := NewImage("x", ".")
		for _, f := range files {
			img.AddFile(f)
		}
		img.RefineRoles()
		assert.LessOrEqual(t, countRole(img, RoleOriginal), 1)
	}
}

func TestOriginalFileFallbacks(t *testing.T) {
	empty := NewImage("x", ".")
	assert.Nil(t, empty.OriginalFile())

	img := NewImage("x", ".")
	export := testFile("x-e.jpg", "-e.jpg", FormatJPEG)
	raw := testFile("x.nef", ".nef", FormatNEF)
	raw.Role = RoleUnknown // no explicit original
	img.AddFile(export)
	img.AddFile(raw)
	assert.Same(t, raw, img.OriginalFile(), "falls back to first raw file")

	jpegOnly := NewImage("y", ".")
	e := testFile("y-e.jpg", "-e.jpg", FormatJPEG)
	jpegOnly.AddFile(e)
	assert.Same(t, e, jpegOnly.OriginalFile(), "falls back to first file")
}

func TestCanonicalName(t *testing.T) {
	img := NewImage("PXL_20251210_200246684", "incoming")

	// No capture time: base name and subdirectory pass through.
	assert.Equal(t, "PXL_20251210_200246684", img.CanonicalName(nil))
	assert.Equal(t, "incoming", img.CanonicalSubdirectory(nil))

	captured := time.Date(2025, 12, 10, 14, 30, 45, 0, time.UTC)
	img.CapturedAt = &captured
	assert.Equal(t, "2025-12-10_14-30-45", img.CanonicalName(nil))
	assert.Equal(t, "2025/12/10", img.CanonicalSubdirectory(nil))

	// Parameter overrides the Image's own field.
	override := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02_03-04-05", img.CanonicalName(&override))
	assert.Equal(t, "2024/01/02", img.CanonicalSubdirectory(&override))
}

// Canonical names are a pure function of the capture time.
func TestCanonicalNameDeterministic(t *testing.T) {
	captured := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	a := NewImage("IMG_0001", "x")
	b := NewImage("DSC_9999", "y")
	a.CapturedAt = &captured
	b.CapturedAt = &captured
	assert.Equal(t, a.CanonicalName(nil), b.CanonicalName(nil))
}

func TestImageAggregates(t *testing.T) {
	img := NewImage("x", ".")
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	a := testFile("x.CR2", ".CR2", FormatCR2)
	a.CreatedAt, a.ModifiedAt = late, late
	b := testFile("x.jpg", ".jpg", FormatJPEG)
	b.CreatedAt, b.ModifiedAt = early, early
	img.AddFile(a)
	img.AddFile(b)

	assert.Equal(t, 2, img.FileCount())
	assert.Equal(t, []string{".CR2", ".jpg"}, img.Suffixes())
	assert.Equal(t, int64(200), img.TotalSizeBytes())
	assert.Equal(t, early, *img.EarliestFileTime())
	assert.Equal(t, late, *img.LatestFileTime())
	assert.True(t, img.HasRaw())
	assert.True(t, img.HasJPEG())
	assert.False(t, img.HasSidecar())
}
