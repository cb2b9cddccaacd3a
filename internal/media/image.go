package media

import (
	"strings"
	"time"
)

// Image represents a moment in time: a single capture event.
//
// An Image is identified by its base name and subdirectory. Several files
// may back the same Image (RAW, JPEG preview, XMP sidecar, exports), each
// owned exclusively by this Image.
type Image struct {
	BaseName     string
	Subdirectory string // relative to the library root
	Files        []*MediaFile

	// Capture metadata, populated by the metadata collaborator.
	CapturedAt   *time.Time
	CameraMake   string
	CameraModel  string
	Lens         string
	GPSLatitude  *float64
	GPSLongitude *float64
	Title        string
	Description  string
	Rating       *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewImage creates an empty Image for the given identity key.
func NewImage(baseName, subdirectory string) *Image {
	now := time.Now()
	return &Image{
		BaseName:     baseName,
		Subdirectory: subdirectory,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AddFile attaches a MediaFile to this Image.
func (i *Image) AddFile(f *MediaFile) {
	i.Files = append(i.Files, f)
	i.UpdatedAt = time.Now()
}

// FileCount returns the number of files backing this Image.
func (i *Image) FileCount() int {
	return len(i.Files)
}

// Suffixes returns the suffix of every file, in attachment order.
func (i *Image) Suffixes() []string {
	suffixes := make([]string, len(i.Files))
	for n, f := range i.Files {
		suffixes[n] = f.Suffix
	}
	return suffixes
}

// TotalSizeBytes returns the combined size of all files.
func (i *Image) TotalSizeBytes() int64 {
	var total int64
	for _, f := range i.Files {
		total += f.SizeBytes
	}
	return total
}

// EarliestFileTime returns the earliest file creation time across all
// files, or nil if the Image has no files.
func (i *Image) EarliestFileTime() *time.Time {
	if len(i.Files) == 0 {
		return nil
	}
	earliest := i.Files[0].CreatedAt
	for _, f := range i.Files[1:] {
		if f.CreatedAt.Before(earliest) {
			earliest = f.CreatedAt
		}
	}
	return &earliest
}

// LatestFileTime returns the latest file modification time across all
// files, or nil if the Image has no files.
func (i *Image) LatestFileTime() *time.Time {
	if len(i.Files) == 0 {
		return nil
	}
	latest := i.Files[0].ModifiedAt
	for _, f := range i.Files[1:] {
		if f.ModifiedAt.After(latest) {
			latest = f.ModifiedAt
		}
	}
	return &latest
}

// OriginalFile returns the file holding RoleOriginal, falling back to the
// first RAW file and then the first file. Nil for an empty Image.
func (i *Image) OriginalFile() *MediaFile {
	for _, f := range i.Files {
		if f.Role == RoleOriginal {
			return f
		}
	}
	for _, f := range i.Files {
		if f.Format.IsRaw() {
			return f
		}
	}
	if len(i.Files) > 0 {
		return i.Files[0]
	}
	return nil
}

// HasRaw reports whether any file is in a RAW format.
func (i *Image) HasRaw() bool {
	for _, f := range i.Files {
		if f.Format.IsRaw() {
			return true
		}
	}
	return false
}

// HasJPEG reports whether any file is a JPEG.
func (i *Image) HasJPEG() bool {
	for _, f := range i.Files {
		if f.Format == FormatJPEG {
			return true
		}
	}
	return false
}

// HasSidecar reports whether any file holds RoleSidecar.
func (i *Image) HasSidecar() bool {
	for _, f := range i.Files {
		if f.Role == RoleSidecar {
			return true
		}
	}
	return false
}

func (i *Image) hasRole(role FileRole) bool {
	for _, f := range i.Files {
		if f.Role == role {
			return true
		}
	}
	return false
}

// RefineRoles repairs role assignments using whole-group context. It runs
// once, after every file has been attached.
//
// When a RAW file is present, a JPEG still holding RoleOriginal is demoted:
// if no sibling holds RoleCover yet, the JPEG becomes a cover when its own
// suffix carries ".COVER." and an export otherwise; if a cover already
// exists it becomes an export unconditionally. The existing-cover check
// deliberately runs before the suffix check and is re-evaluated per file.
//
// Without a RAW file, a lone JPEG whose role is not original, cover, or
// derivative is promoted to RoleOriginal.
//
// After refinement at most one file holds RoleOriginal.
func (i *Image) RefineRoles() {
	if i.HasRaw() {
		for _, f := range i.Files {
			if f.Format != FormatJPEG || f.Role != RoleOriginal {
				continue
			}
			if !i.hasRole(RoleCover) {
				if strings.Contains(strings.ToUpper(f.Suffix), ".COVER.") {
					f.Role = RoleCover
				} else {
					f.Role = RoleExport
				}
			} else {
				f.Role = RoleExport
			}
		}
	} else {
		var jpegs []*MediaFile
		for _, f := range i.Files {
			if f.Format == FormatJPEG {
				jpegs = append(jpegs, f)
			}
		}
		if len(jpegs) == 1 {
			switch jpegs[0].Role {
			case RoleOriginal, RoleCover, RoleDerivative:
				// already settled
			default:
				jpegs[0].Role = RoleOriginal
			}
		}
	}

	i.UpdatedAt = time.Now()
}

// CanonicalName returns the deterministic name derived from the capture
// time, formatted 2006-01-02_15-04-05. The parameter overrides the Image's
// own capture time; without either, the current base name is returned.
func (i *Image) CanonicalName(capturedAt *time.Time) string {
	t := capturedAt
	if t == nil {
		t = i.CapturedAt
	}
	if t == nil {
		return i.BaseName
	}
	return t.Format("2006-01-02_15-04-05")
}

// CanonicalSubdirectory returns the deterministic subdirectory derived from
// the capture time, formatted 2006/01/02. Without a capture time the
// current subdirectory is returned.
func (i *Image) CanonicalSubdirectory(capturedAt *time.Time) string {
	t := capturedAt
	if t == nil {
		t = i.CapturedAt
	}
	if t == nil {
		return i.Subdirectory
	}
	return t.Format("2006/01/02")
}
