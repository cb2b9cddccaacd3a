package media

import (
	"regexp"
	"strings"
)

// FileRole is the role a file plays in representing an Image.
//
// An Image (one capture moment) may be backed by several files with
// different roles:
//   - RoleOriginal: the primary capture (RAW, DNG)
//   - RoleCover: preview/thumbnail JPEG (e.g. Pixel COVER files)
//   - RoleSidecar: metadata files (XMP, THM)
//   - RoleExport: processed outputs (JPEGs exported from editing software)
//   - RoleDerivative: crops, edits, versions (e.g. _001)
//   - RoleUnknown: role not yet determined
type FileRole int

const (
	RoleUnknown FileRole = iota
	RoleOriginal
	RoleCover
	RoleSidecar
	RoleExport
	RoleDerivative
)

func (r FileRole) String() string {
	switch r {
	case RoleOriginal:
		return "original"
	case RoleCover:
		return "cover"
	case RoleSidecar:
		return "sidecar"
	case RoleExport:
		return "export"
	case RoleDerivative:
		return "derivative"
	default:
		return "unknown"
	}
}

// derivativeSeqPattern matches numbered derivative markers _001 through _099
// anywhere in a suffix.
var derivativeSeqPattern = regexp.MustCompile(`_0(?:0[1-9]|[1-9][0-9])`)

// InferRole assigns the initial role for a single file from its suffix and
// format. The whole-group context is not available yet; Image.RefineRoles
// repairs assignments once every sibling file is known.
//
// Decision order, first match wins:
//  1. sidecar formats are always RoleSidecar
//  2. ".COVER." in the suffix (Pixel convention)
//  3. ".ORIGINAL." in the suffix (Pixel convention)
//  4. numbered derivative marker (_001 .. _099)
//  5. RAW formats are originals
//  6. a bare ".jpg"/".jpeg" suffix is an original, any decorated JPEG
//     is an export
func InferRole(suffix string, format FileFormat) FileRole {
	suffixUpper := strings.ToUpper(suffix)

	if format.IsSidecar() {
		return RoleSidecar
	}

	if strings.Contains(suffixUpper, ".COVER.") {
		return RoleCover
	}
	if strings.Contains(suffixUpper, ".ORIGINAL.") {
		return RoleOriginal
	}

	if derivativeSeqPattern.MatchString(suffix) {
		return RoleDerivative
	}

	if format.IsRaw() {
		return RoleOriginal
	}

	if format == FormatJPEG {
		switch strings.ToLower(suffix) {
		case ".jpg", ".jpeg":
			return RoleOriginal
		default:
			return RoleExport
		}
	}

	return RoleUnknown
}
