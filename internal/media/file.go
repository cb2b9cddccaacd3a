package media

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	// Register decoders for DecodeConfig-based dimension probing.
	_ "image/jpeg"
	_ "image/png"
)

// MediaFile represents a single on-disk file belonging to an Image.
//
// The suffix is everything after the owning Image's base name, including
// every extension, so BaseName+Suffix always reconstructs the filename.
type MediaFile struct {
	Filename   string
	Suffix     string
	Extension  string // final extension only, lowercased, with dot
	Path       string
	SizeBytes  int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	Format     FileFormat
	Role       FileRole

	// Lazily populated metadata.
	Hash   string
	Width  int
	Height int
}

// NewMediaFile builds a MediaFile from a path and the base name of the
// Image it belongs to. The file must exist; stat data, format, and the
// initial role are filled in.
func NewMediaFile(path, baseName string) (*MediaFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	filename := filepath.Base(path)
	suffix := filename[len(baseName):]
	extension := strings.ToLower(filepath.Ext(filename))
	format := FormatFromExtension(extension)

	return &MediaFile{
		Filename:   filename,
		Suffix:     suffix,
		Extension:  extension,
		Path:       path,
		SizeBytes:  info.Size(),
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
		Format:     format,
		Role:       InferRole(suffix, format),
	}, nil
}

// PopulateHash computes the SHA-256 content hash and stores it on the file.
func (f *MediaFile) PopulateHash() error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, fh); err != nil {
		return fmt.Errorf("hash %s: %w", f.Path, err)
	}

	f.Hash = hex.EncodeToString(hasher.Sum(nil))
	return nil
}

// PopulateDimensions extracts pixel width and height.
//
// RAW and TIFF files carry their dimensions in EXIF tags; standard formats
// are probed with image.DecodeConfig (JPEG, PNG, and WebP are registered).
func (f *MediaFile) PopulateDimensions() error {
	if f.Format.IsRaw() {
		return f.populateDimensionsEXIF()
	}
	if f.Format.IsImage() {
		return f.populateDimensionsDecode()
	}
	return fmt.Errorf("no dimensions for %s files", f.Format)
}

func (f *MediaFile) populateDimensionsDecode() error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	cfg, _, err := image.DecodeConfig(fh)
	if err != nil {
		return fmt.Errorf("decode %s: %w", f.Path, err)
	}

	f.Width = cfg.Width
	f.Height = cfg.Height
	return nil
}

func (f *MediaFile) populateDimensionsEXIF() error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()

	x, err := exif.Decode(fh)
	if err != nil {
		return fmt.Errorf("exif decode %s: %w", f.Path, err)
	}

	width, err := exifInt(x, exif.PixelXDimension, exif.ImageWidth)
	if err != nil {
		return err
	}
	height, err := exifInt(x, exif.PixelYDimension, exif.ImageLength)
	if err != nil {
		return err
	}

	f.Width = width
	f.Height = height
	return nil
}

// exifInt returns the first of the given tags that is present and integral.
func exifInt(x *exif.Exif, names ...exif.FieldName) (int, error) {
	for _, name := range names {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		if v, err := tag.Int(0); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("no dimension tag found")
}
