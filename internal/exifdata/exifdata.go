// Package exifdata extracts capture metadata from image files.
//
// It is the metadata collaborator of the organizer: extraction failure is
// never fatal, callers must tolerate a total absence of metadata.
package exifdata

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/homemedia/organizer/internal/logger"
	"github.com/homemedia/organizer/internal/media"
)

// Data holds the capture metadata extracted from one file. Absent fields
// stay at their zero value; pointer fields stay nil.
type Data struct {
	CapturedAt   *time.Time
	CameraMake   string
	CameraModel  string
	Lens         string
	GPSLatitude  *float64
	GPSLongitude *float64
	Title        string
	Description  string
	Rating       *int
}

// Extract reads EXIF metadata from a single file.
func Extract(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("exif decode %s: %w", path, err)
	}

	data := &Data{
		CameraMake:  stringField(x, exif.Make),
		CameraModel: stringField(x, exif.Model),
		Lens:        stringField(x, exif.LensModel),
		Title:       stringField(x, exif.ImageDescription),
		Description: stringField(x, exif.UserComment),
	}

	if t, err := x.DateTime(); err == nil {
		data.CapturedAt = &t
	}

	if lat, long, err := x.LatLong(); err == nil {
		data.GPSLatitude = &lat
		data.GPSLongitude = &long
	}

	// Rating is a common vendor tag without a named goexif constant.
	if tag, err := x.Get(exif.FieldName("Rating")); err == nil {
		if v, err := tag.Int(0); err == nil {
			data.Rating = &v
		}
	}

	return data, nil
}

func stringField(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return s
}

// Populator fills Image capture metadata from the Image's representative
// file. It satisfies the organizer's MetadataPopulator interface.
type Populator struct{}

// Populate extracts metadata from the Image's original file and copies it
// onto the Image. Images without a usable file, or whose files carry no
// EXIF data, are left untouched.
func (Populator) Populate(img *media.Image) {
	target := img.OriginalFile()
	if target == nil {
		return
	}

	data, err := Extract(target.Path)
	if err != nil {
		logger.Debug("no exif metadata", "path", target.Path, "error", err)
		return
	}

	img.CapturedAt = data.CapturedAt
	img.CameraMake = data.CameraMake
	img.CameraModel = data.CameraModel
	img.Lens = data.Lens
	img.GPSLatitude = data.GPSLatitude
	img.GPSLongitude = data.GPSLongitude
	img.Title = data.Title
	img.Description = data.Description
	img.Rating = data.Rating
	img.UpdatedAt = time.Now()
}
