package storage

import (
	"bytes"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// ExtractTakenAt reads the EXIF capture timestamp from an image. Images
// without usable EXIF data yield nil.
func ExtractTakenAt(data []byte) *time.Time {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	takenAt, err := meta.DateTime()
	if err != nil {
		return nil
	}
	return &takenAt
}
