// Package capturedate extracts structured capture dates from video filenames
// and EXIF date tags.
//
// Extraction is shape-only: a value like month "13" passes through untouched
// because the sources (camera firmware filename conventions and EXIF
// DateTimeOriginal) are trusted. Callers that get ok=false must skip the file
// rather than invent a date.
package capturedate

import "regexp"

// Date is a capture date split into zero-padded string components, ready to
// become nested library directories.
type Date struct {
	Year  string // 4 digits
	Month string // 2 digits
	Day   string // 2 digits
}

var (
	// Camera video convention: VID_20230401_001.mp4
	videoNamePattern = regexp.MustCompile(`^VID_(\d{4})(\d{2})(\d{2})_\d+\.[A-Za-z0-9]+$`)
	// EXIF DateTimeOriginal string form: 2022:12:25 10:00:00
	exifTagPattern = regexp.MustCompile(`^(\d{4}):(\d{2}):(\d{2})\s(\d{2}):(\d{2}):(\d{2})$`)
)

// FromVideoName extracts the date encoded in a VID_YYYYMMDD_NNN.ext
// filename. ok is false when the name does not match the convention.
func FromVideoName(filename string) (Date, bool) {
	match := videoNamePattern.FindStringSubmatch(filename)
	if match == nil {
		return Date{}, false
	}
	return Date{Year: match[1], Month: match[2], Day: match[3]}, true
}

// FromExifTag extracts the date from an EXIF DateTimeOriginal value of the
// exact form "YYYY:MM:DD HH:MM:SS". ok is false for any other shape.
func FromExifTag(tag string) (Date, bool) {
	match := exifTagPattern.FindStringSubmatch(tag)
	if match == nil {
		return Date{}, false
	}
	return Date{Year: match[1], Month: match[2], Day: match[3]}, true
}
