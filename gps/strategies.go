package gps

import (
	"fmt"
	"os"

	goexif "github.com/rwcarlsen/goexif/exif"
	"gopkg.in/gographics/imagick.v2/imagick"
)

// exifLatLong decodes the EXIF block and asks for the composed
// latitude/longitude. The happy path for untouched phone originals.
type exifLatLong struct{}

func (exifLatLong) Name() string { return "exif-latlong" }

func (exifLatLong) Extract(path string) Result {
	file, err := os.Open(path)
	if err != nil {
		return malformed(err)
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return malformed(err)
	}
	lat, lng, err := x.LatLong()
	if err != nil {
		return notFound()
	}
	return found(lat, lng)
}

// exifRawTags reads the four GPS tags directly and converts the DMS
// rationals itself. Catches files where the composed read trips over
// partially written tags.
type exifRawTags struct{}

func (exifRawTags) Name() string { return "exif-raw-tags" }

func (exifRawTags) Extract(path string) Result {
	file, err := os.Open(path)
	if err != nil {
		return malformed(err)
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return malformed(err)
	}
	lat, ok, err := rawCoordinate(x, goexif.GPSLatitude, goexif.GPSLatitudeRef)
	if err != nil {
		return malformed(err)
	}
	if !ok {
		return notFound()
	}
	lng, ok, err := rawCoordinate(x, goexif.GPSLongitude, goexif.GPSLongitudeRef)
	if err != nil {
		return malformed(err)
	}
	if !ok {
		return notFound()
	}
	return found(lat, lng)
}

// rawCoordinate reads one DMS coordinate tag and its hemisphere reference.
// ok is false when either tag is simply absent.
func rawCoordinate(x *goexif.Exif, name, refName goexif.FieldName) (float64, bool, error) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false, nil
	}
	refTag, err := x.Get(refName)
	if err != nil {
		return 0, false, nil
	}
	if tag.Count < 3 {
		return 0, false, fmt.Errorf("gps tag %s: want 3 rationals, have %d", name, tag.Count)
	}
	var dms [3]float64
	for i := range dms {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return 0, false, err
		}
		if den == 0 {
			return 0, false, fmt.Errorf("gps tag %s: zero denominator", name)
		}
		dms[i] = float64(num) / float64(den)
	}
	ref, err := refTag.StringVal()
	if err != nil {
		return 0, false, err
	}
	return DMSToDecimal(dms[0], dms[1], dms[2], ref), true, nil
}

// magickProps falls back to ImageMagick, which exposes EXIF fields as
// string image properties ("35/1, 30/1, 0/1"). Slowest of the three, but
// it survives containers goexif does not understand (HEIC among them).
type magickProps struct{}

func (magickProps) Name() string { return "magick-properties" }

func (magickProps) Extract(path string) Result {
	imagick.Initialize()
	defer imagick.Terminate()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(path); err != nil {
		return malformed(err)
	}

	latRaw := mw.GetImageProperty("exif:GPSLatitude")
	latRef := mw.GetImageProperty("exif:GPSLatitudeRef")
	lngRaw := mw.GetImageProperty("exif:GPSLongitude")
	lngRef := mw.GetImageProperty("exif:GPSLongitudeRef")
	if latRaw == "" || latRef == "" || lngRaw == "" || lngRef == "" {
		return notFound()
	}

	latDeg, latMin, latSec, err := parseDMSList(latRaw)
	if err != nil {
		return malformed(err)
	}
	lngDeg, lngMin, lngSec, err := parseDMSList(lngRaw)
	if err != nil {
		return malformed(err)
	}
	return found(
		DMSToDecimal(latDeg, latMin, latSec, latRef),
		DMSToDecimal(lngDeg, lngMin, lngSec, lngRef))
}
