// Package gps reads GPS coordinates out of uploaded image metadata. Phone
// originals carry an EXIF GPS block; anything that went through a
// messenger or a photo service usually does not, so "no coordinates" is
// an everyday outcome here, not a failure.
package gps

// Coordinates is a decimal-degree latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Outcome classifies what a strategy did with an image.
type Outcome int

const (
	// Found means the strategy produced coordinates.
	Found Outcome = iota
	// NotFound means the image carries no usable GPS metadata.
	NotFound
	// Malformed means the image or its metadata block could not be
	// decoded. The chain continues past it like NotFound, but it is
	// logged separately.
	Malformed
)

// Result is the typed outcome of running one strategy on one image.
type Result struct {
	Outcome     Outcome
	Coordinates Coordinates
	Err         error
}

func found(lat, lng float64) Result {
	return Result{Outcome: Found, Coordinates: Coordinates{Latitude: lat, Longitude: lng}}
}

func notFound() Result {
	return Result{Outcome: NotFound}
}

func malformed(err error) Result {
	return Result{Outcome: Malformed, Err: err}
}

// Strategy is a single way of reading GPS metadata out of an image file.
type Strategy interface {
	Name() string
	Extract(path string) Result
}
