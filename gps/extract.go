package gps

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Extractor runs a fixed-priority chain of metadata strategies over
// uploaded images.
type Extractor struct {
	// Fs is the filesystem the stored uploads live on.
	Fs afero.Fs
	// Strategies are tried in order for each image; the chain
	// short-circuits on the first Found.
	Strategies []Strategy
}

// NewExtractor returns an extractor with the default strategy chain.
func NewExtractor(fs afero.Fs) *Extractor {
	return &Extractor{
		Fs:         fs,
		Strategies: []Strategy{exifLatLong{}, exifRawTags{}, magickProps{}},
	}
}

// ExtractCoordinates tries every image in input order and returns the
// coordinates of the first image any strategy succeeds on; later images
// are not examined. No image yielding a result is a normal outcome, not
// an error.
func (e *Extractor) ExtractCoordinates(paths []string) (Coordinates, bool) {
	for _, path := range paths {
		if coords, ok := e.extractOne(path); ok {
			return coords, true
		}
	}
	return Coordinates{}, false
}

func (e *Extractor) extractOne(name string) (Coordinates, bool) {
	tmp, err := e.tempCopy(name)
	if err != nil {
		log.Debugf("gps: %s: %s", name, err)
		return Coordinates{}, false
	}
	defer os.Remove(tmp)

	for _, strategy := range e.Strategies {
		result := strategy.Extract(tmp)
		switch result.Outcome {
		case Found:
			log.Debugf("gps: %s: %s found %+v", name, strategy.Name(), result.Coordinates)
			return result.Coordinates, true
		case Malformed:
			log.Debugf("gps: %s: %s: %s", name, strategy.Name(), result.Err)
		}
	}
	return Coordinates{}, false
}

// tempCopy copies a stored image to a throwaway file the decoders can
// open directly. The caller removes the returned path; extractOne defers
// the removal so every exit path, panics included, cleans up.
func (e *Extractor) tempCopy(name string) (string, error) {
	src, err := e.Fs.Open(name)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "gps-*"+filepath.Ext(name))
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
