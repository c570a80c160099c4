package gps

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/afero"
)

// fileContents reads coordinates the test wrote as "lat,lng" into the
// image file itself, standing in for a real metadata decoder.
type fileContents struct {
	calls *[]string
}

func (s fileContents) Name() string { return "file-contents" }

func (s fileContents) Extract(path string) Result {
	if s.calls != nil {
		*s.calls = append(*s.calls, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return malformed(err)
	}
	content := strings.TrimSpace(string(raw))
	if content == "" {
		return notFound()
	}
	var lat, lng float64
	if _, err := fmt.Sscanf(content, "%f,%f", &lat, &lng); err != nil {
		return malformed(err)
	}
	return found(lat, lng)
}

// never fails the test if it is ever consulted.
type never struct {
	t *testing.T
}

func (s never) Name() string { return "never" }

func (s never) Extract(path string) Result {
	s.t.Fatalf("strategy consulted after an earlier Found: %s", path)
	return notFound()
}

func newTestExtractor(t *testing.T, strategies ...Strategy) (*Extractor, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return &Extractor{Fs: fs, Strategies: strategies}, fs
}

func TestExtractCoordinatesFirstImageWins(t *testing.T) {
	is := is.New(t)
	e, fs := newTestExtractor(t, fileContents{})

	// The first image carries nothing; the second one resolves.
	is.NoErr(afero.WriteFile(fs, "a.jpg", []byte(""), 0644))
	is.NoErr(afero.WriteFile(fs, "b.jpg", []byte("35,135"), 0644))
	is.NoErr(afero.WriteFile(fs, "c.jpg", []byte("1,1"), 0644))

	coords, ok := e.ExtractCoordinates([]string{"a.jpg", "b.jpg", "c.jpg"})
	is.True(ok)
	is.Equal(coords, Coordinates{Latitude: 35, Longitude: 135})
}

func TestExtractCoordinatesShortCircuit(t *testing.T) {
	is := is.New(t)
	e, fs := newTestExtractor(t)
	e.Strategies = []Strategy{fileContents{}, never{t}}

	is.NoErr(afero.WriteFile(fs, "a.jpg", []byte("26.2,127.7"), 0644))

	coords, ok := e.ExtractCoordinates([]string{"a.jpg"})
	is.True(ok)
	is.Equal(coords.Latitude, 26.2)
}

func TestExtractCoordinatesFallsThroughStrategies(t *testing.T) {
	is := is.New(t)

	e, fs := newTestExtractor(t)
	e.Strategies = []Strategy{
		stubResult{notFound()},
		stubResult{malformed(errors.New("truncated"))},
		fileContents{},
	}

	is.NoErr(afero.WriteFile(fs, "a.jpg", []byte("43,141"), 0644))

	coords, ok := e.ExtractCoordinates([]string{"a.jpg"})
	is.True(ok)
	is.Equal(coords, Coordinates{Latitude: 43, Longitude: 141})
}

func TestExtractCoordinatesNothingFound(t *testing.T) {
	is := is.New(t)
	e, fs := newTestExtractor(t, fileContents{})

	is.NoErr(afero.WriteFile(fs, "a.jpg", []byte(""), 0644))
	is.NoErr(afero.WriteFile(fs, "b.jpg", []byte("not coordinates"), 0644))

	_, ok := e.ExtractCoordinates([]string{"a.jpg", "b.jpg", "missing.jpg"})
	is.True(!ok)
}

func TestExtractCoordinatesRemovesTempCopy(t *testing.T) {
	is := is.New(t)

	var calls []string
	e, fs := newTestExtractor(t, fileContents{calls: &calls})

	is.NoErr(afero.WriteFile(fs, "a.jpg", []byte("35,135"), 0644))

	_, ok := e.ExtractCoordinates([]string{"a.jpg"})
	is.True(ok)
	is.Equal(len(calls), 1)

	// The strategy saw a temp copy, not the stored name, and the copy is
	// gone once extraction returns.
	is.True(calls[0] != "a.jpg")
	_, err := os.Stat(calls[0])
	is.True(os.IsNotExist(err))
}

type stubResult struct {
	result Result
}

func (s stubResult) Name() string { return "stub" }

func (s stubResult) Extract(path string) Result { return s.result }
