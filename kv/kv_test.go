package kv

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"
	"github.com/matryer/is"
	"github.com/spf13/afero"
)

func newMapCollection(fs afero.Fs) *Collection[map[string]string] {
	return NewCollection(fs, "test.json",
		func() map[string]string { return map[string]string{} })
}

func TestCollectionRoundTrip(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	store := newMapCollection(fs)
	content := map[string]string{"foo": "bar", "bar": "baz"}

	err := store.Save(content)
	is.NoErr(err)

	if diff := deep.Equal(store.Load(), content); diff != nil {
		t.Fatal(diff)
	}
}

func TestCollectionRoundTripSequence(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	store := NewCollection(fs, "seq.json", func() []string { return []string{} })
	content := []string{"newest", "older", "oldest"}

	err := store.Save(content)
	is.NoErr(err)
	is.Equal(store.Load(), content) // order survives the round trip
}

func TestCollectionLoadMissing(t *testing.T) {
	is := is.New(t)

	store := newMapCollection(afero.NewMemMapFs())
	content := store.Load()

	is.True(content != nil)
	is.Equal(len(content), 0)
}

func TestCollectionLoadCorrupt(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	err := afero.WriteFile(fs, "test.json", []byte(`{"foo": `), 0644)
	is.NoErr(err)

	store := newMapCollection(fs)
	content := store.Load()

	is.True(content != nil)
	is.Equal(len(content), 0)
}

func TestCollectionLoadEmptyFile(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	err := afero.WriteFile(fs, "test.json", []byte(""), 0644)
	is.NoErr(err)

	store := newMapCollection(fs)
	is.Equal(len(store.Load()), 0)
}

func TestCollectionLoadNull(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	err := afero.WriteFile(fs, "test.json", []byte("null"), 0644)
	is.NoErr(err)

	store := newMapCollection(fs)
	content := store.Load()

	is.True(content != nil) // a stored null must not leak a nil map
}

func TestCollectionLoadWrongShape(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	// A sequence where a mapping is declared is corruption, not data.
	err := afero.WriteFile(fs, "test.json", []byte(`["foo", "bar"]`), 0644)
	is.NoErr(err)

	store := newMapCollection(fs)
	is.Equal(len(store.Load()), 0)
}

func TestCollectionEnsure(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	store := newMapCollection(fs)
	err := store.Ensure()
	is.NoErr(err)

	raw, err := afero.ReadFile(fs, "test.json")
	is.NoErr(err)

	var decoded map[string]string
	err = json.Unmarshal(raw, &decoded)
	is.NoErr(err)
	is.Equal(len(decoded), 0)

	// Ensure must not clobber existing content.
	err = store.Save(map[string]string{"foo": "bar"})
	is.NoErr(err)
	err = store.Ensure()
	is.NoErr(err)
	is.Equal(store.Load()["foo"], "bar")
}
