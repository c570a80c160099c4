package kv

import (
	"encoding/json"
	"os"
	"reflect"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Collection is a generic abstraction of a JSON collection persisted as a
// whole in a single file. The empty shape of the collection is declared up
// front so loads can always hand back something correctly typed.
type Collection[T any] struct {
	fs    afero.Fs
	path  string
	empty func() T
}

// NewCollection returns a collection backed by path on fs. empty must
// return a freshly allocated value of the collection's declared shape
// (a non-nil map or slice).
func NewCollection[T any](fs afero.Fs, path string, empty func() T) *Collection[T] {
	return &Collection[T]{fs: fs, path: path, empty: empty}
}

// Path is the collection's file path relative to its filesystem.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the whole collection. A missing, empty or corrupt file loads
// as the declared empty shape; corruption never reaches the caller, it is
// only logged so an operator can notice.
func (c *Collection[T]) Load() T {
	raw, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("collection %s: unreadable, substituting empty shape: %s", c.path, err)
		}
		return c.empty()
	}
	content := c.empty()
	if err = json.Unmarshal(raw, &content); err != nil {
		log.Warnf("collection %s: corrupt, substituting empty shape: %s", c.path, err)
		return c.empty()
	}
	// A literal "null" decodes into a nil map or slice, which callers must
	// never see.
	if value := reflect.ValueOf(content); (value.Kind() == reflect.Map ||
		value.Kind() == reflect.Slice) && value.IsNil() {
		return c.empty()
	}
	return content
}

// Save replaces the whole collection on disk. There is no partial-record
// merge; callers own the read-modify-write sequencing.
func (c *Collection[T]) Save(content T) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return afero.WriteFile(c.fs, c.path, raw, 0644)
}

// Ensure writes the empty shape if the file does not exist yet, so a
// fresh deployment starts from correctly shaped collections.
func (c *Collection[T]) Ensure() error {
	exists, err := afero.Exists(c.fs, c.path)
	if err != nil || exists {
		return err
	}
	return c.Save(c.empty())
}
