package store

import (
	"os"
	"path"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DataStore is the on-disk home of the application: the collection files
// live at its root and uploaded images under UploadsDir.
//
// All file operation functions accept paths relative to the data
// directory.
type DataStore struct {
	// Path is the relative path to the data directory.
	Path string
	// UploadsDir is where the upload handler stores image files, relative
	// to Path.
	UploadsDir string

	// Fs is the initialized filesystem.
	Fs afero.Fs
}

// Init initializes the store. Init MUST be called before performing any
// operations.
func (s *DataStore) Init() error {
	absPath, err := filepath.Abs(s.Path)
	if err != nil {
		return err
	}
	s.Path = absPath
	if s.UploadsDir == "" {
		s.UploadsDir = "static/uploads"
	}

	base := afero.NewOsFs()
	if err = base.MkdirAll(absPath, 0755); err != nil {
		return err
	}
	s.Fs = afero.NewBasePathFs(base, absPath)
	if err = s.Fs.MkdirAll(s.UploadsDir, 0755); err != nil {
		return err
	}

	log.Infof("data store initialized successfully at %s", absPath)
	return nil
}

// UploadPath resolves a stored image filename to its path on Fs.
func (s DataStore) UploadPath(name string) string {
	return path.Join(s.UploadsDir, name)
}

// RemoveUpload deletes a stored image. A file that is already gone is not
// an error; cascade deletes have to be repeatable.
func (s DataStore) RemoveUpload(name string) error {
	err := s.Fs.Remove(s.UploadPath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
