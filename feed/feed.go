// Package feed owns every operation that touches the collections:
// accounts and their preferences, posts with their derived regions, and
// the dependent comment/like/coordinate records.
package feed

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/gps"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/store"
)

var (
	// ErrNotFound is used when a referenced account, post or comment does
	// not exist. An annotation must be added before returning, naming the
	// missing record.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is used when an account mutates a record owned
	// by another account.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalid is used for values outside the closed enumerations and
	// otherwise malformed input.
	ErrInvalid = errors.New("invalid")
	// ErrConflict is used when a username is already taken.
	ErrConflict = errors.New("conflict")
)

// Service implements the feed operations on top of Persistence. Every
// mutation runs under the persistence write lock, so a multi-collection
// sequence is one critical section within the process. Storage corruption
// and extraction failure never surface as errors here; they degrade to
// empty collections and "no coordinates".
type Service struct {
	Persistence *store.Persistence
	Store       *store.DataStore
	Extractor   *gps.Extractor

	validate *validator.Validate
}

// NewService returns a new instance of Service.
func NewService(persistence *store.Persistence, dataStore *store.DataStore,
	extractor *gps.Extractor) *Service {
	return &Service{
		Persistence: persistence,
		Store:       dataStore,
		Extractor:   extractor,
		validate:    post.Validator(),
	}
}
