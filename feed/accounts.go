package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// Register creates an account and seeds its preference records with the
// defaults: the default region and every tag.
func (s *Service) Register(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if err := s.validate.Var(username, "required,min=3,max=20"); err != nil {
		return "", fmt.Errorf("%w: username must be 3-20 characters", ErrInvalid)
	}
	if err := s.validate.Var(password, "required,min=6,max=100"); err != nil {
		return "", fmt.Errorf("%w: password must be 6-100 characters", ErrInvalid)
	}

	var id string
	err := s.Persistence.Update(func() error {
		accounts := s.Persistence.Accounts.Load()
		for _, account := range accounts {
			if account.Username == username {
				return fmt.Errorf("%w: username %q already exists", ErrConflict, username)
			}
		}

		id = uuid.NewString()
		accounts[id] = post.Account{
			Username:  username,
			Password:  password,
			CreatedAt: time.Now(),
		}
		if err := s.Persistence.Accounts.Save(accounts); err != nil {
			return err
		}

		regions := s.Persistence.Regions.Load()
		regions[id] = post.RegionPreference{Region: post.DefaultRegion}
		if err := s.Persistence.Regions.Save(regions); err != nil {
			return err
		}

		tags := s.Persistence.Tags.Load()
		tags[id] = slices.Clone(post.Tags)
		return s.Persistence.Tags.Save(tags)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Authenticate checks credentials for the session layer sitting in front
// of the API and returns the account id on success.
func (s *Service) Authenticate(username, password string) (string, error) {
	var id string
	err := s.Persistence.View(func() error {
		for accountID, account := range s.Persistence.Accounts.Load() {
			if account.Username == username && account.Password == password {
				id = accountID
				return nil
			}
		}
		return fmt.Errorf("%w: no account matches the credentials", ErrNotFound)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Profile is an account's feed preferences.
type Profile struct {
	Region post.Region `json:"region"`
	Tags   []post.Tag  `json:"tags"`
}

// Profile returns the account's preferences, substituting the
// registration defaults when a preference record is missing.
func (s *Service) Profile(accountID string) (Profile, error) {
	var profile Profile
	err := s.Persistence.View(func() error {
		profile.Region, profile.Tags = s.preferences(accountID)
		return nil
	})
	return profile, err
}

// preferences resolves the account's region and tags with defaults.
// Callers must hold at least the read lock.
func (s *Service) preferences(accountID string) (post.Region, []post.Tag) {
	region := post.DefaultRegion
	if pref, ok := s.Persistence.Regions.Load()[accountID]; ok {
		region = pref.Region
	}
	tags, ok := s.Persistence.Tags.Load()[accountID]
	if !ok {
		tags = slices.Clone(post.Tags)
	}
	return region, tags
}

// UpdateProfile replaces the account's region preference, tag
// preferences, or both. A nil region or nil tag slice leaves that
// preference untouched.
func (s *Service) UpdateProfile(accountID string, region *post.Region, tags []post.Tag) error {
	if region != nil && !region.Valid() {
		return fmt.Errorf("%w: unknown region %q", ErrInvalid, *region)
	}
	for _, tag := range tags {
		if !tag.Valid() {
			return fmt.Errorf("%w: unknown tag %q", ErrInvalid, tag)
		}
	}
	return s.Persistence.Update(func() error {
		if region != nil {
			regions := s.Persistence.Regions.Load()
			regions[accountID] = post.RegionPreference{Region: *region}
			if err := s.Persistence.Regions.Save(regions); err != nil {
				return err
			}
		}
		if tags != nil {
			all := s.Persistence.Tags.Load()
			all[accountID] = tags
			return s.Persistence.Tags.Save(all)
		}
		return nil
	})
}
