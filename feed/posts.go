package feed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/geo"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/gps"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// CreatePostRequest is what the upload handler passes in once it has
// validated and stored the image files.
type CreatePostRequest struct {
	Tag post.Tag `json:"tag"`
	// Region may be empty, in which case it is resolved from coordinates.
	Region post.Region `json:"region"`
	// Latitude/Longitude are manually picked coordinates, if any.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// Images are stored upload filenames, at most four, in display order.
	Images []string `json:"images"`
}

// CreatePost resolves the post's region and persists the post, plus a
// coordinate record whenever coordinates are known. Resolution order:
// explicit region, manual coordinates, coordinates derived from image
// metadata. A post is never persisted with an empty region; when nothing
// resolves one the caller gets ErrInvalid and must ask the user to pick a
// region explicitly.
func (s *Service) CreatePost(accountID string, req CreatePostRequest) (post.Post, error) {
	if !req.Tag.Valid() {
		return post.Post{}, fmt.Errorf("%w: unknown tag %q", ErrInvalid, req.Tag)
	}
	if req.Region != "" && !req.Region.Valid() {
		return post.Post{}, fmt.Errorf("%w: unknown region %q", ErrInvalid, req.Region)
	}
	if len(req.Images) > post.MaxImages {
		return post.Post{}, fmt.Errorf("%w: at most %d images per post", ErrInvalid, post.MaxImages)
	}

	region := req.Region
	var record *post.CoordinateRecord

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		lat, lng := *req.Latitude, *req.Longitude
		if !post.CoordinatesInRange(lat, lng) {
			return post.Post{}, fmt.Errorf("%w: coordinates out of range", ErrInvalid)
		}
		record = &post.CoordinateRecord{
			Latitude:  lat,
			Longitude: lng,
			Source:    post.SourceManual,
			CreatedAt: time.Now(),
		}
		if region == "" {
			region = geo.Classify(lat, lng)
		}
	case region == "":
		paths := lo.Map(req.Images, func(name string, _ int) string {
			return s.Store.UploadPath(name)
		})
		if coords, ok := s.Extractor.ExtractCoordinates(paths); ok {
			record = &post.CoordinateRecord{
				Latitude:  coords.Latitude,
				Longitude: coords.Longitude,
				Source:    post.SourceDerived,
				CreatedAt: time.Now(),
			}
			region = geo.Classify(coords.Latitude, coords.Longitude)
		}
	}
	if region == "" {
		return post.Post{}, fmt.Errorf("%w: region required, none given and no coordinates found", ErrInvalid)
	}

	created := post.Post{
		ID:        uuid.NewString(),
		UserID:    accountID,
		Tag:       req.Tag,
		Region:    post.PostRegion{Region: region},
		Images:    req.Images,
		CreatedAt: time.Now(),
	}

	err := s.Persistence.Update(func() error {
		account, ok := s.Persistence.Accounts.Load()[accountID]
		if !ok {
			return fmt.Errorf("%w: account %s", ErrNotFound, accountID)
		}
		created.Username = account.Username

		if err := s.validate.Struct(created); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalid, err)
		}

		posts := s.Persistence.Posts.Load()
		posts = append([]post.Post{created}, posts...) // newest first
		if err := s.Persistence.Posts.Save(posts); err != nil {
			return err
		}

		if record != nil {
			coordinates := s.Persistence.Coordinates.Load()
			coordinates[created.ID] = *record
			return s.Persistence.Coordinates.Save(coordinates)
		}
		return nil
	})
	if err != nil {
		return post.Post{}, err
	}
	return created, nil
}

// DeletePost removes the post and everything hanging off it: comments,
// the like entry, the coordinate record and the stored image files. The
// cascade runs under one write lock but is sequential best effort, not a
// transaction; SweepOrphans finishes the job if the process dies midway.
func (s *Service) DeletePost(postID, accountID string) error {
	return s.Persistence.Update(func() error {
		posts := s.Persistence.Posts.Load()
		idx := slices.IndexFunc(posts, func(p post.Post) bool { return p.ID == postID })
		if idx < 0 {
			return fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		target := posts[idx]
		if target.UserID != accountID {
			return fmt.Errorf("%w: post %s belongs to another account", ErrPermissionDenied, postID)
		}

		posts = append(posts[:idx], posts[idx+1:]...)
		if err := s.Persistence.Posts.Save(posts); err != nil {
			return err
		}

		comments := lo.Reject(s.Persistence.Comments.Load(),
			func(c post.Comment, _ int) bool { return c.PostID == postID })
		if err := s.Persistence.Comments.Save(comments); err != nil {
			return err
		}

		likes := s.Persistence.Likes.Load()
		delete(likes, postID)
		if err := s.Persistence.Likes.Save(likes); err != nil {
			return err
		}

		coordinates := s.Persistence.Coordinates.Load()
		delete(coordinates, postID)
		if err := s.Persistence.Coordinates.Save(coordinates); err != nil {
			return err
		}

		for _, image := range target.Images {
			if err := s.Store.RemoveUpload(image); err != nil {
				log.Warnf("delete post %s: removing image %s: %s", postID, image, err)
			}
		}
		return nil
	})
}

// ToggleLike flips the account's membership in the post's like set and
// reports the new state. Toggling twice restores what was there before.
// The like entry is created on first use of a post id.
func (s *Service) ToggleLike(postID, accountID string) (liked bool, count int, err error) {
	err = s.Persistence.Update(func() error {
		likes := s.Persistence.Likes.Load()
		members := likes[postID]
		if lo.Contains(members, accountID) {
			members = lo.Without(members, accountID)
		} else {
			members = append(members, accountID)
			liked = true
		}
		likes[postID] = members
		count = len(members)
		return s.Persistence.Likes.Save(likes)
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// AddComment attaches a comment to an existing post. The text is
// sanitized before validation; a comment that sanitizes to nothing is
// rejected.
func (s *Service) AddComment(postID, accountID, text string) (post.Comment, error) {
	text = post.SanitizeComment(text)
	if text == "" {
		return post.Comment{}, fmt.Errorf("%w: comment is empty", ErrInvalid)
	}

	var comment post.Comment
	err := s.Persistence.Update(func() error {
		posts := s.Persistence.Posts.Load()
		if slices.IndexFunc(posts, func(p post.Post) bool { return p.ID == postID }) < 0 {
			return fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		account, ok := s.Persistence.Accounts.Load()[accountID]
		if !ok {
			return fmt.Errorf("%w: account %s", ErrNotFound, accountID)
		}

		comment = post.Comment{
			ID:        uuid.NewString(),
			PostID:    postID,
			UserID:    accountID,
			Username:  account.Username,
			Comment:   text,
			CreatedAt: time.Now(),
		}
		if err := s.validate.Struct(comment); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalid, err)
		}

		comments := s.Persistence.Comments.Load()
		comments = append([]post.Comment{comment}, comments...) // newest first
		return s.Persistence.Comments.Save(comments)
	})
	if err != nil {
		return post.Comment{}, err
	}
	return comment, nil
}

// DeleteComment removes exactly one comment, owner-only.
func (s *Service) DeleteComment(commentID, accountID string) error {
	return s.Persistence.Update(func() error {
		comments := s.Persistence.Comments.Load()
		idx := slices.IndexFunc(comments, func(c post.Comment) bool { return c.ID == commentID })
		if idx < 0 {
			return fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
		}
		if comments[idx].UserID != accountID {
			return fmt.Errorf("%w: comment %s belongs to another account", ErrPermissionDenied, commentID)
		}
		comments = append(comments[:idx], comments[idx+1:]...)
		return s.Persistence.Comments.Save(comments)
	})
}

// SweepReport counts what an orphan sweep discarded.
type SweepReport struct {
	Comments    int `json:"comments"`
	Likes       int `json:"likes"`
	Coordinates int `json:"coordinates"`
}

// SweepOrphans drops every comment, like entry and coordinate record
// whose post no longer exists. The cascade delete is not transactional,
// so this is the periodic repair for cascades that never finished.
func (s *Service) SweepOrphans() (SweepReport, error) {
	var report SweepReport
	err := s.Persistence.Update(func() error {
		live := make(map[string]struct{})
		for _, p := range s.Persistence.Posts.Load() {
			live[p.ID] = struct{}{}
		}

		comments := s.Persistence.Comments.Load()
		kept := lo.Filter(comments, func(c post.Comment, _ int) bool {
			_, ok := live[c.PostID]
			return ok
		})
		report.Comments = len(comments) - len(kept)
		if report.Comments > 0 {
			if err := s.Persistence.Comments.Save(kept); err != nil {
				return err
			}
		}

		likes := s.Persistence.Likes.Load()
		for postID := range likes {
			if _, ok := live[postID]; !ok {
				delete(likes, postID)
				report.Likes++
			}
		}
		if report.Likes > 0 {
			if err := s.Persistence.Likes.Save(likes); err != nil {
				return err
			}
		}

		coordinates := s.Persistence.Coordinates.Load()
		for postID := range coordinates {
			if _, ok := live[postID]; !ok {
				delete(coordinates, postID)
				report.Coordinates++
			}
		}
		if report.Coordinates > 0 {
			if err := s.Persistence.Coordinates.Save(coordinates); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}
	if report != (SweepReport{}) {
		log.Infof("orphan sweep removed %d comments, %d like entries, %d coordinate records",
			report.Comments, report.Likes, report.Coordinates)
	}
	return report, nil
}
