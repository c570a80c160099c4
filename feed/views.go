package feed

import (
	"sort"

	"github.com/fatih/structs"
	"github.com/samber/lo"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// PostView is a post flattened into its wire map, plus the computed
// comment/like decorations the clients render alongside it.
type PostView map[string]interface{}

// Feed returns the posts matching the account's region preference and
// tag preference set, newest first, decorated for rendering.
func (s *Service) Feed(accountID string) ([]PostView, error) {
	var views []PostView
	err := s.Persistence.View(func() error {
		region, tags := s.preferences(accountID)
		matching := lo.Filter(s.Persistence.Posts.Load(), func(p post.Post, _ int) bool {
			return p.Region.Region == region && lo.Contains(tags, p.Tag)
		})
		views = s.decorate(matching, accountID)
		return nil
	})
	return views, err
}

// MyPosts returns the account's own posts regardless of preferences,
// newest first, decorated for rendering.
func (s *Service) MyPosts(accountID string) ([]PostView, error) {
	var views []PostView
	err := s.Persistence.View(func() error {
		mine := lo.Filter(s.Persistence.Posts.Load(), func(p post.Post, _ int) bool {
			return p.UserID == accountID
		})
		views = s.decorate(mine, accountID)
		return nil
	})
	return views, err
}

// decorate flattens each post into its wire map and attaches comments
// (newest first), counts and whether the viewing account liked it.
// Callers must hold at least the read lock.
func (s *Service) decorate(posts []post.Post, accountID string) []PostView {
	comments := s.Persistence.Comments.Load()
	likes := s.Persistence.Likes.Load()

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		flat := structs.New(p)
		flat.TagName = "json"
		view := PostView(flat.Map())

		postComments := lo.Filter(comments, func(c post.Comment, _ int) bool {
			return c.PostID == p.ID
		})
		sort.SliceStable(postComments, func(i, j int) bool {
			return postComments[i].CreatedAt.After(postComments[j].CreatedAt)
		})
		view["comments"] = postComments
		view["comment_count"] = len(postComments)

		members := likes[p.ID]
		view["like_count"] = len(members)
		view["user_liked"] = lo.Contains(members, accountID)

		views = append(views, view)
	}
	return views
}

// Snapshot is the full persisted state, as served by the operator debug
// endpoint.
type Snapshot struct {
	Users       map[string]post.Account          `json:"users" yaml:"users"`
	Regions     map[string]post.RegionPreference `json:"regions" yaml:"regions"`
	Tags        map[string][]post.Tag            `json:"tags" yaml:"tags"`
	Posts       []post.Post                      `json:"posts" yaml:"posts"`
	Comments    []post.Comment                   `json:"comments" yaml:"comments"`
	Likes       map[string][]string              `json:"likes" yaml:"likes"`
	Coordinates map[string]post.CoordinateRecord `json:"coordinates" yaml:"coordinates"`
}

// Snapshot loads every collection under one read lock.
func (s *Service) Snapshot() (Snapshot, error) {
	var snapshot Snapshot
	err := s.Persistence.View(func() error {
		snapshot = Snapshot{
			Users:       s.Persistence.Accounts.Load(),
			Regions:     s.Persistence.Regions.Load(),
			Tags:        s.Persistence.Tags.Load(),
			Posts:       s.Persistence.Posts.Load(),
			Comments:    s.Persistence.Comments.Load(),
			Likes:       s.Persistence.Likes.Load(),
			Coordinates: s.Persistence.Coordinates.Load(),
		}
		return nil
	})
	return snapshot, err
}
