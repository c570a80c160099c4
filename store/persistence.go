package store

import (
	"path"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/kv"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// Persistence is an umbrella store of the collections backing the feed.
// Every collection is a whole-file JSON document with no finer-grained
// locking or versioning, so read-modify-write sequences must run inside
// View/Update; two concurrent sequences would otherwise overwrite each
// other with the later save silently winning.
//
// The collection file names are historical and fixed; existing data
// directories depend on them.
type Persistence struct {
	// Path is the directory where the collection files are located,
	// relative to the data store root.
	Path string
	// Store is the underlying data store.
	Store *DataStore

	mu sync.RWMutex

	// Accounts maps account id to the account record.
	Accounts *kv.Collection[map[string]post.Account]
	// Regions maps account id to the account's region preference.
	Regions *kv.Collection[map[string]post.RegionPreference]
	// Tags maps account id to the tag labels the account subscribed to.
	Tags *kv.Collection[map[string][]post.Tag]
	// Posts holds every post, newest first.
	Posts *kv.Collection[[]post.Post]
	// Comments holds every comment, newest first.
	Comments *kv.Collection[[]post.Comment]
	// Likes maps post id to the set of account ids that liked it.
	Likes *kv.Collection[map[string][]string]
	// Coordinates maps post id to its coordinate record, if any.
	Coordinates *kv.Collection[map[string]post.CoordinateRecord]
}

// NewPersistence returns a new instance of Persistence.
func NewPersistence(store *DataStore, location *string) *Persistence {
	if location == nil {
		defaultLoc := "."
		location = &defaultLoc
	}

	fs := store.Fs
	p := &Persistence{
		Path:  *location,
		Store: store,

		Accounts: kv.NewCollection(fs, path.Join(*location, "Userdata.json"),
			func() map[string]post.Account { return map[string]post.Account{} }),
		Regions: kv.NewCollection(fs, path.Join(*location, "Regions.json"),
			func() map[string]post.RegionPreference { return map[string]post.RegionPreference{} }),
		Tags: kv.NewCollection(fs, path.Join(*location, "Tags.json"),
			func() map[string][]post.Tag { return map[string][]post.Tag{} }),
		Posts: kv.NewCollection(fs, path.Join(*location, "Posts.json"),
			func() []post.Post { return []post.Post{} }),
		Comments: kv.NewCollection(fs, path.Join(*location, "Comments.json"),
			func() []post.Comment { return []post.Comment{} }),
		Likes: kv.NewCollection(fs, path.Join(*location, "Likes.json"),
			func() map[string][]string { return map[string][]string{} }),
		Coordinates: kv.NewCollection(fs, path.Join(*location, "Coordinates.json"),
			func() map[string]post.CoordinateRecord { return map[string]post.CoordinateRecord{} }),
	}
	return p
}

// Ensure creates every collection file which does not exist yet.
func (p *Persistence) Ensure() error {
	for _, ensure := range []func() error{
		p.Accounts.Ensure,
		p.Regions.Ensure,
		p.Tags.Ensure,
		p.Posts.Ensure,
		p.Comments.Ensure,
		p.Likes.Ensure,
		p.Coordinates.Ensure,
	} {
		if err := ensure(); err != nil {
			return err
		}
	}
	log.Info("persistence initalized successfully")
	return nil
}

// View runs fn while holding the read lock.
func (p *Persistence) View(fn func() error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fn()
}

// Update runs fn while holding the write lock. Multi-collection sequences,
// the post delete cascade included, run as one critical section; the lock
// is the only thing standing between two requests and a lost update.
func (p *Persistence) Update(fn func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn()
}
