package post

import (
	"time"
)

// MaxImages is the most images a single post may carry.
const MaxImages = 4

// CoordinateSource records where a coordinate record came from.
type CoordinateSource string

const (
	// SourceManual means the poster picked the coordinates themselves.
	SourceManual CoordinateSource = "manual"
	// SourceDerived means the coordinates were read out of image metadata.
	SourceDerived CoordinateSource = "derived"
)

// Account is a registered user. Accounts are keyed by their id in the
// accounts collection, so the id does not appear in the record itself.
type Account struct {
	Username  string    `json:"username" validate:"required,min=3,max=20"`
	Password  string    `json:"password" validate:"required,min=6,max=100"`
	CreatedAt time.Time `json:"created_at"`
}

// RegionPreference is the single region an account wants its feed scoped
// to, keyed by account id.
type RegionPreference struct {
	Region Region `json:"region" validate:"required,region"`
}

// PostRegion wraps the region label of a post. The stored shape has always
// been {"region": {"region": ...}} and existing collection files depend on
// it, so the wrapper stays.
type PostRegion struct {
	Region Region `json:"region" validate:"required,region"`
}

// Post is a single photo post. Username is denormalized from the account
// at creation time. Region is always resolved before a post is persisted.
type Post struct {
	ID        string     `json:"id" validate:"required,uuid4"`
	UserID    string     `json:"user_id" validate:"required"`
	Username  string     `json:"username" validate:"required"`
	Tag       Tag        `json:"tag" validate:"required,tag"`
	Region    PostRegion `json:"region"`
	Images    []string   `json:"images" validate:"max=4"`
	CreatedAt time.Time  `json:"created_at"`
}

// Comment references its post by id. The reference is weak: nothing in the
// store enforces it, the service checks it on write and the orphan sweep
// repairs it after the fact.
type Comment struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	PostID    string    `json:"post_id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	Username  string    `json:"username" validate:"required"`
	Comment   string    `json:"comment" validate:"required,max=1000"`
	CreatedAt time.Time `json:"created_at"`
}

// CoordinateRecord holds the decimal coordinates attached to a post,
// keyed by post id. Present only for posts that have any.
type CoordinateRecord struct {
	Latitude  float64          `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64          `json:"longitude" validate:"min=-180,max=180"`
	Source    CoordinateSource `json:"source" validate:"required,oneof=manual derived"`
	CreatedAt time.Time        `json:"created_at"`
}

// CoordinatesInRange reports whether a latitude/longitude pair is inside
// the valid decimal-degree ranges.
func CoordinatesInRange(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
