// Package content selects which part of the static news and resource lists a
// section shows.
//
// Sections own a sticky selection controller: exactly one category or tab is
// active, starting with the first declared one. Filtering is a pure function
// of the item list and the active key.
package content

import "time"

// DateLayout is the display format of item dates.
const DateLayout = "02/01/2006"

// Discriminated is implemented by items that belong to one category or tab.
type Discriminated interface {
	Discriminant() string
}

// VisibleItems returns the items whose discriminant equals key, in their
// original order. It never returns nil and does not modify all.
func VisibleItems[T Discriminated](all []T, key string) []T {
	out := make([]T, 0, len(all))

	for _, item := range all {
		if item.Discriminant() == key {
			out = append(out, item)
		}
	}

	return out
}

// NewsItem is a news article teaser. Title and Excerpt are translation keys.
type NewsItem struct {
	ID         uint64
	Category   string
	Date       time.Time
	TitleKey   string
	ExcerptKey string
	Image      string
}

// Discriminant implements Discriminated.
func (n NewsItem) Discriminant() string {
	return n.Category
}

// DisplayDate formats Date for the page.
func (n NewsItem) DisplayDate() string {
	return n.Date.Format(DateLayout)
}

// MediaType is the resource tab discriminant.
type MediaType string

const (
	// MediaImages is the photo gallery tab.
	MediaImages MediaType = "images"

	// MediaVideos is the video library tab.
	MediaVideos MediaType = "videos"

	// MediaDocuments is the document library tab.
	MediaDocuments MediaType = "documents"
)

// ResourceItem is a media resource. Title is literal text.
type ResourceItem struct {
	ID        uint64
	MediaType MediaType
	Title     string
	Date      time.Time
	ImageURL  string
}

// Discriminant implements Discriminated.
func (r ResourceItem) Discriminant() string {
	return string(r.MediaType)
}

// DisplayDate formats Date for the page.
func (r ResourceItem) DisplayDate() string {
	return r.Date.Format(DateLayout)
}

// Library is the immutable content served by the site.
type Library struct {
	News      []NewsItem
	Resources []ResourceItem
}
