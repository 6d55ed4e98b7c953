// Package catalog provides the content catalog consumed by the search,
// recommendation and layout subsystems. The catalog is an ordered in-memory
// list of items; fetching and caching of real upstream data is out of scope,
// so the fetch functions return already-resolved mock slices.
package catalog

// ContentType represents the kind of content item.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// ContentItem is a single catalog entry. Items are immutable once loaded;
// no subsystem mutates them.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	Rating      float64     `json:"rating"`
	Poster      string      `json:"poster"`
	Backdrop    string      `json:"backdrop,omitempty"`
	Year        int         `json:"year,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	Description string      `json:"description,omitempty"`
	Genres      []string    `json:"genres,omitempty"`
}

// Category is a named grouping of content items.
type Category struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Slug  string        `json:"slug"`
	Items []ContentItem `json:"items"`
}

// Collection is a curated storefront shelf.
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Gradient string `json:"gradient"`
	Image    string `json:"image,omitempty"`
}

// Teams holds the two sides of a sport event.
type Teams struct {
	Home     string `json:"home"`
	Away     string `json:"away"`
	HomeLogo string `json:"homeLogo,omitempty"`
	AwayLogo string `json:"awayLogo,omitempty"`
}

// SportEvent is a live or scheduled sport broadcast.
type SportEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Teams  *Teams `json:"teams,omitempty"`
	League string `json:"league"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Poster string `json:"poster,omitempty"`
	IsLive bool   `json:"isLive,omitempty"`
}

// TVChannel is a linear TV channel entry.
type TVChannel struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Logo           string `json:"logo,omitempty"`
	Category       string `json:"category"`
	CurrentProgram string `json:"currentProgram,omitempty"`
}
