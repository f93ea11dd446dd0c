package docean

import (
	"time"
)

// Links represents the pagination links carried by list response envelopes.
type Links struct {
	Pages *Pages `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Pages holds the cursor URLs of a paginated listing.
type Pages struct {
	First string `json:"first,omitempty" yaml:"first,omitempty"`
	Prev  string `json:"prev,omitempty"  yaml:"prev,omitempty"`
	Next  string `json:"next,omitempty"  yaml:"next,omitempty"`
	Last  string `json:"last,omitempty"  yaml:"last,omitempty"`
}

// NextPage returns the URL of the next page, or the empty string when the
// current page is the last one. An absent next link is a permanent end of the
// sequence, not a transient condition.
func (l Links) NextPage() string {
	if l.Pages == nil {
		return ""
	}

	return l.Pages.Next
}

// Meta represents the meta object carried by list response envelopes.
type Meta struct {
	Total int `json:"total" yaml:"total"`
}

// Page is one fetched page of a paginated listing: the items in provider
// order plus the links and meta needed to continue the traversal.
type Page[T any] struct {
	Items []T
	Links Links
	Meta  Meta
}

// NextPageURL returns the URL of the page after this one, if any.
func (p *Page[T]) NextPageURL() string {
	return p.Links.NextPage()
}

// Rate holds the request quota state reported by the RateLimit-* response
// headers. It is attached to every response so callers can pace themselves
// before the governor has to.
type Rate struct {
	// Limit is the per-window request quota.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is when the current window ends and the quota replenishes.
	Reset time.Time
}
