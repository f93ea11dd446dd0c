package docean

import (
	"net/url"
	"strconv"
	"strings"
)

// MaxPerPage is the largest page size the API accepts.
const MaxPerPage = 200

// ListOptions expresses the query parameters accepted by list endpoints.
type ListOptions struct {
	// Page is the 1-based page number to request. Zero omits the parameter.
	Page int
	// PerPage is the page size, capped by the API at MaxPerPage. Zero omits
	// the parameter.
	PerPage int
	// Filters holds endpoint-specific filter parameters, for example
	// "name", "region", "tag_name", "type" or "private". Multiple values for
	// the same key are joined with commas.
	Filters map[string][]string
}

// NewListOptions creates an empty ListOptions ready for chaining.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOptions) WithPerPage(perPage int) *ListOptions {
	o.PerPage = perPage

	return o
}

// Clone returns a deep copy of the options. A nil receiver yields an empty
// copy, so cloning is always safe before adding call-specific parameters.
func (o *ListOptions) Clone() *ListOptions {
	clone := NewListOptions()

	if o == nil {
		return clone
	}

	clone.Page = o.Page
	clone.PerPage = o.PerPage

	for key, values := range o.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return clone
}

// WithFilter appends values to a filter parameter.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = append(o.Filters[key], values...)

	return o
}

// ToValues converts the options to url.Values. Building twice from the same
// options yields identical encodings.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(o.PerPage))
	}

	for key, filterValues := range o.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
