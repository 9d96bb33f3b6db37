package query

import (
	"net/url"
	"strconv"
)

// Filter holds the two optional narrowing parameters for an event fetch.
type Filter struct {
	Site  string
	Limit int
}

// Build derives the query parameters for GET /api/fetch from a filter.
// "site" is present iff the site filter is non-empty, "limit" iff the limit
// is non-zero. The API does not care about parameter order.
func Build(f Filter) url.Values {
	params := url.Values{}
	if f.Site != "" {
		params.Set("site", f.Site)
	}
	if f.Limit != 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	return params
}
