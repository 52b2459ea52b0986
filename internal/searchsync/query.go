// Package searchsync keeps a free-text search input synchronized with
// the current navigable location.
//
// A Controller observes input events, waits for a quiescence window to
// elapse, and then rewrites the location query string exactly once per
// settled burst through an injected Navigator.
package searchsync

import "net/url"

// Query string parameters managed by the controller.
const (
	QueryParam = "query"
	PageParam  = "page"
)

// NormalizeQuery returns a copy of params with term applied: page resets
// to "1", query is set when term is non-empty and removed otherwise, and
// every other parameter is preserved untouched.
func NormalizeQuery(params url.Values, term string) url.Values {
	next := url.Values{}
	for key, values := range params {
		next[key] = append([]string(nil), values...)
	}
	next.Set(PageParam, "1")
	if term == "" {
		next.Del(QueryParam)
	} else {
		next.Set(QueryParam, term)
	}
	return next
}
