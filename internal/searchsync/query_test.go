package searchsync

import (
	"net/url"
	"testing"
)

func TestNormalizeQuerySetsTermAndResetsPage(t *testing.T) {
	t.Parallel()

	params := url.Values{"page": {"7"}, "sort": {"date"}}
	got := NormalizeQuery(params, "abc")

	if got.Get(QueryParam) != "abc" {
		t.Fatalf("query = %q, want %q", got.Get(QueryParam), "abc")
	}
	if got.Get(PageParam) != "1" {
		t.Fatalf("page = %q, want %q", got.Get(PageParam), "1")
	}
	if got.Get("sort") != "date" {
		t.Fatalf("sort = %q, want preserved %q", got.Get("sort"), "date")
	}
}

func TestNormalizeQueryRemovesEmptyTerm(t *testing.T) {
	t.Parallel()

	params := url.Values{"query": {"old"}, "page": {"3"}}
	got := NormalizeQuery(params, "")

	if _, ok := got[QueryParam]; ok {
		t.Fatalf("query key should be absent, got %q", got.Get(QueryParam))
	}
	if got.Get(PageParam) != "1" {
		t.Fatalf("page = %q, want %q", got.Get(PageParam), "1")
	}
}

func TestNormalizeQueryDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	params := url.Values{"page": {"5"}}
	_ = NormalizeQuery(params, "abc")

	if params.Get("page") != "5" {
		t.Fatalf("input mutated: page = %q", params.Get("page"))
	}
	if params.Has("query") {
		t.Fatal("input mutated: query added")
	}
}

func TestNormalizeQueryKeepsUTF8Terms(t *testing.T) {
	t.Parallel()

	got := NormalizeQuery(url.Values{}, "café ☕")
	if got.Get(QueryParam) != "café ☕" {
		t.Fatalf("query = %q", got.Get(QueryParam))
	}
}
