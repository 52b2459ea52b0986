package searchsync

import (
	"net/url"
	"sync"
	"testing"
	"time"
)

// fakeNavigator records Replace calls for controller tests.
type fakeNavigator struct {
	mu       sync.Mutex
	path     string
	query    url.Values
	replaces []url.Values
}

func newFakeNavigator(path string, query url.Values) *fakeNavigator {
	if query == nil {
		query = url.Values{}
	}
	return &fakeNavigator{path: path, query: query}
}

func (f *fakeNavigator) Location() (string, url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := url.Values{}
	for key, values := range f.query {
		copied[key] = append([]string(nil), values...)
	}
	return f.path, copied
}

func (f *fakeNavigator) Replace(path string, query url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = path
	f.query = query
	f.replaces = append(f.replaces, query)
}

func (f *fakeNavigator) replaceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.replaces)
}

func (f *fakeNavigator) lastReplace() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.replaces) == 0 {
		return nil
	}
	return f.replaces[len(f.replaces)-1]
}

func TestControllerAppliesOnlyLastValueInBurst(t *testing.T) {
	t.Parallel()

	nav := newFakeNavigator("/dashboard/invoices", url.Values{"page": {"4"}})
	c := NewController(nav, WithWindow(20*time.Millisecond))
	defer c.Close()

	c.Input("l")
	c.Input("le")
	c.Input("lee")

	time.Sleep(200 * time.Millisecond)

	if got := nav.replaceCount(); got != 1 {
		t.Fatalf("replace count = %d, want 1", got)
	}
	last := nav.lastReplace()
	if last.Get(QueryParam) != "lee" {
		t.Fatalf("query = %q, want %q", last.Get(QueryParam), "lee")
	}
	if last.Get(PageParam) != "1" {
		t.Fatalf("page = %q, want %q", last.Get(PageParam), "1")
	}
}

func TestControllerClearingTermRemovesQueryKey(t *testing.T) {
	t.Parallel()

	nav := newFakeNavigator("/dashboard/invoices", url.Values{"query": {"lee"}, "page": {"2"}})
	c := NewController(nav, WithWindow(20*time.Millisecond))
	defer c.Close()

	c.Input("")
	time.Sleep(200 * time.Millisecond)

	if got := nav.replaceCount(); got != 1 {
		t.Fatalf("replace count = %d, want 1", got)
	}
	if nav.lastReplace().Has(QueryParam) {
		t.Fatal("query key should be removed for empty term")
	}
}

func TestControllerCloseCancelsPendingReplace(t *testing.T) {
	t.Parallel()

	nav := newFakeNavigator("/dashboard/invoices", nil)
	c := NewController(nav, WithWindow(20*time.Millisecond))

	c.Input("lee")
	c.Close()

	time.Sleep(200 * time.Millisecond)

	if got := nav.replaceCount(); got != 0 {
		t.Fatalf("replace count = %d, want 0 after Close", got)
	}
}

func TestControllerPreservesUnrelatedParams(t *testing.T) {
	t.Parallel()

	nav := newFakeNavigator("/dashboard/invoices", url.Values{"sort": {"amount"}, "page": {"9"}})
	c := NewController(nav, WithWindow(20*time.Millisecond))
	defer c.Close()

	c.Input("acme")
	time.Sleep(200 * time.Millisecond)

	last := nav.lastReplace()
	if last == nil {
		t.Fatal("expected a replace")
	}
	if last.Get("sort") != "amount" {
		t.Fatalf("sort = %q, want preserved %q", last.Get("sort"), "amount")
	}
}
