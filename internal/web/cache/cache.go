// Package cache holds rendered page fragments in memory, grouped by
// scope so mutations can drop every view they affect at once.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultTTL bounds how long an entry may be served before it is
// considered stale.
const DefaultTTL = time.Minute

// Canonical scope names shared across modules. Invoice mutations
// invalidate both the invoices and dashboard scopes since the overview
// aggregates change with every write.
const (
	ScopeInvoices  = "invoices"
	ScopeDashboard = "dashboard"
	ScopeCustomers = "customers"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is a scope-keyed view cache safe for concurrent use.
type Cache struct {
	ttl   time.Duration
	clock func() time.Time

	mu     sync.Mutex
	scopes map[string]map[string]entry
}

// New builds a cache with the given entry lifetime.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:    ttl,
		clock:  time.Now,
		scopes: make(map[string]map[string]entry),
	}
}

// Get returns the cached value for a key within a scope, if fresh.
func (c *Cache) Get(scope, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	keys, ok := c.scopes[scope]
	if !ok {
		return nil, false
	}
	item, ok := keys[key]
	if !ok {
		return nil, false
	}
	if c.clock().After(item.expiresAt) {
		delete(keys, key)
		return nil, false
	}
	return item.value, true
}

// Put stores a value under a scope and key. Blank scopes and keys are
// ignored.
func (c *Cache) Put(scope, key string, value []byte) {
	if c == nil || strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	keys, ok := c.scopes[scope]
	if !ok {
		keys = make(map[string]entry)
		c.scopes[scope] = keys
	}
	keys[key] = entry{value: value, expiresAt: c.clock().Add(c.ttl)}
}

// InvalidateScope drops every entry stored under a scope.
func (c *Cache) InvalidateScope(scope string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scopes, scope)
}

// Sweep removes expired entries across all scopes.
func (c *Cache) Sweep() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	for scope, keys := range c.scopes {
		for key, item := range keys {
			if now.After(item.expiresAt) {
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(c.scopes, scope)
		}
	}
}

// Janitor sweeps expired entries on the given interval until the
// context is canceled.
func (c *Cache) Janitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTTL
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Sweep()
		}
	}
}
