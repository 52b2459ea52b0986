package searchsync

import (
	"net/url"
	"time"
)

// Navigator exposes the current navigable location and replace-style
// navigation. Replace swaps the location without adding a history entry.
type Navigator interface {
	Location() (path string, query url.Values)
	Replace(path string, query url.Values)
}

// Option configures a Controller.
type Option func(*Controller)

// WithWindow overrides the quiescence window.
func WithWindow(window time.Duration) Option {
	return func(c *Controller) {
		if window > 0 {
			c.window = window
		}
	}
}

// Controller debounces free-text input and rewrites the location query
// string once per settled burst.
type Controller struct {
	nav      Navigator
	window   time.Duration
	debounce *Debouncer
}

// NewController builds a controller bound to the given navigator.
func NewController(nav Navigator, opts ...Option) *Controller {
	c := &Controller{nav: nav, window: DefaultWindow}
	for _, opt := range opts {
		opt(c)
	}
	c.debounce = NewDebouncer(c.window)
	return c
}

// Input records a change to the observed search term. After the
// quiescence window elapses with no further input, the controller reads
// the current location, normalizes its query state for the latest term,
// and performs exactly one Replace.
func (c *Controller) Input(term string) {
	if c == nil || c.nav == nil {
		return
	}
	c.debounce.Schedule(func() {
		path, query := c.nav.Location()
		c.nav.Replace(path, NormalizeQuery(query, term))
	})
}

// Close tears the controller down. Any pending navigation is cancelled
// and no Replace fires afterwards.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.debounce.Stop()
}
