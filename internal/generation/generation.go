// Package generation tags outstanding requests so that only the latest one
// is allowed to update a view.
package generation

import "sync/atomic"

// Tag identifies one request. The zero Tag is never current once Next has
// been called.
type Tag uint64

// Counter is a monotonic generation counter. The zero value is ready to use
// and it is safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// Next starts a new generation and returns its tag. Every earlier tag
// becomes stale.
func (c *Counter) Next() Tag {
	return Tag(c.n.Add(1))
}

// Current returns the latest tag.
func (c *Counter) Current() Tag {
	return Tag(c.n.Load())
}

// IsCurrent reports whether tag is still the latest generation.
func (c *Counter) IsCurrent(tag Tag) bool {
	return c.n.Load() == uint64(tag)
}
