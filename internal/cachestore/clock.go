package cachestore

import "time"

// Clock supplies the logical timestamps recorded as lastUsed. Values are
// integers and never decrease across calls.
type Clock interface {
	Now() int64
}

// SystemClock reports wall-clock milliseconds, nudged forward when two
// calls land in the same millisecond so repeated uses stay ordered.
type SystemClock struct {
	last int64
}

// Now returns a strictly increasing millisecond timestamp.
func (c *SystemClock) Now() int64 {
	now := time.Now().UnixMilli()
	if now <= c.last {
		c.last++
		return c.last
	}
	c.last = now
	return now
}
