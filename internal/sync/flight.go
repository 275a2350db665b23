// Package sync coalesces concurrent work on the same key.
package sync

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Flights coalesces concurrent calls that share a key: while a call for a key is running, later calls for the same
// key wait for it and receive its result instead of running their own. Nothing is remembered once a call finishes.
type Flights[V any] struct {
	group singleflight.Group
}

func NewFlights[V any]() *Flights[V] {
	return &Flights[V]{}
}

// Do runs fn for key, or waits for the run already in progress. shared reports whether the result was handed to
// more than one caller. A caller whose ctx ends gives up with ctx.Err(); the run itself carries on for the others.
func (f *Flights[V]) Do(ctx context.Context, key string, fn func() (V, error)) (value V, shared bool, err error) {
	ch := f.group.DoChan(key, func() (any, error) {
		return fn()
	})
	select {
	case res := <-ch:
		if v, ok := res.Val.(V); ok {
			value = v
		}
		return value, res.Shared, res.Err
	case <-ctx.Done():
		return value, true, ctx.Err()
	}
}
