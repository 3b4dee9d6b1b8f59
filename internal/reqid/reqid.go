// Package reqid stamps a random correlation ID on each compilation context so
// start and finish events can be paired by subscribers.
package reqid

import (
	"context"
	"math/rand"
)

// key is the context key for the correlation ID.
type key struct{}

// NewContext returns a copy of parent with a new random ID stored, along with
// the generated ID. A parent that already carries an ID keeps it.
func NewContext(parent context.Context) (context.Context, int64) {
	if id, ok := FromContext(parent); ok {
		return parent, id
	}
	id := rand.Int63()
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the correlation ID from ctx.
// It returns the ID and whether it was present.
func FromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(key{}).(int64)
	return id, ok
}
