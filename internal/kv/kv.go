// Package kv defines the persistence port for the record store: a durable
// key to string mapping. Collections are mirrored to it as whole JSON
// arrays, one key per collection.
package kv

import "context"

// Store is implemented by each storage backend.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent;
	// absence is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
