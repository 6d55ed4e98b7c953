// Package storage provides the key-value store backing all persisted
// personalization state: user behavior, experiments, the results log,
// page configs, and the session id. Values are whole serialized blobs;
// callers read, modify, and write them back in full.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed blob store.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any existing value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
