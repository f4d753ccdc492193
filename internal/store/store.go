// Package store holds the key-value persistence used for state that outlives
// a viewing session (hint counters, last visited page).
package store

import "errors"

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store: closed")

// Store is a string key-value store surviving across sessions
type Store interface {
	// Get returns the value and whether the key was present
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
