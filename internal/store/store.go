// Package store provides the persistent key-value adapter backing the
// MediMind account records. Values are JSON documents keyed by a small
// fixed set of record names; the adapter itself is schema-agnostic.
package store

// Well-known record keys. The on-disk layout mirrors the original
// browser-local records: a JSON array of users under one key and a
// detached copy of the logged-in user under another.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)

// Store is a synchronous, always-available key-value store. Get reports
// absence via the bool, not an error; absence is a normal state (for
// example, no user has ever logged in).
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
