package core

// Well-known keys of the local key-value store.
const (
	KVUsersKey       = "users"        // serialized registered users, passwords included
	KVCurrentUserKey = "current_user" // serialized sanitized user; absent when signed out
)

// KVStore is the local persistence boundary: a flat key-value document that
// survives restarts until explicitly cleared. An unreadable value is reported
// as absent; there is no distinct "corrupted" signal.
//
// Concurrent processes sharing the same store are not reconciled: the last
// writer wins.
type KVStore interface {
	// Get returns the raw value for key, and whether it was present and readable.
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}
