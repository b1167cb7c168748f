// Package kv defines the durable key-value store the session store
// persists into, mirroring the browser storage contract: string keys,
// string values, a read that reports absence instead of failing.
package kv

// Store is a durable string-keyed store. Implementations must treat
// any internal read failure as absence; the session store's load path
// fails open and a corrupt or unreachable value must never be fatal.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
}
