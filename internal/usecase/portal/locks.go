package portal

import "sync"

// keyedLocks serializes operations on a single session without blocking
// unrelated sessions. Entries are refcounted so the map does not grow with
// session churn.
type keyedLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// lock acquires the lock for key and returns its release func.
func (k *keyedLocks) lock(key string) func() {
	k.mu.Lock()

	if k.entries == nil {
		k.entries = make(map[string]*lockEntry)
	}

	entry, ok := k.entries[key]
	if !ok {
		entry = &lockEntry{}
		k.entries[key] = entry
	}

	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--

		if entry.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
