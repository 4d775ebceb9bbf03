package flow

import "sync"

// Items is the cross-step key/value store carried by a Context. Unlike the
// rest of the Context it is shared by reference across derivations: a value
// stored by one step is visible to every later step in the same run.
//
// Items is safe for concurrent use so that probe callbacks and parallel
// sub-flows sharing a store do not race.
type Items struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewItems returns an empty store.
func NewItems() *Items {
	return &Items{m: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
func (i *Items) Set(key, value string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.m[key] = value
}

// Get returns the value stored under key, or the empty string when absent.
func (i *Items) Get(key string) string {
	v, _ := i.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether it was present.
func (i *Items) Lookup(key string) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	v, ok := i.m[key]
	return v, ok
}

// Delete removes key from the store.
func (i *Items) Delete(key string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.m, key)
}

// Len reports the number of stored keys.
func (i *Items) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.m)
}

// Snapshot returns a copy of the current contents.
func (i *Items) Snapshot() map[string]string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	out := make(map[string]string, len(i.m))
	for k, v := range i.m {
		out[k] = v
	}
	return out
}
