package sharedstore

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths, after releasing the table lock.
type Hooks interface {
	// Two first readers decoded the same entry concurrently.
	// The caller's value was discarded in favour of the published one.
	MaterializeRace(key string)

	// Set installed a new entry over an existing one.
	EntryReplaced(key string)

	// Clear detached removed entries.
	StoreCleared(removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) MaterializeRace(string) {}
func (NopHooks) EntryReplaced(string)   {}
func (NopHooks) StoreCleared(int)       {}
