// Package sharedstore implements a process-wide, concurrency-safe object store.
// Values are serialized once on write and materialized lazily on the first read
// of each entry; later reads reuse that materialized value.
//
// Components:
//   - Store[V]: string-keyed table guarded by a sync.RWMutex.
//   - Codec[V]: (de)serializes V <-> []byte. JSON is the canonical textual form.
//   - Hooks/Logger: optional observability, no-op by default.
//
// Entries are never mutated after a write except for their one-time
// Pending -> Ready transition. Set on an existing key installs a new entry and
// Clear detaches every entry; readers that already hold an entry keep using it.
//
// Read path:
//
//	lookup under RLock -> release -> value published? return it
//	                              -> decode serialized text -> CAS publish -> return
//
// Two first readers may both decode the same entry. Only one value is
// published and both callers return it. Set Options.ExactlyOnce to decode
// under a per-entry lock instead.
package sharedstore
