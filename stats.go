package sharedstore

import (
	"encoding/json"
	"sync/atomic"
)

// Stats is a point-in-time snapshot of store counters.
type Stats struct {
	Sets                  uint64 `json:"sets"`                   // successful Set calls
	Hits                  uint64 `json:"hits"`                   // Get found the key
	Misses                uint64 `json:"misses"`                 // Get on an unknown key
	Materializations      uint64 `json:"materializations"`       // successful decodes of stored text
	MaterializeRaces      uint64 `json:"materialize_races"`      // decodes discarded because another reader published first
	SerializationErrors   uint64 `json:"serialization_errors"`   // Set rejected by the codec
	DeserializationErrors uint64 `json:"deserialization_errors"` // Get failed to decode
	Deletes               uint64 `json:"deletes"`                // Delete removed an entry
	Clears                uint64 `json:"clears"`
}

// String encodes the Stats as JSON.
func (s Stats) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}

type counters struct {
	sets, hits, misses      atomic.Uint64
	materializations, races atomic.Uint64
	serErrors, deserErrors  atomic.Uint64
	deletes, clears         atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Sets:                  c.sets.Load(),
		Hits:                  c.hits.Load(),
		Misses:                c.misses.Load(),
		Materializations:      c.materializations.Load(),
		MaterializeRaces:      c.races.Load(),
		SerializationErrors:   c.serErrors.Load(),
		DeserializationErrors: c.deserErrors.Load(),
		Deletes:               c.deletes.Load(),
		Clears:                c.clears.Load(),
	}
}
