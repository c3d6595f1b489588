package sharedstore

import (
	"encoding/json"
	"testing"
)

func TestStatsStringIsJSON(t *testing.T) {
	var ctr counters
	ctr.sets.Add(2)
	ctr.races.Add(1)

	var got map[string]uint64
	if err := json.Unmarshal([]byte(ctr.snapshot().String()), &got); err != nil {
		t.Fatalf("Stats.String is not JSON: %v", err)
	}
	if got["sets"] != 2 || got["materialize_races"] != 1 || got["hits"] != 0 {
		t.Fatalf("unexpected stats %v", got)
	}
}
