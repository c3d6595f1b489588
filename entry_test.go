package sharedstore

import "testing"

func TestEntryPublishOnce(t *testing.T) {
	e := newEntry[string](`"x"`, 1)
	if _, ok := e.ready(); ok {
		t.Fatalf("new entry should be pending")
	}

	first, second := "first", "second"
	got, won := e.publish(&first)
	if !won || got != &first {
		t.Fatalf("first publish should win")
	}
	got, won = e.publish(&second)
	if won || got != &first {
		t.Fatalf("second publish must return the first value, got %q won=%v", *got, won)
	}
	if v, ok := e.ready(); !ok || *v != "first" {
		t.Fatalf("ready() = %v, %v", v, ok)
	}
}
