package testutil

import "github.com/frudas24/skewarea/internal/output"

// FakeResolver returns a fixed snapshot and counts lookups.
type FakeResolver struct {
	Snapshot *output.Snapshot
	Err      error
	Lookups  int
	LastSelf any
}

// LookupOutputMode records the call and returns the configured values.
func (f *FakeResolver) LookupOutputMode(self any) (*output.Snapshot, error) {
	f.Lookups++
	f.LastSelf = self
	return f.Snapshot, f.Err
}
