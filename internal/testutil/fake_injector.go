// Package testutil provides fakes shared by package tests.
package testutil

import "github.com/frudas24/skewarea/internal/wininput"

// Call records a single injected action.
type Call struct {
	Name string
	X    int
	Y    int
}

// FakeInjector implements wininput.Injector and records calls for tests.
type FakeInjector struct {
	Calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ wininput.Injector = (*FakeInjector)(nil)

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	f.Calls = append(f.Calls, Call{Name: "MoveAbs", X: x, Y: y})
	return f.Err
}

// LeftDown records a left mouse down.
func (f *FakeInjector) LeftDown() error {
	f.Calls = append(f.Calls, Call{Name: "LeftDown"})
	return f.Err
}

// LeftUp records a left mouse up.
func (f *FakeInjector) LeftUp() error {
	f.Calls = append(f.Calls, Call{Name: "LeftUp"})
	return f.Err
}
