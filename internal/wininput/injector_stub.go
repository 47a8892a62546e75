//go:build !windows

// Package wininput moves the host cursor with corrected pen positions.
package wininput

// NoopInjector is a placeholder injector for non-Windows builds.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on non-Windows platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (n *NoopInjector) MoveAbs(x, y int) error {
	_ = x
	_ = y
	return ErrUnsupported
}

// LeftDown returns ErrUnsupported.
func (n *NoopInjector) LeftDown() error {
	return ErrUnsupported
}

// LeftUp returns ErrUnsupported.
func (n *NoopInjector) LeftUp() error {
	return ErrUnsupported
}
