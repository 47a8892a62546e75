// Package wininput moves the host cursor with corrected pen positions.
package wininput

import "errors"

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Injector defines the cursor operations used by the control layer.
type Injector interface {
	MoveAbs(x, y int) error
	LeftDown() error
	LeftUp() error
}
