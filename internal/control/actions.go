// Package control handles the pen report protocol and cursor injection.
package control

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the mouse cursor.
	ActMove ActionType = "move"
	// ActLeftDown presses the left mouse button.
	ActLeftDown ActionType = "left_down"
	// ActLeftUp releases the left mouse button.
	ActLeftUp ActionType = "left_up"
)

// Action describes a cursor operation to apply.
type Action struct {
	Type ActionType
	X    int
	Y    int
}
