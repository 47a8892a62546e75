// Package control handles the pen report protocol and cursor injection.
package control

const minMoveDelta = 1

// PenState tracks contact and the last injected cursor position.
type PenState struct {
	down  bool
	moved bool
	lastX int
	lastY int
}

// NewPenState returns a pen tracker with the pen lifted.
func NewPenState() *PenState {
	return &PenState{}
}

// Down reports whether the pen is in contact.
func (p *PenState) Down() bool {
	return p.down
}

// HandleReport turns a corrected position and pressure into cursor actions.
func (p *PenState) HandleReport(inputEnabled bool, x, y int, pressure uint32) []Action {
	if !inputEnabled {
		return nil
	}
	var actions []Action
	if !p.moved || abs(x-p.lastX) >= minMoveDelta || abs(y-p.lastY) >= minMoveDelta {
		p.moved = true
		p.lastX = x
		p.lastY = y
		actions = append(actions, Action{Type: ActMove, X: x, Y: y})
	}
	switch {
	case pressure > 0 && !p.down:
		actions = append(actions, p.press(x, y)...)
	case pressure == 0 && p.down:
		actions = append(actions, p.release(x, y)...)
	}
	return actions
}

// HandleDown forces pen contact.
func (p *PenState) HandleDown(inputEnabled bool) []Action {
	if !inputEnabled || p.down {
		return nil
	}
	return p.press(p.lastX, p.lastY)
}

// HandleUp forces a pen lift.
func (p *PenState) HandleUp(inputEnabled bool) []Action {
	if !inputEnabled || !p.down {
		return nil
	}
	return p.release(p.lastX, p.lastY)
}

func (p *PenState) press(x, y int) []Action {
	p.down = true
	return []Action{{Type: ActLeftDown, X: x, Y: y}}
}

func (p *PenState) release(x, y int) []Action {
	p.down = false
	return []Action{{Type: ActLeftUp, X: x, Y: y}}
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
