package control

import "testing"

// TestPen_FirstReportMoves verifies the first report always moves the cursor.
func TestPen_FirstReportMoves(t *testing.T) {
	p := NewPenState()
	actions := p.HandleReport(true, 0, 0, 0)
	if len(actions) != 1 || actions[0] != (Action{Type: ActMove}) {
		t.Fatalf("unexpected actions %#v", actions)
	}
}

// TestPen_SkipsSamePixel verifies repeated pixels do not produce moves.
func TestPen_SkipsSamePixel(t *testing.T) {
	p := NewPenState()
	p.HandleReport(true, 10, 20, 0)
	if actions := p.HandleReport(true, 10, 20, 0); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

// TestPen_PressureTransitions verifies pressure edges press and release the button.
func TestPen_PressureTransitions(t *testing.T) {
	p := NewPenState()
	actions := p.HandleReport(true, 5, 6, 300)
	if len(actions) != 2 || actions[1].Type != ActLeftDown || !p.Down() {
		t.Fatalf("expected move+down, got %#v", actions)
	}
	actions = p.HandleReport(true, 7, 6, 250)
	if len(actions) != 1 || actions[0].Type != ActMove {
		t.Fatalf("expected move only while drawing, got %#v", actions)
	}
	actions = p.HandleReport(true, 7, 6, 0)
	if len(actions) != 1 || actions[0] != (Action{Type: ActLeftUp, X: 7, Y: 6}) || p.Down() {
		t.Fatalf("expected up, got %#v", actions)
	}
}

// TestPen_ExplicitDownUp verifies explicit contact messages are idempotent.
func TestPen_ExplicitDownUp(t *testing.T) {
	p := NewPenState()
	p.HandleReport(true, 3, 4, 0)
	if actions := p.HandleDown(true); len(actions) != 1 || actions[0] != (Action{Type: ActLeftDown, X: 3, Y: 4}) {
		t.Fatalf("unexpected down actions %#v", actions)
	}
	if actions := p.HandleDown(true); len(actions) != 0 {
		t.Fatalf("expected second down to be ignored, got %#v", actions)
	}
	if actions := p.HandleUp(true); len(actions) != 1 || actions[0].Type != ActLeftUp {
		t.Fatalf("unexpected up actions %#v", actions)
	}
}

// TestPen_InputDisabled verifies disabled input produces no actions.
func TestPen_InputDisabled(t *testing.T) {
	p := NewPenState()
	if actions := p.HandleReport(false, 1, 1, 100); actions != nil {
		t.Fatalf("expected nil actions, got %#v", actions)
	}
	if actions := p.HandleDown(false); actions != nil {
		t.Fatalf("expected nil actions, got %#v", actions)
	}
}
