package control

import (
	"encoding/json"
	"testing"
)

// TestProtocol_Report verifies decoding a report message.
func TestProtocol_Report(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"report","x":0.5,"y":0.2,"pressure":300,"buttons":[true,false]}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "report" || msg.X != 0.5 || msg.Y != 0.2 || msg.Pressure != 300 || len(msg.Buttons) != 2 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_SetAngle verifies an explicit zero angle is distinguishable from a missing one.
func TestProtocol_SetAngle(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"setAngle","angle":0}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Angle == nil || *msg.Angle != 0 {
		t.Fatalf("expected explicit zero angle, got %+v", msg)
	}
}

// TestProtocol_SetArea verifies decoding an area message.
func TestProtocol_SetArea(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"setArea","area":{"cx":960,"cy":540,"w":1920,"h":1080}}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Area == nil || *msg.Area != (Area{CenterX: 960, CenterY: 540, Width: 1920, Height: 1080}) {
		t.Fatalf("unexpected message: %+v", msg)
	}
}
