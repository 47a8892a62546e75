package signaling

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestProtocol_Offer verifies decoding an offer message.
func TestProtocol_Offer(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"offer","sdp":"v=0"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "offer" || msg.SDP != "v=0" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_ICE verifies decoding an ICE candidate message.
func TestProtocol_ICE(t *testing.T) {
	var msg Message
	payload := `{"t":"ice","candidate":{"candidate":"candidate:1 1 UDP 2122252543 192.0.2.3 54400 typ host"}}`
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "ice" || msg.Candidate == nil || msg.Candidate.Candidate == "" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_AnswerOmitsCandidate verifies answers encode without an empty candidate.
func TestProtocol_AnswerOmitsCandidate(t *testing.T) {
	data, err := json.Marshal(Message{T: "answer", SDP: "v=0"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"answer","sdp":"v=0"}` {
		t.Fatalf("unexpected payload %s", data)
	}
}

// TestHandleMessage_Bye verifies bye ends the loop and unknown types are ignored.
func TestHandleMessage_Bye(t *testing.T) {
	s := NewServer(nil, PeerReject, nil)
	if err := s.handleMessage(nil, nil, Message{T: "bye"}); !errors.Is(err, errClosed) {
		t.Fatalf("expected errClosed, got %v", err)
	}
	if err := s.handleMessage(nil, nil, Message{T: "noise"}); err != nil {
		t.Fatalf("expected unknown type to be ignored, got %v", err)
	}
	if err := s.handleMessage(nil, nil, Message{T: "ice"}); err != nil {
		t.Fatalf("expected nil candidate to be ignored, got %v", err)
	}
}

// TestServeHTTP_Unauthorized verifies the upgrade is refused without a session.
func TestServeHTTP_Unauthorized(t *testing.T) {
	s := NewServer(nil, PeerReject, func() bool { return false })
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/signal", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
