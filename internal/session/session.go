// Package session holds runtime state for the active controller.
package session

import (
	"sync"

	"github.com/frudas24/skewarea/internal/area"
	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/settings"
	"github.com/frudas24/skewarea/internal/skew"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	PenDown       bool
	SkewAngleY    float64
	Method        area.Method
	OutputMode    output.Kind
	Area          geom.Area
}

// Session holds runtime state for the active controller.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	penDown       bool
	skewAngleY    float64
	method        area.Method
	outputMode    output.Kind
	area          geom.Area
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
		method:       area.MethodRectangle,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether corrected positions move the host cursor.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether corrected positions move the host cursor.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetPenDown records pen contact state.
func (s *Session) SetPenDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.penDown = down
}

// PenDown reports whether the pen is in contact.
func (s *Session) PenDown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.penDown
}

// SetSkewAngleY stores the angle, clamped to the accepted range.
func (s *Session) SetSkewAngleY(deg float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skewAngleY = skew.ClampAngle(deg)
}

// SkewAngleY returns the clamped angle in degrees.
func (s *Session) SkewAngleY() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skewAngleY
}

// SetMethod sets the correction method.
func (s *Session) SetMethod(m area.Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.method = area.ParseMethod(string(m))
}

// Method returns the correction method.
func (s *Session) Method() area.Method {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.method
}

// SetOutput sets the output mode and its absolute area.
func (s *Session) SetOutput(kind output.Kind, a geom.Area) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputMode = kind
	s.area = a
}

// Output returns the output mode and its absolute area.
func (s *Session) Output() (output.Kind, geom.Area) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputMode, s.area
}

// Apply copies persisted settings into the session.
func (s *Session) Apply(st settings.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skewAngleY = skew.ClampAngle(st.SkewAngleY)
	s.method = area.ParseMethod(st.Method)
	s.outputMode = st.Kind()
	s.area = st.Area()
}

// Settings returns the persistable part of the session.
func (s *Session) Settings() settings.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := settings.Settings{
		SkewAngleY: s.skewAngleY,
		Method:     string(s.method),
		Output: settings.Output{
			CenterX: s.area.Center.X,
			CenterY: s.area.Center.Y,
			Width:   s.area.Width,
			Height:  s.area.Height,
		},
	}
	if s.outputMode != output.Unknown {
		st.Output.Mode = s.outputMode.String()
	}
	return st
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		PenDown:       s.penDown,
		SkewAngleY:    s.skewAngleY,
		Method:        s.method,
		OutputMode:    s.outputMode,
		Area:          s.area,
	}
}
