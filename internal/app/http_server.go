package app

import (
	"encoding/json"
	"net/http"

	"github.com/frudas24/skewarea/internal/area"
	"github.com/frudas24/skewarea/internal/control"
	"github.com/frudas24/skewarea/internal/output"
)

// RegisterRoutes wires the API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/skew", a.handleSkew)
	mux.Handle("/ws/signal", a.Signaling())
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type areaResponse struct {
	CenterX float64 `json:"cx"`
	CenterY float64 `json:"cy"`
	Width   float64 `json:"w"`
	Height  float64 `json:"h"`
}

type stateResponse struct {
	Authenticated bool         `json:"authenticated"`
	InputEnabled  bool         `json:"inputEnabled"`
	PenDown       bool         `json:"penDown"`
	SkewAngleY    float64      `json:"skewAngleY"`
	Method        string       `json:"method"`
	OutputMode    string       `json:"outputMode"`
	Area          areaResponse `json:"area"`
	// Bound reports whether the output driver currently holds the pen.
	Bound         bool         `json:"bound"`
}

// skewRequest updates the skew settings. Nil fields keep their value.
type skewRequest struct {
	SkewAngleY *float64 `json:"skewAngleY"`
	Method     *string  `json:"method"`
	OutputMode *string  `json:"outputMode"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the current session and skew state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	_ = json.NewEncoder(w).Encode(a.buildState())
}

// handleSkew reads or updates the skew angle, method, and output mode.
func (a *App) handleSkew(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(a.buildState())
		return
	case http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req skewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	kind, outArea := a.session.Output()
	if req.OutputMode != nil {
		kind = output.ParseKind(*req.OutputMode)
		if kind == output.Unknown {
			http.Error(w, "outputMode must be absolute or relative", http.StatusBadRequest)
			return
		}
	}
	if req.SkewAngleY != nil {
		a.session.SetSkewAngleY(*req.SkewAngleY)
	}
	if req.Method != nil {
		a.session.SetMethod(area.Method(*req.Method))
	}
	a.session.SetOutput(kind, outArea)
	a.control.Sync()

	if err := a.saveSettings(a.session.Settings()); err != nil {
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(a.buildState())
}

// buildState converts the session snapshot into the API response.
func (a *App) buildState() stateResponse {
	snap := a.session.Snapshot()
	_, bound := a.driver.Mode(control.DeviceName)
	return stateResponse{
		Authenticated: snap.Authenticated,
		InputEnabled:  snap.InputEnabled,
		PenDown:       snap.PenDown,
		SkewAngleY:    snap.SkewAngleY,
		Method:        string(snap.Method),
		OutputMode:    snap.OutputMode.String(),
		Area: areaResponse{
			CenterX: snap.Area.Center.X,
			CenterY: snap.Area.Center.Y,
			Width:   snap.Area.Width,
			Height:  snap.Area.Height,
		},
		Bound: bound,
	}
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
