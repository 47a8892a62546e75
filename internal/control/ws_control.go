// Package control handles the pen report protocol and cursor injection.
package control

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/frudas24/skewarea/internal/area"
	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/pipeline"
	"github.com/frudas24/skewarea/internal/session"
	"github.com/frudas24/skewarea/internal/settings"
	"github.com/frudas24/skewarea/internal/skewarea"
	"github.com/frudas24/skewarea/internal/wininput"
	"github.com/gorilla/websocket"
)

// DeviceName identifies the pen in the output driver.
const DeviceName = "pen"

// ReplyFunc sends a reply back over the transport that delivered a payload.
type ReplyFunc func(Reply) error

// Options tunes report delivery.
type Options struct {
	// Echo sends every corrected position back to the client.
	Echo bool
	// SaveSettings persists settings after a change. Optional.
	SaveSettings func(settings.Settings) error
}

// Server handles control payloads and drives the skew pipeline.
type Server struct {
	// mu serializes every pass through the pipeline.
	mu       sync.Mutex
	connMu   sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	injector wininput.Injector
	driver   *output.Driver
	filter   *skewarea.Filter
	chain    *pipeline.Chain
	pen      *PenState
	opts     Options
	reply    ReplyFunc
	conn     *websocket.Conn
}

// NewServer creates a control server. injector may be nil to disable cursor injection.
func NewServer(sess *session.Session, injector wininput.Injector, driver *output.Driver, opts Options) *Server {
	s := &Server{
		session:  sess,
		injector: injector,
		driver:   driver,
		pen:      NewPenState(),
		opts:     opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.filter = skewarea.New(driver)
	s.chain = pipeline.NewChain(s.deliver, s.filter)
	s.Sync()
	return s
}

// Filter returns the skew stage driven by the server.
func (s *Server) Filter() *skewarea.Filter {
	return s.filter
}

// Sync copies session settings into the filter and rebinds the output mode.
func (s *Server) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	reply := func(msg Reply) error {
		return s.writeTo(conn, msg)
	}
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := s.HandlePayload(data, reply); err != nil {
			log.Printf("control: %v", err)
			return
		}
	}
}

// HandlePayload decodes and dispatches a single control payload.
func (s *Server) HandlePayload(data []byte, reply ReplyFunc) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return s.handleMessage(msg, reply)
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.connMu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.connMu.Unlock()
	_ = conn.Close()
}

// writeTo writes a reply to conn while it is still the active connection.
func (s *Server) writeTo(conn *websocket.Conn, msg Reply) error {
	s.connMu.Lock()
	active := s.conn
	s.connMu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(msg Message, reply ReplyFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = reply
	defer func() { s.reply = nil }()

	switch msg.T {
	case "report":
		return s.handleReport(msg)
	case "aux":
		return s.chain.Push(&pipeline.AuxReport{Buttons: msg.Buttons})
	case "down":
		err := s.applyActions(s.pen.HandleDown(s.session.InputEnabled()))
		s.session.SetPenDown(s.pen.Down())
		return err
	case "up":
		err := s.applyActions(s.pen.HandleUp(s.session.InputEnabled()))
		s.session.SetPenDown(s.pen.Down())
		return err
	case "setAngle":
		if msg.Angle == nil {
			return nil
		}
		s.session.SetSkewAngleY(*msg.Angle)
		return s.settingsChanged()
	case "setMethod":
		s.session.SetMethod(area.Method(msg.Method))
		return s.settingsChanged()
	case "setMode":
		_, a := s.session.Output()
		s.session.SetOutput(output.ParseKind(msg.Mode), a)
		return s.settingsChanged()
	case "setArea":
		return s.handleSetArea(msg)
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil
	case "state":
		return s.sendState()
	default:
		return nil
	}
}

// handleReport maps a digitizer sample into output space and runs the pipeline.
func (s *Server) handleReport(msg Message) error {
	kind, a := s.session.Output()
	pos := geom.Point{X: msg.X, Y: msg.Y}
	if kind == output.Absolute {
		pos = NormToArea(msg.X, msg.Y, a)
	}
	return s.chain.Push(&pipeline.TabletReport{
		Position: pos,
		Pressure: msg.Pressure,
		Buttons:  msg.Buttons,
	})
}

// handleSetArea replaces the absolute area.
func (s *Server) handleSetArea(msg Message) error {
	if msg.Area == nil {
		return nil
	}
	if msg.Area.Width < 0 || msg.Area.Height < 0 {
		return fmt.Errorf("area size must be >= 0, got %vx%v", msg.Area.Width, msg.Area.Height)
	}
	kind, _ := s.session.Output()
	s.session.SetOutput(kind, geom.Area{
		Center: geom.Point{X: msg.Area.CenterX, Y: msg.Area.CenterY},
		Width:  msg.Area.Width,
		Height: msg.Area.Height,
	})
	return s.settingsChanged()
}

// settingsChanged resyncs the pipeline, persists settings and reports the new state.
func (s *Server) settingsChanged() error {
	s.syncLocked()
	if s.opts.SaveSettings != nil {
		if err := s.opts.SaveSettings(s.session.Settings()); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	return s.sendState()
}

// syncLocked applies session state to the filter and the output driver.
// An absolute mode without a usable area leaves the pen unbound.
func (s *Server) syncLocked() {
	snap := s.session.Snapshot()
	s.filter.SetSkewAngleY(snap.SkewAngleY)
	s.filter.SetMethod(snap.Method)
	if s.driver == nil {
		return
	}
	if snap.OutputMode == output.Unknown {
		s.driver.Detach(DeviceName)
		return
	}
	if snap.OutputMode == output.Absolute && snap.Area.Empty() {
		log.Printf("control: absolute area is empty, pen unbound until an area is set")
		s.driver.Detach(DeviceName)
		return
	}
	s.driver.Attach(DeviceName, output.Mode{
		Kind:     snap.OutputMode,
		Area:     snap.Area,
		Elements: s.chain.Elements(),
	})
}

// sendState replies with the current settings.
func (s *Server) sendState() error {
	if s.reply == nil {
		return nil
	}
	snap := s.session.Snapshot()
	return s.reply(Reply{
		T:      "state",
		Angle:  snap.SkewAngleY,
		Method: string(snap.Method),
		Mode:   snap.OutputMode.String(),
	})
}

// deliver receives reports leaving the pipeline. Only an absolute mode with a
// usable area moves the cursor.
func (s *Server) deliver(r pipeline.Report) error {
	report, ok := r.(*pipeline.TabletReport)
	if !ok {
		return nil
	}
	if kind, a := s.session.Output(); kind == output.Absolute && !a.Empty() {
		x, y := toPixels(report.Position)
		actions := s.pen.HandleReport(s.session.InputEnabled(), x, y, report.Pressure)
		s.session.SetPenDown(s.pen.Down())
		if err := s.applyActions(actions); err != nil {
			return err
		}
	}
	if !s.opts.Echo || s.reply == nil {
		return nil
	}
	return s.reply(Reply{
		T:     "pos",
		X:     report.Position.X,
		Y:     report.Position.Y,
		Angle: s.filter.SkewAngleY(),
	})
}

// applyActions executes actions using the injector.
func (s *Server) applyActions(actions []Action) error {
	if s.injector == nil {
		return nil
	}
	for _, action := range actions {
		if err := s.applyAction(action); err != nil {
			return err
		}
	}
	return nil
}

// applyAction executes a single action.
func (s *Server) applyAction(action Action) error {
	switch action.Type {
	case ActMove:
		return s.injector.MoveAbs(action.X, action.Y)
	case ActLeftDown:
		return s.injector.LeftDown()
	case ActLeftUp:
		return s.injector.LeftUp()
	default:
		return nil
	}
}
