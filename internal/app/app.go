// Package app wires HTTP, signaling, and the skew pipeline together.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/frudas24/skewarea/internal/config"
	"github.com/frudas24/skewarea/internal/control"
	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/session"
	"github.com/frudas24/skewarea/internal/settings"
	"github.com/frudas24/skewarea/internal/signaling"
	"github.com/frudas24/skewarea/internal/webrtc"
	"github.com/frudas24/skewarea/internal/wininput"
)

// App coordinates the HTTP API, websocket servers, and report pipeline.
type App struct {
	// saveMu serializes writes to the settings file.
	saveMu    sync.Mutex
	cfg       config.Config
	session   *session.Session
	driver    *output.Driver
	receiver  *webrtc.Receiver
	signaling *signaling.Server
	control   *control.Server
}

// New creates a new application with its dependencies wired. injector may be nil.
func New(cfg config.Config, sess *session.Session, injector wininput.Injector, policy signaling.PeerPolicy) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		driver:  output.NewDriver(),
	}
	app.control = control.NewServer(sess, injector, app.driver, control.Options{
		Echo:         cfg.EchoReports,
		SaveSettings: app.saveSettings,
	})

	receiver, err := webrtc.NewReceiver(app.handleChannelPayload)
	if err != nil {
		return nil, err
	}
	app.receiver = receiver
	app.signaling = signaling.NewServer(receiver, policy, sess.IsAuthenticated)

	return app, nil
}

// Start loads persisted settings, applies environment overrides and binds the output mode.
func (a *App) Start() error {
	st, err := settings.Load(a.cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if st.Output.Mode == "" {
		st.Output.Mode = a.cfg.OutputMode.String()
	}
	if a.cfg.HasSkewAngle {
		st.SkewAngleY = a.cfg.SkewAngleY
	}
	a.session.Apply(st)
	a.control.Sync()

	snap := a.session.Snapshot()
	log.Printf("skew: angle=%.2f method=%s mode=%s", snap.SkewAngleY, snap.Method, snap.OutputMode)
	return nil
}

// Stop closes the peer connection and unbinds the pen from the output driver.
func (a *App) Stop() error {
	a.receiver.ClosePeer()
	a.driver.Detach(control.DeviceName)
	return nil
}

// Signaling returns the signaling websocket handler.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Driver returns the output driver that owns the pen's mode.
func (a *App) Driver() *output.Driver {
	return a.driver
}

// handleChannelPayload feeds a data channel payload into the control server.
func (a *App) handleChannelPayload(data []byte, send webrtc.SendFunc) error {
	return a.control.HandlePayload(data, func(reply control.Reply) error {
		payload, err := json.Marshal(reply)
		if err != nil {
			return err
		}
		return send(payload)
	})
}

// saveSettings persists the given settings to the configured path.
func (a *App) saveSettings(st settings.Settings) error {
	if a.cfg.SettingsPath == "" {
		return nil
	}
	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	return settings.Save(a.cfg.SettingsPath, st)
}
