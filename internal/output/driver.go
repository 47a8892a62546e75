package output

import (
	"errors"
	"sort"
	"sync"

	"github.com/frudas24/skewarea/internal/pipeline"
)

// ErrNoDriver is returned when a lookup runs against a missing driver.
var ErrNoDriver = errors.New("output driver is not attached")

// Driver holds the active output mode for each device.
type Driver struct {
	mu    sync.RWMutex
	modes map[string]Mode
}

// NewDriver returns an empty driver.
func NewDriver() *Driver {
	return &Driver{modes: make(map[string]Mode)}
}

// Attach binds mode to device, replacing any previous binding.
func (d *Driver) Attach(device string, mode Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modes == nil {
		d.modes = make(map[string]Mode)
	}
	mode.Elements = append([]pipeline.Element(nil), mode.Elements...)
	d.modes[device] = mode
}

// Detach removes the binding for device.
func (d *Driver) Detach(device string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.modes, device)
}

// Mode returns the mode bound to device.
func (d *Driver) Mode(device string) (Mode, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.modes[device]
	return m, ok
}

// LookupOutputMode returns the snapshot of the mode whose elements contain self.
// A nil snapshot means no attached mode drives self yet.
func (d *Driver) LookupOutputMode(self any) (*Snapshot, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	devices := make([]string, 0, len(d.modes))
	for device := range d.modes {
		devices = append(devices, device)
	}
	sort.Strings(devices)
	for _, device := range devices {
		m := d.modes[device]
		if m.contains(self) {
			snap := m.Snapshot()
			return &snap, nil
		}
	}
	return nil, nil
}
