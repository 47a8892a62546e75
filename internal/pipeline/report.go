// Package pipeline carries device reports through an ordered chain of elements.
package pipeline

import "github.com/frudas24/skewarea/internal/geom"

// Report is a single sample produced by a device.
type Report interface {
	isReport()
}

// TabletReport is a pen sample carrying a position.
type TabletReport struct {
	Position geom.Point
	Pressure uint32
	Buttons  []bool
}

// AuxReport carries auxiliary button state and no position.
type AuxReport struct {
	Buttons []bool
}

func (*TabletReport) isReport() {}
func (*AuxReport) isReport()    {}
