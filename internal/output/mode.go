// Package output tracks which output mode governs each pipeline element.
package output

import (
	"strings"

	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/pipeline"
)

// Kind identifies how pen positions are mapped to the screen.
type Kind int

const (
	// Unknown means the mode is not resolved yet.
	Unknown Kind = iota
	// Absolute maps the pen onto a fixed area.
	Absolute
	// Relative moves the cursor by deltas and has no fixed area.
	Relative
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return "unknown"
	}
}

// ParseKind maps a name to a Kind. Unrecognized names yield Unknown.
func ParseKind(value string) Kind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "absolute", "abs":
		return Absolute
	case "relative", "rel":
		return Relative
	default:
		return Unknown
	}
}

// Snapshot is a read-only view of an output mode.
type Snapshot struct {
	Kind Kind
	Area geom.Area
}

// Mode is an output mode together with the elements it drives.
type Mode struct {
	Kind     Kind
	Area     geom.Area
	Elements []pipeline.Element
}

// Snapshot returns the read-only part of the mode.
func (m Mode) Snapshot() Snapshot {
	return Snapshot{Kind: m.Kind, Area: m.Area}
}

// contains reports whether el is one of the mode's elements, by identity.
// Elements are expected to be pointers.
func (m Mode) contains(el any) bool {
	for _, candidate := range m.Elements {
		if any(candidate) == el {
			return true
		}
	}
	return false
}
