package pipeline

import "errors"

// Position orders an element relative to the output mode transform.
type Position int

const (
	// PreTransform elements see raw digitizer coordinates.
	PreTransform Position = iota
	// PostTransform elements see output coordinates.
	PostTransform
)

// String returns a readable name for the position.
func (p Position) String() string {
	switch p {
	case PreTransform:
		return "pre"
	case PostTransform:
		return "post"
	default:
		return "unknown"
	}
}

// Element consumes reports and emits them downstream.
type Element interface {
	Consume(Report) error
	SetEmit(func(Report))
	Position() Position
}

// Sink receives the reports leaving the chain.
type Sink func(Report) error

// ErrEmptyReport is returned when a nil report is pushed.
var ErrEmptyReport = errors.New("report is required")

// Chain wires elements in order and forwards the final report to a sink.
//
// A Chain is not safe for concurrent Push calls; the owner serializes them.
type Chain struct {
	elements []Element
	sink     Sink
	out      []Report
	err      error
}

// NewChain builds a chain from elements and attaches sink at the end.
func NewChain(sink Sink, elements ...Element) *Chain {
	c := &Chain{sink: sink}
	c.elements = append(c.elements, elements...)
	c.wire()
	return c
}

// Elements returns a copy of the wired elements. The set is fixed at
// construction, so it may be read while a Push is in flight.
func (c *Chain) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Push runs report through every element and hands the result to the sink.
func (c *Chain) Push(report Report) error {
	if report == nil {
		return ErrEmptyReport
	}
	c.out = c.out[:0]
	c.err = nil
	if len(c.elements) == 0 {
		c.out = append(c.out, report)
	} else if err := c.elements[0].Consume(report); err != nil {
		return err
	}
	if c.err != nil {
		return c.err
	}
	if c.sink == nil {
		return nil
	}
	for _, r := range c.out {
		if err := c.sink(r); err != nil {
			return err
		}
	}
	return nil
}

// wire connects each element's emit to the next element's consume.
func (c *Chain) wire() {
	for i, el := range c.elements {
		if i == len(c.elements)-1 {
			el.SetEmit(c.collect)
			continue
		}
		next := c.elements[i+1]
		el.SetEmit(func(r Report) {
			if err := next.Consume(r); err != nil && c.err == nil {
				c.err = err
			}
		})
	}
}

// collect records reports that reached the end of the chain.
func (c *Chain) collect(r Report) {
	c.out = append(c.out, r)
}
