// Package solver computes the DC steady-state operating point of a placed
// board: node voltages, per-element currents and per-wire-segment currents.
// Every entry point is a pure function over an element snapshot.
package solver

import (
	"math"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// Status is the outcome of a solve. All values are expected, non-fatal
// outcomes; callers degrade gracefully.
type Status string

const (
	// StatusUnsolved is the zero value; a completed SolveDC never returns it.
	StatusUnsolved Status = "unsolved"
	StatusSolved   Status = "solved"
	// StatusNoReference: the board has no terminals at all.
	StatusNoReference Status = "no_reference"
	// StatusSingular: some subnetwork is underdetermined or ill-conditioned.
	// The whole solve fails fast rather than partially succeeding.
	StatusSingular Status = "singular"
	// StatusInvalidIdealShort: a zero-resistance path directly bridges a
	// battery's terminals, which would imply infinite current.
	StatusInvalidIdealShort Status = "invalid_ideal_short"
)

type Direction string

const (
	DirectionForward Direction = "start_to_end"
	DirectionReverse Direction = "end_to_start"
)

// ElementCurrent is one element's branch current. Amps is signed: positive
// means conventional current from the element's start terminal toward its
// end terminal (for batteries, positive current exits the positive
// terminal). Direction restates the sign for the renderer.
type ElementCurrent struct {
	Amps      float64
	Direction Direction
}

// SegmentCurrent is the current through one wire polyline segment, positive
// along the polyline direction.
type SegmentCurrent struct {
	Wire    string
	Segment int
	Amps    float64
}

// Solution is a fully recomputed result; it is never mutated in place.
type Solution struct {
	Status          Status
	NodeVoltages    map[int]float64
	ElementCurrents map[string]ElementCurrent
	SegmentCurrents []SegmentCurrent
	// Reference is the node id solved as 0 V in the subnetwork containing a
	// ground terminal, else in the first solved subnetwork; -1 when nothing
	// was solved.
	Reference int
	// Nodes maps every enumerated terminal to its merged node id, for
	// consumers that need voltages per terminal (polarity checks, renderer).
	Nodes map[schematic.Terminal]int
}

// MaxElementCurrent returns the largest current magnitude over all element
// currents.
func (s *Solution) MaxElementCurrent() float64 {
	max := 0.0
	for _, c := range s.ElementCurrents {
		if a := math.Abs(c.Amps); a > max {
			max = a
		}
	}
	return max
}

func directionOf(amps float64) Direction {
	if amps < 0 {
		return DirectionReverse
	}
	return DirectionForward
}
