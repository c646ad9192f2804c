package schematic

import "math"

// Point is a 2D board coordinate. Positions are freehand, so equality is
// always tolerance-based; see netlist.MergeTerminals.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dz*dz)
}

type Kind string

const (
	KindResistor  Kind = "resistor"
	KindBattery   Kind = "battery"
	KindCapacitor Kind = "capacitor"
	KindInductor  Kind = "inductor"
	KindLamp      Kind = "lamp"
	KindSwitch    Kind = "switch"
	KindDiode     Kind = "diode"
	KindLed       Kind = "led"
	KindWire      Kind = "wire"
	KindGround    Kind = "ground"

	// KindTransistor exists in the board data model but is neither solved
	// nor validated. Three-terminal devices are out of scope for the DC
	// engine; the enumerator skips them.
	KindTransistor Kind = "transistor"
)

// Element is one placed board item. Two-terminal kinds use Points[0]
// (start) and Points[1] (end), wires use the whole polyline, grounds use
// Points[0] only.
//
// Polarity conventions: battery start is the negative terminal and end the
// positive one; diode/LED start is the anode; a polarized capacitor's end
// is its positive plate.
type Element struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Label       string  `json:"label,omitempty"`
	Orientation string  `json:"orientation,omitempty"`
	Points      []Point `json:"points"`
}

// Terminal identifies one electrical terminal of an element. Pin is the
// index into the element's terminal list: 0/1 for two-terminal elements,
// the vertex index for wires, 0 for grounds.
type Terminal struct {
	Element string
	Pin     int
}

func (e *Element) Start() Point { return e.Points[0] }
func (e *Element) End() Point   { return e.Points[1] }

func (e *Element) IsTwoTerminal() bool {
	switch e.Kind {
	case KindResistor, KindBattery, KindCapacitor, KindInductor,
		KindLamp, KindSwitch, KindDiode, KindLed:
		return true
	}
	return false
}

// IsLoad reports whether the element counts as a load component for the
// validator: any two-terminal component that is not a power source.
func (e *Element) IsLoad() bool {
	return e.IsTwoTerminal() && e.Kind != KindBattery
}

// TerminalPoints returns the element's electrical terminals in pin order.
// Three-terminal elements return nil: they are not part of the DC model.
func (e *Element) TerminalPoints() []Point {
	switch e.Kind {
	case KindWire:
		if len(e.Points) < 2 {
			return nil
		}
		return e.Points
	case KindGround:
		if len(e.Points) < 1 {
			return nil
		}
		return e.Points[:1]
	case KindTransistor:
		return nil
	default:
		if !e.IsTwoTerminal() || len(e.Points) < 2 {
			return nil
		}
		return e.Points[:2]
	}
}
