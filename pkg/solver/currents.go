package solver

import (
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/netlist"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// recoverCurrents derives every element and wire-segment current from the
// solved node voltages and source branch currents.
//
// Sign conventions: resistive branches carry (Va - Vb) / R, positive from
// start toward end. A source unknown is the current from its positive to
// its negative node through the branch, so wire segments and inductor
// shorts read it directly, while batteries flip the sign so that positive
// current exits the positive terminal.
func recoverCurrents(net *netlist.Net, elements []schematic.Element, sol *Solution, sourceCurrents []float64) {
	for _, b := range net.Branches {
		amps := (sol.NodeVoltages[b.NodeA] - sol.NodeVoltages[b.NodeB]) / b.Ohms
		sol.ElementCurrents[b.Element] = ElementCurrent{Amps: amps, Direction: directionOf(amps)}
	}

	for i, s := range net.Sources {
		switch s.Origin {
		case netlist.OriginBattery:
			amps := -sourceCurrents[i]
			sol.ElementCurrents[s.Element] = ElementCurrent{Amps: amps, Direction: directionOf(amps)}
		case netlist.OriginInductorShort:
			amps := sourceCurrents[i]
			sol.ElementCurrents[s.Element] = ElementCurrent{Amps: amps, Direction: directionOf(amps)}
		case netlist.OriginWireSegment:
			sol.SegmentCurrents = append(sol.SegmentCurrents, SegmentCurrent{
				Wire:    s.Element,
				Segment: s.Segment,
				Amps:    sourceCurrents[i],
			})
		case netlist.OriginDiodeDrop:
			// The diode's series branch already reported its current.
		}
	}

	// Open elements and degenerate primitives still get an entry so every
	// component's animation state is defined.
	for i := range elements {
		e := &elements[i]
		if !e.IsTwoTerminal() {
			continue
		}
		if _, ok := sol.ElementCurrents[e.ID]; !ok {
			sol.ElementCurrents[e.ID] = ElementCurrent{Amps: 0, Direction: DirectionForward}
		}
	}
}
