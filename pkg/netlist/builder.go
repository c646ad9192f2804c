package netlist

import (
	"github.com/Mitchelllorin/CircuiTry3D-sub001/internal/consts"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// Build merges terminals and maps every element to its netlist primitives.
//
// Modeling rules:
//   - resistor/lamp: one resistive branch, label value with per-kind default
//   - battery: one source, start negative, end positive, default 9 V
//   - wire: one 0 V source per polyline segment
//   - inductor: one 0 V source (DC steady state: a short)
//   - capacitor/switch: nothing (DC steady state: open)
//   - diode/LED: fixed forward drop source in series with a small
//     resistance through an internal node (always assumes forward
//     conduction; the validator reports reverse bias afterward)
//
// Degenerate primitives whose endpoints merged into one node are dropped.
func Build(elements []schematic.Element, tolerance float64) *Net {
	terms := MergeTerminals(elements, tolerance)
	net := &Net{
		NumNodes: terms.NumNodes(),
		Terms:    terms,
	}

	for i := range elements {
		e := &elements[i]
		switch e.Kind {
		case schematic.KindResistor:
			net.addBranch(e, resistance(e.Label, consts.DefaultResistorOhms))
		case schematic.KindLamp:
			net.addBranch(e, resistance(e.Label, consts.DefaultLampOhms))
		case schematic.KindBattery:
			net.addBattery(e)
		case schematic.KindWire:
			net.addWire(e)
		case schematic.KindInductor:
			net.addInductor(e)
		case schematic.KindDiode:
			net.addDiode(e, consts.DiodeDropVolts, consts.DiodeSeriesOhms)
		case schematic.KindLed:
			net.addDiode(e, consts.LedDropVolts, consts.LedSeriesOhms)
		case schematic.KindGround:
			if n := net.Terms.Node(schematic.Terminal{Element: e.ID, Pin: 0}); n >= 0 {
				net.GroundNodes = append(net.GroundNodes, n)
			}
		}
		// Capacitors and switches are open at DC. Transistors are out of
		// scope. Neither emits a primitive.
	}
	return net
}

func (net *Net) endpoints(e *schematic.Element) (int, int, bool) {
	a := net.Terms.Node(schematic.Terminal{Element: e.ID, Pin: 0})
	b := net.Terms.Node(schematic.Terminal{Element: e.ID, Pin: 1})
	return a, b, a >= 0 && b >= 0
}

func (net *Net) addBranch(e *schematic.Element, ohms float64) {
	a, b, ok := net.endpoints(e)
	if !ok || a == b {
		return
	}
	net.Branches = append(net.Branches, Branch{NodeA: a, NodeB: b, Ohms: ohms, Element: e.ID})
}

func (net *Net) addBattery(e *schematic.Element) {
	neg, pos, ok := net.endpoints(e)
	if !ok {
		return
	}
	volts := consts.DefaultBatteryVolts
	if v, parsed := schematic.ParseLabel(e.Label); parsed {
		volts = v.Magnitude
	}
	// A battery with coincident terminals is still emitted; the ideal-short
	// guard rejects it before any factorization.
	net.Sources = append(net.Sources, Source{
		NodePos: pos, NodeNeg: neg, Volts: volts,
		Origin: OriginBattery, Element: e.ID,
	})
	net.BatteryNegatives = append(net.BatteryNegatives, neg)
}

func (net *Net) addWire(e *schematic.Element) {
	pts := e.TerminalPoints()
	for seg := 0; seg+1 < len(pts); seg++ {
		a := net.Terms.Node(schematic.Terminal{Element: e.ID, Pin: seg})
		b := net.Terms.Node(schematic.Terminal{Element: e.ID, Pin: seg + 1})
		if a < 0 || b < 0 || a == b {
			continue // zero-length segment
		}
		net.Sources = append(net.Sources, Source{
			NodePos: a, NodeNeg: b,
			Origin: OriginWireSegment, Element: e.ID, Segment: seg,
		})
	}
}

func (net *Net) addInductor(e *schematic.Element) {
	a, b, ok := net.endpoints(e)
	if !ok || a == b {
		return
	}
	net.Sources = append(net.Sources, Source{
		NodePos: a, NodeNeg: b,
		Origin: OriginInductorShort, Element: e.ID,
	})
}

func (net *Net) addDiode(e *schematic.Element, drop, seriesOhms float64) {
	anode, cathode, ok := net.endpoints(e)
	if !ok || anode == cathode {
		return
	}
	mid := net.NumNodes
	net.NumNodes++
	net.Sources = append(net.Sources, Source{
		NodePos: anode, NodeNeg: mid, Volts: drop,
		Origin: OriginDiodeDrop, Element: e.ID,
	})
	net.Branches = append(net.Branches, Branch{NodeA: mid, NodeB: cathode, Ohms: seriesOhms, Element: e.ID})
}

func resistance(label string, fallback float64) float64 {
	v, ok := schematic.ParseLabel(label)
	if !ok || v.Magnitude <= 0 {
		return fallback
	}
	return v.Magnitude
}
