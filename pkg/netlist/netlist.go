// Package netlist turns placed board elements into the solver's primitive
// model: resistive branches and ideal voltage sources over merged
// electrical nodes.
package netlist

// Origin tags which element feature a voltage source models.
type Origin string

const (
	OriginBattery       Origin = "battery"
	OriginWireSegment   Origin = "wire_segment"
	OriginInductorShort Origin = "inductor_short"
	OriginDiodeDrop     Origin = "diode_drop"
)

// Branch is a resistive connection between two nodes.
type Branch struct {
	NodeA, NodeB int
	Ohms         float64
	Element      string
}

// Source is an ideal voltage source: V(NodePos) - V(NodeNeg) = Volts.
// Wire segments and inductor shorts are 0 V sources rather than merged
// nodes so their branch current remains individually recoverable.
type Source struct {
	NodePos, NodeNeg int
	Volts            float64
	Origin           Origin
	Element          string
	Segment          int // wire segment index, 0 otherwise
}

// Net is the solver-ready primitive netlist. NumNodes counts merged
// electrical nodes plus any internal nodes introduced by diode models.
type Net struct {
	NumNodes int
	Terms    *NodeMap
	Branches []Branch
	Sources  []Source
	// GroundNodes and BatteryNegatives are reference-node candidates in
	// element order.
	GroundNodes      []int
	BatteryNegatives []int
}
