package netlist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

func TestBuildBattery(t *testing.T) {
	elements := []schematic.Element{battery("B1", "10V", pt(0, 0), pt(0, 2))}
	net := Build(elements, 0.6)

	require.Len(t, net.Sources, 1)
	s := net.Sources[0]
	require.Equal(t, OriginBattery, s.Origin)
	require.Equal(t, "B1", s.Element)
	require.InDelta(t, 10.0, s.Volts, 1e-9)
	require.Equal(t, net.Terms.Node(term("B1", 0)), s.NodeNeg)
	require.Equal(t, net.Terms.Node(term("B1", 1)), s.NodePos)
	require.Equal(t, []int{s.NodeNeg}, net.BatteryNegatives)
}

func TestBuildBatteryDefaultVoltage(t *testing.T) {
	elements := []schematic.Element{battery("B1", "AA cell", pt(0, 0), pt(0, 2))}
	net := Build(elements, 0.6)

	require.Len(t, net.Sources, 1)
	require.InDelta(t, 9.0, net.Sources[0].Volts, 1e-9)
}

func TestBuildResistiveValues(t *testing.T) {
	cases := []struct {
		kind  schematic.Kind
		label string
		want  float64
	}{
		{schematic.KindResistor, "4.7k", 4700},
		{schematic.KindResistor, "", 100},
		{schematic.KindResistor, "-5", 100}, // non-positive falls back
		{schematic.KindLamp, "25", 25},
		{schematic.KindLamp, "bulb", 10},
	}
	for _, tc := range cases {
		elements := []schematic.Element{{
			ID: "X1", Kind: tc.kind, Label: tc.label,
			Points: []schematic.Point{pt(0, 0), pt(2, 0)},
		}}
		net := Build(elements, 0.6)
		require.Len(t, net.Branches, 1, "%s %q", tc.kind, tc.label)
		require.InDelta(t, tc.want, net.Branches[0].Ohms, 1e-9, "%s %q", tc.kind, tc.label)
	}
}

func TestBuildDegenerateBranchDropped(t *testing.T) {
	elements := []schematic.Element{resistor("R1", "100", pt(0, 0), pt(0.3, 0))}
	net := Build(elements, 0.6)

	require.Equal(t, 1, net.NumNodes)
	require.Empty(t, net.Branches)
}

func TestBuildWireSegments(t *testing.T) {
	elements := []schematic.Element{wire("W1", pt(0, 0), pt(2, 0), pt(2, 2))}
	net := Build(elements, 0.6)

	require.Len(t, net.Sources, 2)
	for seg, s := range net.Sources {
		require.Equal(t, OriginWireSegment, s.Origin)
		require.Equal(t, "W1", s.Element)
		require.Equal(t, seg, s.Segment)
		require.Zero(t, s.Volts)
		require.Equal(t, net.Terms.Node(term("W1", seg)), s.NodePos)
		require.Equal(t, net.Terms.Node(term("W1", seg+1)), s.NodeNeg)
	}
}

func TestBuildWireSkipsZeroLengthSegment(t *testing.T) {
	elements := []schematic.Element{wire("W1", pt(0, 0), pt(0.2, 0), pt(2, 0))}
	net := Build(elements, 0.6)

	require.Len(t, net.Sources, 1)
	require.Equal(t, 1, net.Sources[0].Segment)
}

func TestBuildInductorIsShort(t *testing.T) {
	elements := []schematic.Element{{
		ID: "L1", Kind: schematic.KindInductor,
		Points: []schematic.Point{pt(0, 0), pt(2, 0)},
	}}
	net := Build(elements, 0.6)

	require.Empty(t, net.Branches)
	require.Len(t, net.Sources, 1)
	require.Equal(t, OriginInductorShort, net.Sources[0].Origin)
	require.Zero(t, net.Sources[0].Volts)
}

func TestBuildCapacitorAndSwitchAreOpen(t *testing.T) {
	elements := []schematic.Element{
		{ID: "C1", Kind: schematic.KindCapacitor, Points: []schematic.Point{pt(0, 0), pt(2, 0)}},
		{ID: "S1", Kind: schematic.KindSwitch, Points: []schematic.Point{pt(4, 0), pt(6, 0)}},
	}
	net := Build(elements, 0.6)

	require.Empty(t, net.Branches)
	require.Empty(t, net.Sources)
	require.Equal(t, 4, net.NumNodes)
}

func TestBuildDiodeModel(t *testing.T) {
	elements := []schematic.Element{{
		ID: "D1", Kind: schematic.KindDiode,
		Points: []schematic.Point{pt(0, 0), pt(2, 0)},
	}}
	net := Build(elements, 0.6)

	// Two merged terminals plus the internal node between drop and series
	// resistance.
	require.Equal(t, 3, net.NumNodes)
	require.Len(t, net.Sources, 1)
	require.Len(t, net.Branches, 1)

	s := net.Sources[0]
	require.Equal(t, OriginDiodeDrop, s.Origin)
	require.InDelta(t, 0.7, s.Volts, 1e-9)
	require.Equal(t, net.Terms.Node(term("D1", 0)), s.NodePos)
	require.Equal(t, 2, s.NodeNeg)

	b := net.Branches[0]
	require.Equal(t, 2, b.NodeA)
	require.Equal(t, net.Terms.Node(term("D1", 1)), b.NodeB)
	require.InDelta(t, 10.0, b.Ohms, 1e-9)
}

func TestBuildLedModel(t *testing.T) {
	elements := []schematic.Element{{
		ID: "D1", Kind: schematic.KindLed,
		Points: []schematic.Point{pt(0, 0), pt(2, 0)},
	}}
	net := Build(elements, 0.6)

	require.Len(t, net.Sources, 1)
	require.InDelta(t, 2.0, net.Sources[0].Volts, 1e-9)
	require.Len(t, net.Branches, 1)
	require.InDelta(t, 50.0, net.Branches[0].Ohms, 1e-9)
}

func TestBuildGroundNodes(t *testing.T) {
	elements := []schematic.Element{
		battery("B1", "9V", pt(0, 0), pt(0, 2)),
		{ID: "G1", Kind: schematic.KindGround, Points: []schematic.Point{pt(0, 0)}},
	}
	net := Build(elements, 0.6)

	require.Equal(t, []int{net.Terms.Node(term("B1", 0))}, net.GroundNodes)
}
