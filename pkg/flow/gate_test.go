package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

func pt(x, z float64) schematic.Point { return schematic.Point{X: x, Z: z} }

func element(id string, kind schematic.Kind, label string, pts ...schematic.Point) schematic.Element {
	return schematic.Element{ID: id, Kind: kind, Label: label, Points: pts}
}

func TestGateAllowsWorkingCircuit(t *testing.T) {
	elements := []schematic.Element{
		element("B1", schematic.KindBattery, "10V", pt(0, 0), pt(0, 2)),
		element("R1", schematic.KindResistor, "5", pt(0, 2), pt(0, 0)),
	}
	d := ShouldEnableCurrentFlow(elements)

	require.True(t, d.ShouldAnimate)
	require.Equal(t, "current is flowing", d.Reason)
	require.InDelta(t, 2.0, d.CurrentAmps, 1e-9)
}

func TestGateBlocksOnShortCircuit(t *testing.T) {
	elements := []schematic.Element{
		element("B1", schematic.KindBattery, "9V", pt(0, 0), pt(0, 2)),
		element("W1", schematic.KindWire, "", pt(0, 2), pt(2, 2), pt(2, 0), pt(0, 0)),
	}
	d := ShouldEnableCurrentFlow(elements)

	require.False(t, d.ShouldAnimate)
	require.Contains(t, d.Reason, "short-circuited")
	require.Zero(t, d.CurrentAmps)
}

func TestGateBlocksIncompleteCircuit(t *testing.T) {
	elements := []schematic.Element{
		element("R1", schematic.KindResistor, "100", pt(0, 0), pt(2, 0)),
	}
	d := ShouldEnableCurrentFlow(elements)

	require.False(t, d.ShouldAnimate)
	require.Equal(t, "the circuit is not complete yet", d.Reason)
}

func TestGateBlocksBelowCurrentThreshold(t *testing.T) {
	// 10 V across 100 megaohms: 0.1 uA, under the animation floor.
	elements := []schematic.Element{
		element("B1", schematic.KindBattery, "10V", pt(0, 0), pt(0, 2)),
		element("R1", schematic.KindResistor, "100M", pt(0, 2), pt(0, 0)),
	}
	d := ShouldEnableCurrentFlow(elements)

	require.False(t, d.ShouldAnimate)
	require.Equal(t, "no measurable current is flowing", d.Reason)
	require.InDelta(t, 1e-7, d.CurrentAmps, 1e-12)
}
