package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

func sweepBoard() []schematic.Element {
	return []schematic.Element{
		element("B1", schematic.KindBattery, "1V", pt(0, 0), pt(0, 2)),
		element("R1", schematic.KindResistor, "5", pt(0, 2), pt(0, 0)),
	}
}

func TestSweepBatteryOhmsLaw(t *testing.T) {
	elements := sweepBoard()
	points, err := SweepBattery(elements, "B1", 0, 10, 5, 0)
	require.NoError(t, err)
	require.Len(t, points, 3)

	wantVolts := []float64{0, 5, 10}
	for i, pt := range points {
		require.InDelta(t, wantVolts[i], pt.Volts, 1e-9)
		require.Equal(t, StatusSolved, pt.Solution.Status)
		require.InDelta(t, wantVolts[i]/5.0, pt.Solution.ElementCurrents["R1"].Amps, 1e-9)
	}

	// The caller's elements are untouched.
	require.Equal(t, "1V", elements[0].Label)
}

func TestSweepBatteryInclusiveStop(t *testing.T) {
	points, err := SweepBattery(sweepBoard(), "B1", 0, 1, 0.1, 0)
	require.NoError(t, err)
	require.Len(t, points, 11)
	require.InDelta(t, 1.0, points[len(points)-1].Volts, 1e-9)
}

func TestSweepBatteryArgumentErrors(t *testing.T) {
	board := sweepBoard()

	_, err := SweepBattery(board, "B1", 0, 10, 0, 0)
	require.Error(t, err)

	_, err = SweepBattery(board, "B1", 10, 0, 1, 0)
	require.Error(t, err)

	_, err = SweepBattery(board, "B9", 0, 10, 1, 0)
	require.ErrorContains(t, err, "not found")

	_, err = SweepBattery(board, "R1", 0, 10, 1, 0)
	require.ErrorContains(t, err, "not a battery")
}
