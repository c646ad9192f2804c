package solver

import (
	"fmt"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// SweepPoint is one step of a DC sweep.
type SweepPoint struct {
	Volts    float64
	Solution Solution
}

// SweepBattery re-solves the board while stepping one battery's voltage
// from start to stop (inclusive) in the given increment. The input element
// list is not modified. Per-step solve failures are recorded in the point's
// Solution status rather than aborting the sweep.
func SweepBattery(elements []schematic.Element, batteryID string, start, stop, step, tolerance float64) ([]SweepPoint, error) {
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %g", step)
	}
	if stop < start {
		return nil, fmt.Errorf("sweep stop %g is below start %g", stop, start)
	}

	target := -1
	for i := range elements {
		if elements[i].ID == batteryID {
			if elements[i].Kind != schematic.KindBattery {
				return nil, fmt.Errorf("element %s is a %s, not a battery", batteryID, elements[i].Kind)
			}
			target = i
			break
		}
	}
	if target < 0 {
		return nil, fmt.Errorf("battery %s not found", batteryID)
	}

	snapshot := make([]schematic.Element, len(elements))
	copy(snapshot, elements)

	var points []SweepPoint
	for v := start; v <= stop+step*1e-9; v += step {
		snapshot[target].Label = fmt.Sprintf("%gV", v)
		points = append(points, SweepPoint{
			Volts:    v,
			Solution: SolveDC(snapshot, tolerance),
		})
	}
	return points, nil
}
