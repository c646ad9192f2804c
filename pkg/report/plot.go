// Package report renders solver results for humans: DC sweep curves as PNG
// line charts.
package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/solver"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/util"
)

// WriteSweepPNG plots the current through elementID against the swept
// source voltage and saves it to path. Points whose solve did not succeed
// are skipped.
func WriteSweepPNG(points []solver.SweepPoint, elementID, path string) error {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.Solution.Status != solver.StatusSolved {
			continue
		}
		cur, ok := pt.Solution.ElementCurrents[elementID]
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.Volts, Y: cur.Amps})
	}
	if len(xys) == 0 {
		return fmt.Errorf("no solved sweep points for element %s", elementID)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("DC sweep: I(%s)", elementID)
	p.X.Label.Text = "Source voltage (V)"
	p.Y.Label.Text = "Current (A)"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building sweep line: %v", err)
	}
	p.Add(plotter.NewGrid(), line)

	// Pad the Y range so flat curves stay visible.
	lo, hi := xys[0].Y, xys[0].Y
	for _, xy := range xys {
		lo = util.Min(lo, xy.Y)
		hi = util.Max(hi, xy.Y)
	}
	if lo == hi {
		p.Y.Min = lo - 1
		p.Y.Max = hi + 1
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving sweep plot: %v", err)
	}
	return nil
}
