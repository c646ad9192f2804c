// Package flow decides whether the UI may animate current through the
// board, composing the validator's verdict with the solver's result.
package flow

import (
	"fmt"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/internal/consts"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/solver"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/validate"
)

// Decision is the animation gate's verdict. Reason always explains the
// first blocker (or confirms flow) in user-facing terms.
type Decision struct {
	ShouldAnimate bool
	Reason        string
	CurrentAmps   float64
}

// ShouldEnableCurrentFlow gates the current animation. It requires, in
// order: no error-severity validation issues, a complete circuit, a solved
// DC operating point, and a measurable current.
func ShouldEnableCurrentFlow(elements []schematic.Element) Decision {
	result := validate.Check(elements)
	for _, issue := range result.Issues {
		if issue.Severity == validate.SeverityError {
			return Decision{Reason: issue.Message}
		}
	}
	if result.Status != validate.StatusComplete {
		return Decision{Reason: "the circuit is not complete yet"}
	}

	sol := solver.SolveDC(elements, consts.DefaultTolerance)
	if sol.Status != solver.StatusSolved {
		return Decision{Reason: fmt.Sprintf("the circuit could not be solved (%s)", sol.Status)}
	}

	amps := sol.MaxElementCurrent()
	if amps <= consts.FlowMinAmps {
		return Decision{Reason: "no measurable current is flowing", CurrentAmps: amps}
	}

	return Decision{ShouldAnimate: true, Reason: "current is flowing", CurrentAmps: amps}
}
