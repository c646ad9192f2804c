package validate

import (
	"fmt"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/internal/consts"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/solver"
)

// polarityRule configures a polarity-sensitive kind: which pin is the
// configured positive terminal and what to report when the solved voltage
// across it goes negative.
type polarityRule struct {
	positivePin int
	issue       IssueKind
	severity    Severity
	message     string
}

// Batteries are deliberately absent: they define polarity, they don't
// violate it.
var polarityRules = map[schematic.Kind]polarityRule{
	schematic.KindDiode: {
		positivePin: 0, // anode
		issue:       IssueDiodeReverseBias,
		severity:    SeverityWarning,
		message:     "diode is reverse-biased and will not conduct",
	},
	schematic.KindLed: {
		positivePin: 0, // anode
		issue:       IssueLedReverseBias,
		severity:    SeverityWarning,
		message:     "LED is reverse-biased and will not light",
	},
	schematic.KindCapacitor: {
		positivePin: 1, // positive plate
		issue:       IssueCapacitorReversed,
		severity:    SeverityError,
		message:     "polarized capacitor is connected backwards",
	},
}

// polarityIssuesFromSolution compares each polarity-sensitive component's
// solved terminal voltages against its configured orientation. The voltage
// is measured from the configured positive terminal to the other; anything
// below the reverse threshold is reported.
func polarityIssuesFromSolution(elements []schematic.Element, sol solver.Solution) []Issue {
	var issues []Issue
	for i := range elements {
		e := &elements[i]
		rule, ok := polarityRules[e.Kind]
		if !ok || len(e.TerminalPoints()) < 2 {
			continue
		}

		posNode, okPos := sol.Nodes[schematic.Terminal{Element: e.ID, Pin: rule.positivePin}]
		negNode, okNeg := sol.Nodes[schematic.Terminal{Element: e.ID, Pin: 1 - rule.positivePin}]
		if !okPos || !okNeg {
			continue
		}
		measured := sol.NodeVoltages[posNode] - sol.NodeVoltages[negNode]

		if measured < consts.ReverseBiasVolts {
			issues = append(issues, Issue{
				Kind:             rule.issue,
				Severity:         rule.severity,
				Message:          fmt.Sprintf("%s (%.2f V across it)", rule.message, measured),
				AffectedElements: []string{e.ID},
			})
		}
	}
	return issues
}
