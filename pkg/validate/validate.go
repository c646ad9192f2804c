// Package validate inspects a placed board for topology defects: opens,
// shorts, floating parts, missing references and reverse polarity. The
// structural checks are independent of the numeric solver; only the
// polarity checks read solved voltages.
package validate

import (
	"fmt"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/internal/consts"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/netlist"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/solver"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type IssueKind string

const (
	IssueShortCircuit           IssueKind = "short_circuit"
	IssueOpenCircuit            IssueKind = "open_circuit"
	IssueFloatingComponent      IssueKind = "floating_component"
	IssuePartiallyConnected     IssueKind = "partially_connected"
	IssueMissingGround          IssueKind = "missing_ground"
	IssueMissingPowerSource     IssueKind = "missing_power_source"
	IssueInsufficientComponents IssueKind = "insufficient_components"
	IssueDiodeReverseBias       IssueKind = "diode_reverse_bias"
	IssueLedReverseBias         IssueKind = "led_reverse_bias"
	IssueCapacitorReversed      IssueKind = "capacitor_reverse_polarity"
)

type Issue struct {
	Kind             IssueKind
	Severity         Severity
	Message          string
	AffectedElements []string
}

type Stats struct {
	Components      int // load components (non-battery two-terminal)
	Wires           int
	Grounds         int
	Batteries       int
	Nodes           int // merged electrical nodes
	ConnectedGroups int
}

type CircuitStatus string

const (
	StatusComplete   CircuitStatus = "complete"
	StatusIncomplete CircuitStatus = "incomplete"
	StatusInvalid    CircuitStatus = "invalid"
)

type Result struct {
	IsValid bool
	Status  CircuitStatus
	Issues  []Issue
	Stats   Stats
}

// Config adjusts product-policy checks. RequiredLoads is the pedagogical
// "fill the layout" rule: a warning is emitted when fewer load components
// are placed; 0 disables the rule. It never affects the circuit status.
type Config struct {
	Tolerance     float64
	RequiredLoads int
}

func DefaultConfig() Config {
	return Config{Tolerance: consts.DefaultTolerance, RequiredLoads: 3}
}

// Check validates the board with the default configuration.
func Check(elements []schematic.Element) Result {
	return CheckWithConfig(elements, DefaultConfig())
}

func CheckWithConfig(elements []schematic.Element, cfg Config) Result {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = consts.DefaultTolerance
	}

	g := buildConnectivity(elements, cfg.Tolerance)
	var issues []Issue

	issues = append(issues, shortCircuitIssues(g)...)
	issues = append(issues, connectionIssues(g)...)
	issues = append(issues, openCircuitIssues(g)...)
	issues = append(issues, referenceIssues(g)...)
	issues = append(issues, layoutIssues(g, cfg.RequiredLoads)...)
	issues = append(issues, polarityIssues(elements, cfg.Tolerance)...)

	stats := Stats{
		Components:      len(g.loads),
		Wires:           len(g.wires),
		Grounds:         len(g.grounds),
		Batteries:       len(g.batteries),
		Nodes:           netlist.MergeTerminals(elements, cfg.Tolerance).NumNodes(),
		ConnectedGroups: g.groupCount,
	}

	hasError := false
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			hasError = true
			break
		}
	}

	return Result{
		IsValid: !hasError,
		Status:  circuitStatus(g, issues, hasError),
		Issues:  issues,
		Stats:   stats,
	}
}

// circuitStatus classifies the board. Errors make it invalid. Structural
// incompleteness (nothing placed, no power source, no load, dangling
// components) makes it incomplete. Advisory issues (missing ground,
// layout policy, reverse bias warnings) do not block completeness.
func circuitStatus(g *connectivity, issues []Issue, hasError bool) CircuitStatus {
	if hasError {
		return StatusInvalid
	}
	if len(g.elements) == 0 || len(g.batteries) == 0 || len(g.loads) == 0 {
		return StatusIncomplete
	}
	for _, issue := range issues {
		if issue.Kind == IssueFloatingComponent || issue.Kind == IssuePartiallyConnected ||
			issue.Kind == IssueMissingPowerSource {
			return StatusIncomplete
		}
	}
	return StatusComplete
}

func referenceIssues(g *connectivity) []Issue {
	var issues []Issue
	if len(g.batteries) > 0 && len(g.grounds) == 0 {
		issues = append(issues, Issue{
			Kind:     IssueMissingGround,
			Severity: SeverityInfo,
			Message:  "no ground reference placed; voltages are relative to a battery terminal",
		})
	}
	if len(g.loads) > 0 && len(g.batteries) == 0 {
		issues = append(issues, Issue{
			Kind:     IssueMissingPowerSource,
			Severity: SeverityWarning,
			Message:  "no power source placed; components will carry no current",
		})
	}
	return issues
}

func layoutIssues(g *connectivity, required int) []Issue {
	if required <= 0 || len(g.loads) >= required {
		return nil
	}
	return []Issue{{
		Kind:     IssueInsufficientComponents,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("layout expects %d components, only %d placed", required, len(g.loads)),
	}}
}

func polarityIssues(elements []schematic.Element, tolerance float64) []Issue {
	sol := solver.SolveDC(elements, tolerance)
	if sol.Status != solver.StatusSolved {
		return nil
	}
	return polarityIssuesFromSolution(elements, sol)
}
