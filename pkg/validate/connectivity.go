package validate

import (
	"fmt"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/dsu"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// connectivity is the validator's own view of the board: pairwise
// terminal-proximity adjacency between elements plus connected groups.
// Boards are small (tens of elements), so the O(n^2) pair test is fine.
type connectivity struct {
	elements  []*schematic.Element // transistors excluded
	tolerance float64

	adjacency  [][]int // element index -> neighbor element indices
	group      []int   // element index -> connected group id
	groupCount int
	// terminalLinks[i][pin] is true when that terminal touches another
	// element's terminal.
	terminalLinks [][]bool

	loads     []int
	batteries []int
	wires     []int
	grounds   []int
}

func buildConnectivity(elements []schematic.Element, tolerance float64) *connectivity {
	g := &connectivity{tolerance: tolerance}
	for i := range elements {
		e := &elements[i]
		if e.Kind == schematic.KindTransistor || len(e.TerminalPoints()) == 0 {
			continue
		}
		g.elements = append(g.elements, e)
	}

	n := len(g.elements)
	g.adjacency = make([][]int, n)
	g.terminalLinks = make([][]bool, n)
	for i, e := range g.elements {
		g.terminalLinks[i] = make([]bool, len(e.TerminalPoints()))
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.linkPair(i, j) {
				g.adjacency[i] = append(g.adjacency[i], j)
				g.adjacency[j] = append(g.adjacency[j], i)
			}
		}
	}

	g.assignGroups()

	for i, e := range g.elements {
		switch {
		case e.Kind == schematic.KindWire:
			g.wires = append(g.wires, i)
		case e.Kind == schematic.KindGround:
			g.grounds = append(g.grounds, i)
		case e.Kind == schematic.KindBattery:
			g.batteries = append(g.batteries, i)
		case e.IsLoad():
			g.loads = append(g.loads, i)
		}
	}
	return g
}

// linkPair marks which terminals of i and j touch and reports whether any
// pair is within tolerance.
func (g *connectivity) linkPair(i, j int) bool {
	linked := false
	for pi, pp := range g.elements[i].TerminalPoints() {
		for pj, qp := range g.elements[j].TerminalPoints() {
			if pp.DistanceTo(qp) <= g.tolerance {
				g.terminalLinks[i][pi] = true
				g.terminalLinks[j][pj] = true
				linked = true
			}
		}
	}
	return linked
}

func (g *connectivity) assignGroups() {
	n := len(g.elements)
	g.group = make([]int, n)
	for i := range g.group {
		g.group[i] = -1
	}
	for i := 0; i < n; i++ {
		if g.group[i] >= 0 {
			continue
		}
		id := g.groupCount
		g.groupCount++
		// Iterative DFS over the adjacency lists.
		stack := []int{i}
		g.group[i] = id
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range g.adjacency[cur] {
				if g.group[next] < 0 {
					g.group[next] = id
					stack = append(stack, next)
				}
			}
		}
	}
}

func (g *connectivity) describe(i int) string {
	e := g.elements[i]
	if e.Label != "" {
		return fmt.Sprintf("%s %q", e.Kind, e.Label)
	}
	return string(e.Kind)
}

// shortCircuitIssues flags batteries whose two terminals are joined by
// wires alone. The check merges wire vertices by proximity (the same
// tolerance clustering the solver uses) and asks whether both battery
// terminals land in one wire cluster, so a bridging wire is caught even
// when a load sits in parallel with it.
func shortCircuitIssues(g *connectivity) []Issue {
	type vertex struct {
		elem int
		pt   schematic.Point
	}
	var verts []vertex
	for _, wi := range g.wires {
		for _, p := range g.elements[wi].TerminalPoints() {
			verts = append(verts, vertex{elem: wi, pt: p})
		}
	}

	sets := dsu.New(len(verts))
	for a := 0; a < len(verts); a++ {
		for b := a + 1; b < len(verts); b++ {
			sameWire := verts[a].elem == verts[b].elem
			if sameWire || verts[a].pt.DistanceTo(verts[b].pt) <= g.tolerance {
				sets.Union(a, b)
			}
		}
	}

	// Wire ends meeting at a battery terminal are joined through that
	// terminal even when they are not within tolerance of each other.
	for _, bi := range g.batteries {
		for _, p := range g.elements[bi].TerminalPoints() {
			first := -1
			for v := range verts {
				if verts[v].pt.DistanceTo(p) <= g.tolerance {
					if first < 0 {
						first = v
					} else {
						sets.Union(first, v)
					}
				}
			}
		}
	}

	cluster := func(p schematic.Point) int {
		for v := range verts {
			if verts[v].pt.DistanceTo(p) <= g.tolerance {
				return sets.Find(v)
			}
		}
		return -1
	}

	var issues []Issue
	for _, bi := range g.batteries {
		b := g.elements[bi]
		neg := cluster(b.Start())
		pos := cluster(b.End())
		shorted := b.Start().DistanceTo(b.End()) <= g.tolerance ||
			(neg >= 0 && neg == pos)
		if shorted {
			issues = append(issues, Issue{
				Kind:             IssueShortCircuit,
				Severity:         SeverityError,
				Message:          fmt.Sprintf("%s is short-circuited by a wire path", g.describe(bi)),
				AffectedElements: []string{b.ID},
			})
		}
	}
	return issues
}

// connectionIssues flags floating (no connected terminal) and partially
// connected (exactly one connected terminal) elements.
func connectionIssues(g *connectivity) []Issue {
	var issues []Issue
	for i, e := range g.elements {
		connected := 0
		for _, linked := range g.terminalLinks[i] {
			if linked {
				connected++
			}
		}
		switch {
		case connected == 0:
			issues = append(issues, Issue{
				Kind:             IssueFloatingComponent,
				Severity:         SeverityWarning,
				Message:          fmt.Sprintf("%s is not connected to anything", g.describe(i)),
				AffectedElements: []string{e.ID},
			})
		case e.IsTwoTerminal() && connected == 1:
			issues = append(issues, Issue{
				Kind:             IssuePartiallyConnected,
				Severity:         SeverityWarning,
				Message:          fmt.Sprintf("%s has an unconnected terminal", g.describe(i)),
				AffectedElements: []string{e.ID},
			})
		}
	}
	return issues
}

// openCircuitIssues flags loads that share no connected group with any
// battery: current can never reach them.
func openCircuitIssues(g *connectivity) []Issue {
	if len(g.batteries) == 0 {
		return nil
	}
	var issues []Issue
	for _, li := range g.loads {
		reached := false
		for _, bi := range g.batteries {
			if g.group[li] == g.group[bi] {
				reached = true
				break
			}
		}
		if !reached {
			issues = append(issues, Issue{
				Kind:             IssueOpenCircuit,
				Severity:         SeverityError,
				Message:          fmt.Sprintf("%s is not connected to a power source", g.describe(li)),
				AffectedElements: []string{g.elements[li].ID},
			})
		}
	}
	return issues
}
