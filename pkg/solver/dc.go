package solver

import (
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/matrix"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/netlist"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// SolveDC computes the DC operating point of the element snapshot.
// Terminals within tolerance of each other are treated as connected;
// tolerance <= 0 selects the default merge radius.
//
// Each connected subnetwork is solved independently by Modified Nodal
// Analysis: one KCL row per non-reference node with conductance stamps, one
// constraint row plus one current unknown per voltage source. Subnetworks
// without a source are held at 0 V with zero current, so floating parts
// never destabilize the system.
func SolveDC(elements []schematic.Element, tolerance float64) Solution {
	net := netlist.Build(elements, tolerance)

	sol := Solution{
		Status:          StatusSolved,
		NodeVoltages:    make(map[int]float64, net.NumNodes),
		ElementCurrents: make(map[string]ElementCurrent),
		Reference:       -1,
		Nodes:           net.Terms.IDs,
	}

	if net.Terms.NumNodes() == 0 {
		sol.Status = StatusNoReference
		return sol
	}
	if hasIdealShort(net) {
		sol.Status = StatusInvalidIdealShort
		return sol
	}

	comps := components(net)
	compOf := componentIndex(comps, net.NumNodes)

	branchesBy := make([][]netlist.Branch, len(comps))
	for _, b := range net.Branches {
		ci := compOf[b.NodeA]
		branchesBy[ci] = append(branchesBy[ci], b)
	}
	sourcesBy := make([][]int, len(comps))
	for i, s := range net.Sources {
		ci := compOf[s.NodePos]
		sourcesBy[ci] = append(sourcesBy[ci], i)
	}

	sourceCurrents := make([]float64, len(net.Sources))
	refGround, refFirst := -1, -1

	for ci, nodes := range comps {
		srcs := sourcesBy[ci]
		if len(srcs) == 0 {
			// No source: the whole subnetwork sits at 0 V.
			for _, n := range nodes {
				sol.NodeVoltages[n] = 0
			}
			continue
		}

		ref := chooseReference(net, compOf, ci, nodes)
		lidx := make(map[int]int, len(nodes))
		lidx[ref] = 0
		next := 1
		for _, n := range nodes {
			if n != ref {
				lidx[n] = next
				next++
			}
		}

		size := (len(nodes) - 1) + len(srcs)
		m, err := matrix.NewMatrix(size)
		if err != nil {
			return failed(StatusSingular, net)
		}

		for _, b := range branchesBy[ci] {
			stampConductance(m, lidx[b.NodeA], lidx[b.NodeB], 1.0/b.Ohms)
		}
		for k, si := range srcs {
			s := net.Sources[si]
			stampSource(m, lidx[s.NodePos], lidx[s.NodeNeg], len(nodes)-1+k+1, s.Volts)
		}

		if err := m.Solve(); err != nil {
			m.Destroy()
			return failed(StatusSingular, net)
		}
		x := m.Solution()

		for _, n := range nodes {
			if n == ref {
				sol.NodeVoltages[n] = 0
			} else {
				sol.NodeVoltages[n] = x[lidx[n]]
			}
		}
		for k, si := range srcs {
			sourceCurrents[si] = x[len(nodes)-1+k+1]
		}
		m.Destroy()

		if refFirst < 0 {
			refFirst = ref
		}
		if refGround < 0 && containsGround(net, compOf, ci) {
			refGround = ref
		}
	}

	if refGround >= 0 {
		sol.Reference = refGround
	} else {
		sol.Reference = refFirst
	}

	recoverCurrents(net, elements, &sol, sourceCurrents)
	return sol
}

func failed(status Status, net *netlist.Net) Solution {
	return Solution{
		Status:          status,
		NodeVoltages:    map[int]float64{},
		ElementCurrents: map[string]ElementCurrent{},
		Reference:       -1,
		Nodes:           net.Terms.IDs,
	}
}

// chooseReference picks the component's 0 V node: a ground terminal if the
// component has one, else a battery negative terminal, else the first node.
func chooseReference(net *netlist.Net, compOf []int, ci int, nodes []int) int {
	for _, g := range net.GroundNodes {
		if compOf[g] == ci {
			return g
		}
	}
	for _, n := range net.BatteryNegatives {
		if compOf[n] == ci {
			return n
		}
	}
	return nodes[0]
}

func containsGround(net *netlist.Net, compOf []int, ci int) bool {
	for _, g := range net.GroundNodes {
		if compOf[g] == ci {
			return true
		}
	}
	return false
}

// stampConductance applies the conductance quad for a resistor between
// local node indices a and b. Index 0 is the eliminated reference row.
func stampConductance(m *matrix.CircuitMatrix, a, b int, g float64) {
	if a != 0 {
		m.AddElement(a, a, g)
		if b != 0 {
			m.AddElement(a, b, -g)
		}
	}
	if b != 0 {
		if a != 0 {
			m.AddElement(b, a, -g)
		}
		m.AddElement(b, b, g)
	}
}

// stampSource applies the MNA constraint row for an ideal voltage source:
// V(pos) - V(neg) = volts, introducing the branch current unknown at bIdx.
// The solved unknown is the current flowing from pos to neg through the
// source branch.
func stampSource(m *matrix.CircuitMatrix, pos, neg, bIdx int, volts float64) {
	if pos != 0 {
		m.AddElement(bIdx, pos, 1)
		m.AddElement(pos, bIdx, 1)
	}
	if neg != 0 {
		m.AddElement(bIdx, neg, -1)
		m.AddElement(neg, bIdx, -1)
	}
	m.AddRHS(bIdx, volts)
}
