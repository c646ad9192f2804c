package solver

import (
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/dsu"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/netlist"
)

// components partitions the post-merge node graph into connected
// components, using branch and source edges. Component order and the node
// order inside each component follow first discovery over ascending node
// ids, keeping the local index assignment deterministic.
func components(net *netlist.Net) [][]int {
	sets := dsu.New(net.NumNodes)
	for _, b := range net.Branches {
		sets.Union(b.NodeA, b.NodeB)
	}
	for _, s := range net.Sources {
		sets.Union(s.NodePos, s.NodeNeg)
	}

	order := make(map[int]int, net.NumNodes)
	var comps [][]int
	for n := 0; n < net.NumNodes; n++ {
		root := sets.Find(n)
		idx, ok := order[root]
		if !ok {
			idx = len(comps)
			order[root] = idx
			comps = append(comps, nil)
		}
		comps[idx] = append(comps[idx], n)
	}
	return comps
}

// componentIndex returns, for every node, the index of its component.
func componentIndex(comps [][]int, numNodes int) []int {
	idx := make([]int, numNodes)
	for ci, nodes := range comps {
		for _, n := range nodes {
			idx[n] = ci
		}
	}
	return idx
}
