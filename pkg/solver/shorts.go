package solver

import "github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/netlist"

// hasIdealShort reports whether any battery's terminals are joined by a
// path of zero-resistance primitives (wire segments, inductor shorts). Such
// a loop has no finite solution, so the solve is rejected before any
// factorization.
func hasIdealShort(net *netlist.Net) bool {
	adj := make(map[int][]int)
	for _, s := range net.Sources {
		if s.Origin != netlist.OriginWireSegment && s.Origin != netlist.OriginInductorShort {
			continue
		}
		adj[s.NodePos] = append(adj[s.NodePos], s.NodeNeg)
		adj[s.NodeNeg] = append(adj[s.NodeNeg], s.NodePos)
	}

	for _, s := range net.Sources {
		if s.Origin != netlist.OriginBattery {
			continue
		}
		if s.NodePos == s.NodeNeg || reachable(adj, s.NodePos, s.NodeNeg) {
			return true
		}
	}
	return false
}

// reachable runs a breadth-first search from src to dst over adj.
func reachable(adj map[int][]int, src, dst int) bool {
	if len(adj[src]) == 0 {
		return false
	}
	visited := map[int]bool{src: true}
	queue := []int{src}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adj[n] {
			if next == dst {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
