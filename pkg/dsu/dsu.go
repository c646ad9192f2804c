// Package dsu provides an arena-indexed disjoint-set (union-find) with
// path compression and union by rank. It is shared by the terminal merger
// and the subnetwork partitioner, which both work over dense int ids.
package dsu

type DisjointSet struct {
	parent []int
	rank   []int
}

func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *DisjointSet) Len() int { return len(d.parent) }

// Find returns the representative of x, compressing the path as it walks.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b and reports whether they were
// previously disjoint.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		d.parent[ra] = rb
	} else {
		d.parent[rb] = ra
		if d.rank[ra] == d.rank[rb] {
			d.rank[ra]++
		}
	}
	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
