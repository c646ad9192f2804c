package netlist

import (
	"math"

	"github.com/Mitchelllorin/CircuiTry3D-sub001/internal/consts"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/dsu"
	"github.com/Mitchelllorin/CircuiTry3D-sub001/pkg/schematic"
)

// NodeMap assigns every enumerated terminal to an electrical node.
// Node ids are dense ints starting at 0, assigned in first-discovery order
// over the terminal enumeration order, so identical input yields identical
// numbering.
type NodeMap struct {
	Tolerance float64
	IDs       map[schematic.Terminal]int
	// Points holds one representative point per node id: the first
	// terminal that discovered the node.
	Points []schematic.Point
}

// NumNodes returns the number of merged electrical nodes.
func (nm *NodeMap) NumNodes() int { return len(nm.Points) }

// Node returns the node id for a terminal, or -1 if the terminal was not
// enumerated (degenerate element, transistor, out-of-range pin).
func (nm *NodeMap) Node(t schematic.Terminal) int {
	id, ok := nm.IDs[t]
	if !ok {
		return -1
	}
	return id
}

type cellKey struct{ ix, iz int64 }

type terminal struct {
	key schematic.Terminal
	pt  schematic.Point
}

func enumerate(elements []schematic.Element) []terminal {
	var terms []terminal
	for i := range elements {
		e := &elements[i]
		for pin, pt := range e.TerminalPoints() {
			terms = append(terms, terminal{
				key: schematic.Terminal{Element: e.ID, Pin: pin},
				pt:  pt,
			})
		}
	}
	return terms
}

// MergeTerminals clusters all terminals of the element list into electrical
// nodes. Terminals within tolerance of each other merge transitively.
// Buckets are grid cells of tolerance width, so only the 3x3 neighborhood
// of a terminal's cell needs scanning.
func MergeTerminals(elements []schematic.Element, tolerance float64) *NodeMap {
	if tolerance <= 0 {
		tolerance = consts.DefaultTolerance
	}

	terms := enumerate(elements)
	sets := dsu.New(len(terms))

	cells := make(map[cellKey][]int, len(terms))
	for i, t := range terms {
		k := cellOf(t.pt, tolerance)
		cells[k] = append(cells[k], i)
	}

	for i, t := range terms {
		base := cellOf(t.pt, tolerance)
		for dx := int64(-1); dx <= 1; dx++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, j := range cells[cellKey{base.ix + dx, base.iz + dz}] {
					if j <= i {
						continue
					}
					if t.pt.DistanceTo(terms[j].pt) <= tolerance {
						sets.Union(i, j)
					}
				}
			}
		}
	}

	nm := &NodeMap{
		Tolerance: tolerance,
		IDs:       make(map[schematic.Terminal]int, len(terms)),
	}
	rootID := make(map[int]int, len(terms))
	for i, t := range terms {
		root := sets.Find(i)
		id, ok := rootID[root]
		if !ok {
			id = len(nm.Points)
			rootID[root] = id
			nm.Points = append(nm.Points, t.pt)
		}
		nm.IDs[t.key] = id
	}
	return nm
}

func cellOf(p schematic.Point, tolerance float64) cellKey {
	return cellKey{
		ix: int64(math.Floor(p.X / tolerance)),
		iz: int64(math.Floor(p.Z / tolerance)),
	}
}
