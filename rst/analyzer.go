package rst

import (
	"strconv"
	"strings"
)

// RelationCount tallies one relation label across structural positions.
// Top counts occurrences on direct children of the root, Bottom on
// childless nodes, and Middle on everything else. A node that is both a
// root child and childless counts as top only, so Total is always the
// sum of the three.
type RelationCount struct {
	Name   string
	Total  int
	Top    int
	Middle int
	Bottom int
}

// Analysis is the per-document result of Analyze. Relations holds one
// entry per distinct label, ordered by first encounter during the
// depth-first walk. RightToLeft and LeftToRight count parent/child
// edges whose child subtree lies entirely before, respectively after,
// the parent's own identifier.
type Analysis struct {
	Relations   []*RelationCount
	RightToLeft int
	LeftToRight int

	index map[string]*RelationCount
}

// TotalRelations is the number of tallied relation occurrences across
// all labels.
func (a *Analysis) TotalRelations() int {
	total := 0
	for _, rc := range a.Relations {
		total += rc.Total
	}
	return total
}

// Count returns the tally for one label, or nil when the label was
// never observed.
func (a *Analysis) Count(name string) *RelationCount {
	return a.index[name]
}

// Analyze walks the tree once and tallies every non-root node's
// relation label by structural position. The root itself carries no
// relation towards a parent and is never counted.
func Analyze(root *Node) *Analysis {
	a := &Analysis{index: make(map[string]*RelationCount)}
	a.walk(root, 0)
	return a
}

// walk records n's relation before descending, so label order is
// document order, and returns the lowest and highest identifiers of
// n's subtree for the direction tally.
func (a *Analysis) walk(n *Node, depth int) (low, high string) {
	if depth > 0 && n.Relation != "" {
		rc := a.index[n.Relation]
		if rc == nil {
			rc = &RelationCount{Name: n.Relation}
			a.index[n.Relation] = rc
			a.Relations = append(a.Relations, rc)
		}
		rc.Total++
		switch {
		case depth == 1:
			rc.Top++
		case len(n.Children) == 0:
			rc.Bottom++
		default:
			rc.Middle++
		}
	}

	low, high = n.ID, n.ID
	for _, child := range n.Children {
		childLow, childHigh := a.walk(child, depth+1)
		if compareIDs(childHigh, n.ID) < 0 {
			a.RightToLeft++
		} else if compareIDs(childLow, n.ID) > 0 {
			a.LeftToRight++
		}
		if compareIDs(childLow, low) < 0 {
			low = childLow
		}
		if compareIDs(childHigh, high) > 0 {
			high = childHigh
		}
	}
	return low, high
}

// compareIDs orders unit identifiers numerically when both parse as
// integers and lexically otherwise. RS3 numbers its units, so numeric
// order is text order.
func compareIDs(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
