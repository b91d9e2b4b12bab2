package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/Haufan/annotator-analysis/rst"
)

// WriteReport composes the full text report for one document: the tree
// rendering first, then the relation and position analysis.
func WriteReport(w io.Writer, root *rst.Node, analysis *rst.Analysis) {
	fmt.Fprintln(w, "Tree Structure:")
	rst.WriteTree(w, root)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Analysis of Relations and Positions:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total relations: %d times\n", analysis.TotalRelations())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Relation counts:")
	for _, rc := range analysis.Relations {
		fmt.Fprintf(w, "%s: %d times (%s)\n", rc.Name, rc.Total, positionBreakdown(rc))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Right to Left relations: %d\n", analysis.RightToLeft)
	fmt.Fprintf(w, "Total Left to Right relations: %d\n", analysis.LeftToRight)
}

// positionBreakdown lists only the positions a label actually occurred
// in, in fixed top, middle, bottom order.
func positionBreakdown(rc *rst.RelationCount) string {
	parts := make([]string, 0, 3)
	if rc.Top > 0 {
		parts = append(parts, fmt.Sprintf("top: %d", rc.Top))
	}
	if rc.Middle > 0 {
		parts = append(parts, fmt.Sprintf("middle: %d", rc.Middle))
	}
	if rc.Bottom > 0 {
		parts = append(parts, fmt.Sprintf("bottom: %d", rc.Bottom))
	}
	return strings.Join(parts, ", ")
}
