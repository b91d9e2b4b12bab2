package rst

import "fmt"

// BuildTree turns the flat records of a parsed document into the
// explicit discourse tree and returns its root, the unique record
// without a parent. Nodes are created and attached in record order, so
// sibling order is exactly document order.
//
// Duplicate identifiers, references to missing parents, and documents
// with zero or several roots are reported as errors rather than
// silently repaired.
func BuildTree(doc *Document) (*Node, error) {
	nodes := make(map[string]*Node, len(doc.Records))
	order := make([]*Node, 0, len(doc.Records))

	for _, rec := range doc.Records {
		if _, ok := nodes[rec.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %q", rec.ID)
		}
		n := &Node{
			ID:       rec.ID,
			Kind:     rec.Kind,
			Text:     rec.Text,
			Subtype:  rec.Subtype,
			ParentID: rec.ParentID,
			Relation: rec.Relation,
		}
		nodes[rec.ID] = n
		order = append(order, n)
	}

	var root *Node
	for _, n := range order {
		if n.ParentID == "" {
			if root != nil {
				return nil, fmt.Errorf("multiple roots: %q and %q have no parent", root.ID, n.ID)
			}
			root = n
			continue
		}
		parent, ok := nodes[n.ParentID]
		if !ok {
			return nil, fmt.Errorf("node %q references missing parent %q", n.ID, n.ParentID)
		}
		parent.Children = append(parent.Children, n)
	}
	if root == nil {
		return nil, fmt.Errorf("no root: every node has a parent")
	}

	return root, nil
}
