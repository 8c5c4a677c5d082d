package outline

import (
	"encoding/json"
)

// Node represents one heading in the outline together with its subtree.
type Node struct {
	Level    int     `json:"level" yaml:"level"`
	Text     string  `json:"text" yaml:"text"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Forest is the ordered list of top-level nodes of a parsed outline.
type Forest []*Node

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// String returns a JSON representation of the Node for debugging.
func (n *Node) String() string {
	b, _ := json.MarshalIndent(n, "", "  ")
	return string(b)
}

// Walk traverses the forest in depth-first pre-order, calling fn with each
// node and its depth (0 for top-level nodes).
func (f Forest) Walk(fn func(n *Node, depth int)) {
	var walk func([]*Node, int)
	walk = func(nodes []*Node, depth int) {
		for _, node := range nodes {
			fn(node, depth)
			walk(node.Children, depth+1)
		}
	}
	walk(f, 0)
}

// Count returns the total number of nodes in the forest.
func (f Forest) Count() int {
	count := 0
	f.Walk(func(*Node, int) { count++ })
	return count
}

// Depth returns the number of nesting levels in the forest. An empty forest
// has depth 0, a forest of leaves has depth 1.
func (f Forest) Depth() int {
	depth := 0
	f.Walk(func(_ *Node, d int) {
		if d+1 > depth {
			depth = d + 1
		}
	})
	return depth
}

// Leaves returns all nodes without children, in pre-order.
func (f Forest) Leaves() []*Node {
	var leaves []*Node
	f.Walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}
