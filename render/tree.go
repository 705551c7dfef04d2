package render

import "github.com/tsawler/outline/model"

// Node is a heading together with the headings nested under it
type Node struct {
	Heading  model.Heading
	Children []*Node
}

// Tree nests a flat heading list by level. Each heading becomes a child of
// the nearest preceding heading with a shallower level, or a root when there
// is none.
func Tree(headings []model.Heading) []*Node {
	var roots []*Node
	var stack []*Node

	for _, h := range headings {
		n := &Node{Heading: h}
		for len(stack) > 0 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}
	return roots
}

// Depth returns the number of levels below and including n
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		deepest = max(deepest, c.Depth())
	}
	return deepest + 1
}

// Walk calls fn for n and its descendants in document order. depth is 0
// for the node Walk is called on.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	if n == nil {
		return
	}
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}
