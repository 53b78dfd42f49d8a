package tree

import "strings"

// indentUnit is added per level of depth when rendering
const indentUnit = "  "

// Node is one named member of a family tree. Children are kept in the order
// they were added, and parent is set once, when the node is added as a child.
type Node struct {
	id       int
	name     string
	parent   *Node
	children []*Node
}

func (n *Node) Id() int {
	return n.id
}

func (n *Node) Name() string {
	return n.name
}

// Parent returns nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

func (n *Node) IsTip() bool {
	return len(n.children) == 0
}

// AddChild appends child to n's children and makes n its parent.
// child must not already be attached to a parent, and must not be n or an
// ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		panic("tree: node " + child.name + " already has a parent")
	}
	// a parentless ancestor of n can only be the top of n's tree, and has children
	if child == n || len(child.children) > 0 && n.top() == child {
		panic("tree: node " + child.name + " would become its own ancestor")
	}
	n.children = append(n.children, child)
	child.parent = n
}

// top follows parents up from n to the node with none
func (n *Node) top() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// FindByName searches the subtree at n (n first, then each child subtree in
// order) and returns the first node called targetName, or nil if there isn't one
func (n *Node) FindByName(targetName string) *Node {
	if n.name == targetName {
		return n
	}

	for _, child := range n.children {
		if result := child.FindByName(targetName); result != nil {
			return result
		}
	}

	return nil
}

// Ancestors returns the ancestors of n, nearest first and the root last.
// The root has none.
func (n *Node) Ancestors() []*Node {
	ancestors := make([]*Node, 0)
	for cur := n.parent; cur != nil; cur = cur.parent {
		ancestors = append(ancestors, cur)
	}
	return ancestors
}

// Depth is the number of parent hops from n to the root
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// Render writes n and its subtree, one name per line, each level indented
// by two more spaces than its parent
func (n *Node) Render(indent string) string {
	var sb strings.Builder
	n.render(&sb, indent)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString(n.name)
	sb.WriteString("\n")
	for _, child := range n.children {
		child.render(sb, indent+indentUnit)
	}
}

func (n *Node) String() string {
	return n.Render("")
}
