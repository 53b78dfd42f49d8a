package tree

// Tree owns every node created for it. Nodes are numbered in creation order,
// so the root is node 0 and Id() indexes into Nodes().
type Tree struct {
	root  *Node
	nodes []*Node
}

// NewTree returns an empty tree. The first ingested line seeds its root.
func NewTree() *Tree {
	return &Tree{nodes: make([]*Node, 0)}
}

// Root returns nil until a line has been ingested
func (t *Tree) Root() *Node {
	return t.root
}

// Nodes returns every node, indexed by Id
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// Len is the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) newNode(name string) *Node {
	n := &Node{id: len(t.nodes), name: name}
	t.nodes = append(t.nodes, n)
	return n
}

// IngestLine parses one "parent:child1,child2,..." line and grows the tree
// with it. The first line creates the root from its parent name; every later
// line's parent must already be in the tree. A new node is created for every
// child name, even if that name is already used elsewhere.
//
// Nothing is added if the line is malformed or its parent can't be found.
func (t *Tree) IngestLine(line string) error {
	parent, children, err := ParseLine(line)
	if err != nil {
		return err
	}

	var parentNode *Node
	if t.root == nil {
		parentNode = t.newNode(parent)
		t.root = parentNode
	} else {
		parentNode = t.root.FindByName(parent)
		if parentNode == nil {
			return &ParentNotFoundError{Name: parent, Line: line}
		}
	}

	for _, childName := range children {
		parentNode.AddChild(t.newNode(childName))
	}

	return nil
}

// Find returns the first node called name in pre-order, or nil
func (t *Tree) Find(name string) *Node {
	if t.root == nil {
		return nil
	}
	return t.root.FindByName(name)
}

// Walk visits the tree in pre-order. Returning false from fn stops the walk
// below that node.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.root == nil {
		return
	}
	walk(t.root, fn)
}

func walk(cur *Node, fn func(n *Node) bool) {
	if !fn(cur) {
		return
	}
	for _, child := range cur.children {
		walk(child, fn)
	}
}

// Render returns the whole tree with two spaces of indent per level, or an
// empty string for an empty tree
func (t *Tree) Render() string {
	if t.root == nil {
		return ""
	}
	return t.root.Render("")
}

func (t *Tree) String() string {
	return "Family Tree:\n\n" + t.Render()
}
