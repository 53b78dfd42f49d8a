package ancestry

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/benjamincjackson/famtree/pkg/bitsets"
	"github.com/benjamincjackson/famtree/pkg/tree"
)

// lookup finds both named nodes, or fails naming the first one that's missing
func lookup(t *tree.Tree, name1, name2 string) (*tree.Node, *tree.Node, error) {
	node1 := t.Find(name1)
	if node1 == nil {
		return nil, nil, &tree.NodeNotFoundError{Name: name1}
	}
	node2 := t.Find(name2)
	if node2 == nil {
		return nil, nil, &tree.NodeNotFoundError{Name: name2}
	}
	return node1, node2, nil
}

// the ancestors of n as a set of node ids
func ancestorSet(t *tree.Tree, n *tree.Node) []byte {
	ba := bitsets.New(t.Len())
	for _, a := range n.Ancestors() {
		bitsets.AddId(ba, a.Id())
	}
	return ba
}

// MRCA returns the deepest node that is an ancestor of both the node named
// name1 and the node named name2. Ancestors never include the node itself,
// so the MRCA of a node with itself is its parent.
//
// A nil node with a nil error means there is no common ancestor, which
// happens when either name resolves to the root.
func MRCA(t *tree.Tree, name1, name2 string) (*tree.Node, error) {
	node1, node2, err := lookup(t, name1, name2)
	if err != nil {
		return nil, err
	}
	return MRCANodes(t, node1, node2), nil
}

// belongs reports whether n is one of t's nodes
func belongs(t *tree.Tree, n *tree.Node) bool {
	return n.Id() < t.Len() && t.Nodes()[n.Id()] == n
}

// MRCANodes is MRCA for two nodes that have already been looked up in t.
// Both nodes must belong to t; nil is returned if either doesn't.
func MRCANodes(t *tree.Tree, node1, node2 *tree.Node) *tree.Node {
	if !belongs(t, node1) || !belongs(t, node2) {
		return nil
	}

	ancestorsOf2 := ancestorSet(t, node2)

	// nearest first, so the first hit is the deepest
	for _, n1 := range node1.Ancestors() {
		if bitsets.HasId(ancestorsOf2, n1.Id()) {
			return n1
		}
	}

	return nil
}

// CommonAncestors returns every ancestor shared by the two named nodes,
// nearest first
func CommonAncestors(t *tree.Tree, name1, name2 string) ([]*tree.Node, error) {
	node1, node2, err := lookup(t, name1, name2)
	if err != nil {
		return nil, err
	}

	shared := bitsets.Intersection(ancestorSet(t, node1), ancestorSet(t, node2))
	common := make([]*tree.Node, 0)
	if !bitsets.IsAnyBitSet(shared) {
		return common, nil
	}

	nodes := t.Nodes()
	for _, id := range bitsets.Ids(shared) {
		common = append(common, nodes[id])
	}

	// common ancestors all lie on one path to the root, so depth orders them
	sort.Slice(common, func(i, j int) bool {
		return common[i].Depth() > common[j].Depth()
	})

	return common, nil
}

// IsAncestor reports whether a is a (proper) ancestor of b
func IsAncestor(a, b *tree.Node) bool {
	for cur := b.Parent(); cur != nil; cur = cur.Parent() {
		if cur == a {
			return true
		}
	}
	return false
}

// Distance returns the number of parent/child edges on the path between the
// two named nodes. When one is an ancestor of the other (or they are the
// same node), the path meets at that node rather than at the MRCA.
func Distance(t *tree.Tree, name1, name2 string) (int, error) {
	node1, node2, err := lookup(t, name1, name2)
	if err != nil {
		return -1, err
	}

	switch {
	case node1 == node2:
		return 0, nil
	case IsAncestor(node1, node2):
		return node2.Depth() - node1.Depth(), nil
	case IsAncestor(node2, node1):
		return node1.Depth() - node2.Depth(), nil
	}

	mrca := MRCANodes(t, node1, node2)
	if mrca == nil {
		return -1, errors.Newf("no common ancestor of %s and %s", name1, name2)
	}

	return node1.Depth() + node2.Depth() - 2*mrca.Depth(), nil
}
