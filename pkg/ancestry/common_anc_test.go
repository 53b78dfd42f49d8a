package ancestry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamincjackson/famtree/pkg/tree"
)

func buildTree(t *testing.T, lines ...string) *tree.Tree {
	t.Helper()
	tr := tree.NewTree()
	for _, line := range lines {
		require.NoError(t, tr.IngestLine(line))
	}
	return tr
}

func mrcaName(t *testing.T, tr *tree.Tree, name1, name2 string) string {
	t.Helper()
	n, err := MRCA(tr, name1, name2)
	require.NoError(t, err)
	if n == nil {
		return ""
	}
	return n.Name()
}

func TestMRCA(t *testing.T) {
	tr := buildTree(t, "A:B,C", "B:D,E", "C:F", "E:G")

	tests := []struct {
		name1, name2 string
		want         string // "" for no common ancestor
	}{
		{"D", "E", "B"},
		{"D", "F", "A"},
		{"G", "D", "B"},
		{"G", "F", "A"},
		{"B", "C", "A"},
		{"G", "B", "A"},
		{"D", "A", ""},
		{"A", "A", ""},
		{"D", "D", "B"},
		{"B", "B", "A"},
	}

	for _, test := range tests {
		t.Run(test.name1+"-"+test.name2, func(t *testing.T) {
			assert.Equal(t, test.want, mrcaName(t, tr, test.name1, test.name2))
			assert.Equal(t, test.want, mrcaName(t, tr, test.name2, test.name1))
		})
	}
}

func TestMRCAIdentity(t *testing.T) {
	tr := buildTree(t, "A:B,C", "B:D,E", "C:F")

	n, err := MRCA(tr, "D", "E")
	require.NoError(t, err)
	assert.Same(t, tr.Find("B"), n)

	// the self-query rule: nearest proper ancestor
	for _, node := range tr.Nodes() {
		got := MRCANodes(tr, node, node)
		if node.IsRoot() {
			assert.Nil(t, got)
		} else {
			assert.Same(t, node.Parent(), got)
		}
	}
}

func TestMRCADuplicateNames(t *testing.T) {
	// two nodes called X; lookups resolve to the one under B
	tr := buildTree(t, "A:B,C", "B:X,D", "C:X")

	assert.Equal(t, "B", mrcaName(t, tr, "X", "D"))
}

func TestMRCANotFound(t *testing.T) {
	tr := buildTree(t, "A:B,C")

	_, err := MRCA(tr, "Z", "B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrNodeNotFound))
	var nnf *tree.NodeNotFoundError
	require.True(t, errors.As(err, &nnf))
	assert.Equal(t, "Z", nnf.Name)

	_, err = MRCA(tr, "B", "Y")
	require.True(t, errors.As(err, &nnf))
	assert.Equal(t, "Y", nnf.Name)

	_, err = MRCA(tree.NewTree(), "A", "B")
	assert.True(t, errors.Is(err, tree.ErrNodeNotFound))
}

func TestCommonAncestors(t *testing.T) {
	tr := buildTree(t, "A:B,C", "B:D,E", "E:G,H", "C:F")

	common, err := CommonAncestors(tr, "G", "H")
	require.NoError(t, err)
	got := make([]string, 0)
	for _, n := range common {
		got = append(got, n.Name())
	}
	assert.Equal(t, []string{"E", "B", "A"}, got)

	common, err = CommonAncestors(tr, "A", "G")
	require.NoError(t, err)
	assert.Empty(t, common)

	_, err = CommonAncestors(tr, "G", "nobody")
	assert.True(t, errors.Is(err, tree.ErrNodeNotFound))
}

func TestIsAncestor(t *testing.T) {
	tr := buildTree(t, "A:B,C", "B:D")

	assert.True(t, IsAncestor(tr.Find("A"), tr.Find("D")))
	assert.True(t, IsAncestor(tr.Find("B"), tr.Find("D")))
	assert.False(t, IsAncestor(tr.Find("D"), tr.Find("D")))
	assert.False(t, IsAncestor(tr.Find("C"), tr.Find("D")))
	assert.False(t, IsAncestor(tr.Find("D"), tr.Find("A")))
}

func TestDistance(t *testing.T) {
	tr := buildTree(t, "A:B,C", "B:D,E", "C:F", "E:G")

	tests := []struct {
		name1, name2 string
		want         int
	}{
		{"D", "D", 0},
		{"D", "E", 2},
		{"G", "F", 5},
		{"A", "G", 3},
		{"G", "B", 2},
	}

	for _, test := range tests {
		t.Run(test.name1+"-"+test.name2, func(t *testing.T) {
			d, err := Distance(tr, test.name1, test.name2)
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
		})
	}

	_, err := Distance(tr, "D", "Q")
	assert.True(t, errors.Is(err, tree.ErrNodeNotFound))
}

func TestMRCANodesOtherTree(t *testing.T) {
	small := buildTree(t, "A:B,C")
	big := buildTree(t, "P:Q,R", "Q:S,T", "T:U,V")

	assert.NotPanics(t, func() {
		assert.Nil(t, MRCANodes(small, big.Find("U"), big.Find("V")))
		assert.Nil(t, MRCANodes(small, small.Find("B"), big.Find("V")))
	})
	// same id, different tree
	assert.Nil(t, MRCANodes(small, small.Find("B"), big.Find("Q")))
	assert.Same(t, small.Root(), MRCANodes(small, small.Find("B"), small.Find("C")))
}
