package treeio

import (
	"io"
	"strings"

	"github.com/benjamincjackson/gotree/tree"
	"github.com/cockroachdb/errors"
	"github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	ftree "github.com/benjamincjackson/famtree/pkg/tree"
)

// Format selects how a family tree is written out. All formats are for
// display: none of them is read back in.
type Format string

const (
	FormatText   Format = "text"
	FormatNewick Format = "newick"
	FormatKDL    Format = "kdl"
)

// ParseFormat checks the name of an output format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatNewick, FormatKDL:
		return Format(s), nil
	default:
		return "", errors.Newf("unknown output format: %s (choose one of text, newick or kdl)", s)
	}
}

// Write renders t to w in the given format
func Write(w io.Writer, t *ftree.Tree, format Format) error {
	var err error
	switch format {
	case FormatText:
		_, err = io.WriteString(w, "Tree:\n"+t.String()+"\n**************\n")
	case FormatNewick:
		var gt *tree.Tree
		gt, err = ToGotree(t)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, gt.Newick()+"\n")
	case FormatKDL:
		err = kdl.Generate(ToKDL(t), w)
	default:
		return errors.Newf("unknown output format: %s", format)
	}
	return err
}

// newickReserved are the characters that can't appear in an unquoted Newick label
const newickReserved = "()[]':;, \t"

// newickName quotes name Newick-style if it holds a reserved character,
// doubling any single quotes inside it
func newickName(name string) string {
	if !strings.ContainsAny(name, newickReserved) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// ToGotree copies the family tree into a rooted gotree tree, keeping child
// order. Names are quoted where Newick needs it, so the gotree node names are
// the Newick labels. Edges have no lengths.
func ToGotree(t *ftree.Tree) (*tree.Tree, error) {
	if t.Root() == nil {
		return nil, errors.New("the family tree is empty")
	}

	gt := tree.NewTree()
	root := gt.NewNode()
	root.SetName(newickName(t.Root().Name()))
	gt.SetRoot(root)
	toGotree(gt, t.Root(), root)

	return gt, nil
}

// recursive function to copy the children of cur under its gotree counterpart
func toGotree(gt *tree.Tree, cur *ftree.Node, gcur *tree.Node) {
	for _, child := range cur.Children() {
		gchild := gt.NewNode()
		gchild.SetName(newickName(child.Name()))
		gt.ConnectNodes(gcur, gchild)
		toGotree(gt, child, gchild)
	}
}

// ToKDL builds a KDL document with one nested KDL node per family tree node.
// An empty tree gives an empty document.
func ToKDL(t *ftree.Tree) *document.Document {
	doc := document.New()
	if t.Root() != nil {
		doc.AddNode(toKDL(t.Root()))
	}
	return doc
}

func toKDL(cur *ftree.Node) *document.Node {
	n := document.NewNode()
	n.SetName(cur.Name())
	n.ExpectChildren(len(cur.Children()))
	for _, child := range cur.Children() {
		n.AddNode(toKDL(child))
	}
	return n
}
