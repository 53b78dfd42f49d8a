package summary

import (
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/benjamincjackson/famtree/pkg/tree"
)

// Summary holds some statistics about the shape of a family tree
type Summary struct {
	Nodes          int
	Tips           int
	MaxDepth       int
	MeanTipDepth   float64
	StdDevTipDepth float64
	DuplicateNames []string // names used by more than one node, in pre-order of first use
}

// Summarize gathers a Summary for t. An empty tree gives the zero Summary.
func Summarize(t *tree.Tree) Summary {
	s := Summary{Nodes: t.Len(), DuplicateNames: DuplicateNames(t)}
	if t.Root() == nil {
		return s
	}

	depths := make([]float64, 0)
	t.Walk(func(n *tree.Node) bool {
		if n.IsTip() {
			depths = append(depths, float64(n.Depth()))
		}
		return true
	})

	s.Tips = len(depths)
	s.MaxDepth = int(floats.Max(depths))
	s.MeanTipDepth = stat.Mean(depths, nil)
	// the sample variance is undefined for a single tip
	if len(depths) > 1 {
		s.StdDevTipDepth = stat.StdDev(depths, nil)
	}

	return s
}

// DuplicateNames returns the names that more than one node shares. Lookups
// by one of these names only ever find the first such node in pre-order.
func DuplicateNames(t *tree.Tree) []string {
	seen := set.New[string](t.Len())
	dups := set.New[string](0)
	names := make([]string, 0)

	t.Walk(func(n *tree.Node) bool {
		if !seen.Contains(n.Name()) {
			seen.Insert(n.Name())
			return true
		}
		if !dups.Contains(n.Name()) {
			dups.Insert(n.Name())
			names = append(names, n.Name())
		}
		return true
	})

	return names
}

// Lines formats s as tab separated name/value lines
func (s Summary) Lines() []string {
	lines := []string{
		"nodes\t" + strconv.Itoa(s.Nodes),
		"tips\t" + strconv.Itoa(s.Tips),
		"max_depth\t" + strconv.Itoa(s.MaxDepth),
		"mean_tip_depth\t" + strconv.FormatFloat(s.MeanTipDepth, 'f', 4, 64),
		"sd_tip_depth\t" + strconv.FormatFloat(s.StdDevTipDepth, 'f', 4, 64),
	}
	if len(s.DuplicateNames) > 0 {
		lines = append(lines, "duplicate_names\t"+strings.Join(s.DuplicateNames, ","))
	}
	return lines
}

// Write writes s to w, one statistic per line
func (s Summary) Write(w io.Writer) error {
	for _, l := range s.Lines() {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}
