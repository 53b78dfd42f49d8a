package treeio

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/benjamincjackson/famtree/pkg/tree"
)

// ReadLines feeds every line of r to t, in order. It stops at the first line
// that can't be ingested, returning an error that carries its 1-based line
// number. Lines before that one stay in the tree. Lines may be any length.
//
// The count returned is the number of lines ingested.
func ReadLines(t *tree.Tree, r io.Reader) (int, error) {
	counter := 0

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for s.Scan() {
		counter++
		line := s.Text()
		if err := t.IngestLine(line); err != nil {
			return counter - 1, errors.Wrapf(err, "line %d", counter)
		}
	}
	if err := s.Err(); err != nil {
		return counter, errors.Wrap(err, "reading family tree")
	}

	return counter, nil
}

// ReadTree builds a family tree from the parent:children lines in treeFile
func ReadTree(treeFile string, logger *slog.Logger) (*tree.Tree, error) {
	f, err := os.Open(treeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := tree.NewTree()
	n, err := ReadLines(t, f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", treeFile)
	}

	logger.Debug("read family tree",
		slog.String("file", treeFile),
		slog.Int("lines", n),
		slog.Int("nodes", t.Len()))

	return t, nil
}
