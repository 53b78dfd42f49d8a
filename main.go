package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/benjamincjackson/famtree/pkg/ancestry"
	"github.com/benjamincjackson/famtree/pkg/summary"
	"github.com/benjamincjackson/famtree/pkg/tree"
	"github.com/benjamincjackson/famtree/pkg/treeio"
)

func checkArgs(treeFile string, format string, name1 string, name2 string) (treeio.Format, error) {
	if len(treeFile) == 0 {
		return "", errors.New("a --treefile is required")
	}

	f, err := treeio.ParseFormat(format)
	if err != nil {
		return "", err
	}

	if len(name1) > 0 && len(name2) == 0 || len(name1) == 0 && len(name2) > 0 {
		return "", errors.New("if you provide --name1 you must provide --name2, and vice versa")
	}

	return f, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func famtree(out io.Writer, logger *slog.Logger, treeFile string, format string, name1 string, name2 string, summarize bool) error {
	f, err := checkArgs(treeFile, format, name1, name2)
	if err != nil {
		return err
	}

	t, err := treeio.ReadTree(treeFile, logger)
	if err != nil {
		return err
	}

	if dups := summary.DuplicateNames(t); len(dups) > 0 {
		logger.Warn("names used by more than one node, lookups find the first in pre-order",
			slog.Any("names", dups))
	}

	if err := treeio.Write(out, t, f); err != nil {
		return err
	}

	if summarize {
		if err := summary.Summarize(t).Write(out); err != nil {
			return err
		}
	}

	if len(name1) > 0 {
		ancestor, err := ancestry.MRCA(t, name1, name2)
		if err != nil {
			return err
		}
		if ancestor == nil {
			fmt.Fprintf(out, "%s and %s have no common ancestor\n", name1, name2)
		} else {
			fmt.Fprintf(out, "Most recent common ancestor of %s and %s is %s\n", name1, name2, ancestor.Name())
		}
	}

	return nil
}

// isTreeError reports whether err came from the contents of the tree file
// (or a query against it) rather than from reading it
func isTreeError(err error) bool {
	return errors.Is(err, tree.ErrMalformedLine) ||
		errors.Is(err, tree.ErrParentNotFound) ||
		errors.Is(err, tree.ErrNodeNotFound)
}

var treeFile string
var format string
var name1 string
var name2 string
var summarize bool
var verbose bool

var mainCmd = &cobra.Command{
	Use:   "famtree",
	Short: "family tree reader",
	Long: `family tree reader

Reads a family tree, one "parent:child1,child2,..." line per family. The
first line's parent is the root; every later parent must already be in the tree.

Example usage:

./famtree --treefile data/hobbits.txt --name1 Frodo --name2 Sam
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		logger := newLogger(os.Stderr, verbose)

		err = famtree(os.Stdout, logger, treeFile, format, name1, name2, summarize)

		return
	},
}

func init() {
	mainCmd.Flags().StringVarP(&treeFile, "treefile", "", "", "Family tree file to read - one parent:child1,child2,... line per family")
	mainCmd.Flags().StringVarP(&format, "format", "", "text", "Format to print the tree in (choose one of text/newick/kdl)")
	mainCmd.Flags().StringVarP(&name1, "name1", "", "", "Find the most recent common ancestor of this node...")
	mainCmd.Flags().StringVarP(&name2, "name2", "", "", "...and this one")
	mainCmd.Flags().BoolVarP(&summarize, "summarize", "", false, "Print some statistics about the tree (default: false)")
	mainCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging information to stderr (default: false)")

	mainCmd.Flags().Lookup("summarize").NoOptDefVal = "true"
	mainCmd.Flags().Lookup("verbose").NoOptDefVal = "true"

	mainCmd.Flags().SortFlags = false
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		var pathErr *fs.PathError
		switch {
		case isTreeError(err):
			fmt.Fprintln(os.Stderr, "Input file trouble: "+err.Error())
		case errors.As(err, &pathErr):
			fmt.Fprintln(os.Stderr, "IO trouble: "+err.Error())
		default:
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(1)
	}
}
