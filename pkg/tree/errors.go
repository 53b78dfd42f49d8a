package tree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedLine is matched by a MalformedLineError
	ErrMalformedLine = errors.New("malformed line")

	// ErrParentNotFound is matched by a ParentNotFoundError
	ErrParentNotFound = errors.New("parent node not found")

	// ErrNodeNotFound is matched by a NodeNotFoundError
	ErrNodeNotFound = errors.New("node not found")
)

// MalformedLineError is returned for a line with no colon
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line is missing colon: %s", e.Line)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// ParentNotFoundError is returned when a line names a parent that isn't in the tree yet
type ParentNotFoundError struct {
	Name string
	Line string
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("parent node not found: %s", e.Name)
}

func (e *ParentNotFoundError) Is(target error) bool {
	return target == ErrParentNotFound
}

// NodeNotFoundError is returned when a queried name isn't in the tree
type NodeNotFoundError struct {
	Name string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node not found: %s", e.Name)
}

func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}
