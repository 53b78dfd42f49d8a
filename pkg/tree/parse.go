package tree

import "strings"

// ParseLine splits a "parent:child1,child2,..." line into the parent's name
// and the ordered names of its children. Only the first colon separates the
// parent. Names are not trimmed, and empty child names (e.g. from a trailing
// comma) are kept.
func ParseLine(line string) (string, []string, error) {
	colonIndex := strings.IndexByte(line, ':')
	if colonIndex < 0 {
		return "", nil, &MalformedLineError{Line: line}
	}

	parent := line[:colonIndex]
	children := strings.Split(line[colonIndex+1:], ",")

	return parent, children, nil
}
