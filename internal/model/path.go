package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by its child indices from the root.
// The empty path is the root.
type Path []int

// Child returns a new path pointing at the i-th child of p
func (p Path) Child(i int) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = i
	return c
}

// Parent returns the parent path; the root is its own parent
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1:len(p)-1]
}

// IsRoot reports whether p addresses the root
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Equal reports whether both paths address the same node
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the path as /0/2, or / for the root
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, idx := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// ParsePath parses the output of Path.String
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "/" || s == "" {
		return Path{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("invalid path %q: must start with /", s)
	}
	parts := strings.Split(s[1:], "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path %q: bad index %q", s, part)
		}
		p = append(p, idx)
	}
	return p, nil
}
