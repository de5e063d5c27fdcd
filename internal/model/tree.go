// Package model contains the outline tree edited on the board
package model

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// DefaultRootLabel is the label given to the root when none is configured
const DefaultRootLabel = "Categories"

// ErrNoSuchNode is returned when a path does not resolve to a node
var ErrNoSuchNode = errors.New("no such node")

// Node is a labeled tree element with ordered children.
// Children only ever grow; a node is never removed or reparented.
type Node struct {
	text     string
	children []*Node
	expanded bool
}

// Text returns the node's label
func (n *Node) Text() string {
	return n.text
}

// Children returns the node's children in display order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Expanded reports whether the node's children are eligible for rendering
func (n *Node) Expanded() bool {
	return n.expanded
}

// Tree owns the root node for the lifetime of the session
type Tree struct {
	root    *Node
	version uint64
}

// NewTree creates a tree whose root carries the given label and no
// children. An empty label falls back to DefaultRootLabel.
func NewTree(rootLabel string) *Tree {
	if rootLabel == "" {
		rootLabel = DefaultRootLabel
	}
	return &Tree{root: &Node{text: rootLabel}}
}

// Root returns the root node
func (t *Tree) Root() *Node {
	return t.root
}

// Version increases on every successful mutation
func (t *Tree) Version() uint64 {
	return t.version
}

// NodeAt resolves a path to a node
func (t *Tree) NodeAt(p Path) (*Node, error) {
	n := t.root
	for depth, idx := range p {
		if idx < 0 || idx >= len(n.children) {
			return nil, fmt.Errorf("%w: %s (index %d at depth %d)", ErrNoSuchNode, p, idx, depth)
		}
		n = n.children[idx]
	}
	return n, nil
}

// SetText replaces the text of the node at p. Any string is accepted.
func (t *Tree) SetText(p Path, text string) error {
	n, err := t.NodeAt(p)
	if err != nil {
		return err
	}
	n.text = text
	t.version++
	return nil
}

// AddChild appends an empty child to the node at p and expands the node
// so the new child is visible. It returns the new child's path.
func (t *Tree) AddChild(p Path) (Path, error) {
	child, err := t.AppendChild(p)
	if err != nil {
		return nil, err
	}
	n, _ := t.NodeAt(p)
	n.expanded = true
	return child, nil
}

// AppendChild appends an empty child to the node at p without changing
// its expansion flag.
func (t *Tree) AppendChild(p Path) (Path, error) {
	n, err := t.NodeAt(p)
	if err != nil {
		return nil, err
	}
	n.children = append(n.children, &Node{})
	t.version++
	return p.Child(len(n.children) - 1), nil
}

// WalkFunc is called for every node visited by Walk
type WalkFunc func(p Path, depth int, n *Node) bool

// Walk visits every node depth-first in display order, regardless of
// expansion. Returning false from fn skips the node's subtree.
func (t *Tree) Walk(fn WalkFunc) {
	walk(t.root, Path{}, 0, fn, false)
}

// WalkVisible visits only nodes eligible for rendering: the root, and the
// children of expanded nodes.
func (t *Tree) WalkVisible(fn WalkFunc) {
	walk(t.root, Path{}, 0, fn, true)
}

func walk(n *Node, p Path, depth int, fn WalkFunc, visibleOnly bool) {
	if !fn(p, depth, n) {
		return
	}
	if visibleOnly && !n.expanded {
		return
	}
	for i, c := range n.children {
		walk(c, p.Child(i), depth+1, fn, visibleOnly)
	}
}

// Visible returns the paths of all nodes eligible for rendering
func (t *Tree) Visible() []Path {
	var paths []Path
	t.WalkVisible(func(p Path, _ int, _ *Node) bool {
		paths = append(paths, p)
		return true
	})
	return paths
}

// IsVisible reports whether the node at p exists and every ancestor of it
// is expanded
func (t *Tree) IsVisible(p Path) bool {
	if _, err := t.NodeAt(p); err != nil {
		return false
	}
	for q := p; !q.IsRoot(); {
		q = q.Parent()
		n, _ := t.NodeAt(q)
		if !n.Expanded() {
			return false
		}
	}
	return true
}

// Count returns the total number of nodes including the root
func (t *Tree) Count() int {
	count := 0
	t.Walk(func(Path, int, *Node) bool {
		count++
		return true
	})
	return count
}

// Clone returns a deep copy of the tree, expansion flags included
func (t *Tree) Clone() *Tree {
	return &Tree{root: cloneNode(t.root), version: t.version}
}

func cloneNode(n *Node) *Node {
	c := &Node{text: n.text, expanded: n.expanded}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = cloneNode(child)
		}
	}
	return c
}

// Equal compares two nodes structurally by value: text, expansion flag and
// children, recursively.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.text != b.text || a.expanded != b.expanded || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// dumpNode mirrors Node with exported fields so spew can print it
type dumpNode struct {
	Text     string
	Expanded bool
	Children []dumpNode
}

func toDump(n *Node) dumpNode {
	d := dumpNode{Text: n.text, Expanded: n.expanded}
	for _, c := range n.children {
		d.Children = append(d.Children, toDump(c))
	}
	return d
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders the tree structure for debug logging
func (t *Tree) Dump() string {
	return dumpConfig.Sdump(toDump(t.root))
}

// DumpAt renders the subtree at p the same way Dump renders the whole tree
func (t *Tree) DumpAt(p Path) (string, error) {
	n, err := t.NodeAt(p)
	if err != nil {
		return "", err
	}
	return dumpConfig.Sdump(toDump(n)), nil
}
