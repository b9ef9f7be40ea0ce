// Package aexpr implements the boolean expression tree (AND/OR/NOT over
// RecurrentEvent leaves) and its iterative, generic post-order walker.
package aexpr

import (
	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/arecur"
)

// Kind names a node's role in the tree.
type Kind int

const (
	KindLeaf Kind = iota
	KindAnd
	KindOr
	KindNot
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "LEAF"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNot:
		return "NOT"
	default:
		return "UNKNOWN"
	}
}

// Node is one node of the expression tree: either a Leaf wrapping a
// RecurrentEvent, or an operator with one or more Children.
type Node struct {
	Kind     Kind
	Leaf     *arecur.RecurrentEvent
	Children []*Node
}

// NewLeaf wraps a RecurrentEvent as a leaf node.
func NewLeaf(re *arecur.RecurrentEvent) *Node {
	return &Node{Kind: KindLeaf, Leaf: re}
}

// NewAnd builds an AND node over one or more children.
func NewAnd(children ...*Node) (*Node, error) {
	if len(children) < 1 {
		return nil, aerr.NewStructural("aexpr: AND requires at least one child")
	}
	return &Node{Kind: KindAnd, Children: children}, nil
}

// NewOr builds an OR node over one or more children.
func NewOr(children ...*Node) (*Node, error) {
	if len(children) < 1 {
		return nil, aerr.NewStructural("aexpr: OR requires at least one child")
	}
	return &Node{Kind: KindOr, Children: children}, nil
}

// NewNot builds a NOT node over exactly one child.
func NewNot(child *Node) (*Node, error) {
	if child == nil {
		return nil, aerr.NewStructural("aexpr: NOT requires exactly one child")
	}
	return &Node{Kind: KindNot, Children: []*Node{child}}, nil
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Kind == KindLeaf
}

// Validate checks structural invariants recursively: valid leaf (delegated
// to arecur.New's own checks at construction time, so this only re-checks
// arity), and correct operator arity.
func (n *Node) Validate() error {
	if n == nil {
		return aerr.NewStructural("aexpr: nil node")
	}
	switch n.Kind {
	case KindLeaf:
		if n.Leaf == nil {
			return aerr.NewStructural("aexpr: leaf node with no RecurrentEvent")
		}
		return nil
	case KindAnd, KindOr:
		if len(n.Children) < 1 {
			return aerr.NewStructural("aexpr: " + n.Kind.String() + " requires at least one child")
		}
	case KindNot:
		if len(n.Children) != 1 {
			return aerr.NewStructural("aexpr: NOT requires exactly one child")
		}
	default:
		return aerr.NewStructural("aexpr: unknown node kind")
	}
	for _, c := range n.Children {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
