package aexpr

import "github.com/jpfluger/atempo/arecur"

// frame tracks one node's progress through the iterative post-order walk:
// which child to descend into next, and the results collected from the
// children already visited.
type frame[T any] struct {
	node *Node
	args []T
	idx  int
}

// Walk evaluates the tree rooted at n with an explicit stack rather than
// recursion, so a pathologically deep tree can't blow the call stack.
// leafFn is invoked once per leaf in left-to-right order; opFn folds each
// operator's collected child results. Either function may signal Void by
// returning ok == false, in which case the walker omits that value from
// its parent's argument list entirely. An operator whose children were all
// Void is still folded, with an empty argument list; whether that result is
// itself Void is up to opFn.
func Walk[T any](n *Node, leafFn func(*arecur.RecurrentEvent) (T, bool), opFn func(Kind, []T) (T, bool)) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	stack := []*frame[T]{{node: n}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.node.Kind == KindLeaf {
			v, ok := leafFn(top.node.Leaf)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return v, ok
			}
			if ok {
				parent := stack[len(stack)-1]
				parent.args = append(parent.args, v)
			}
			continue
		}

		if top.idx < len(top.node.Children) {
			child := top.node.Children[top.idx]
			top.idx++
			stack = append(stack, &frame[T]{node: child})
			continue
		}

		v, ok := opFn(top.node.Kind, top.args)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return v, ok
		}
		if ok {
			parent := stack[len(stack)-1]
			parent.args = append(parent.args, v)
		}
	}
	return zero, false
}
