package aset

import (
	"sort"

	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
	"github.com/jpfluger/atempo/asparse"
	"github.com/jpfluger/atempo/aunit"
)

// leafState tracks one leaf's lazy generator and the accumulated
// SparseInterval of everything it has produced so far.
type leafState struct {
	gen       *arecur.Forward
	acc       asparse.SparseInterval
	exhausted bool
}

// Forward is a lazy external iterator over the instant ranges on which
// the whole expression is true, merging each leaf's independent forward
// sequence through the expression's AND/OR/NOT structure.
//
// Each round evaluates the expression over every leaf's accumulated
// SparseInterval. The earliest emitted sub-interval is only released once
// every still-live leaf has either produced output reaching past its
// closing boundary, or has exhausted outright — at that point no future
// pull from any leaf can still extend or split it, by the monotonicity of
// each leaf's own forward sequence.
type Forward struct {
	expr      *aexpr.Node
	leaves    []*leafState
	emittedHi *acalendar.Instant
	done      bool
}

// Forward starts a forward enumeration of s's expression from "from".
func (s *RecurrentEventSet) Forward(from acalendar.Instant, trim bool) *Forward {
	expr := collapseGaplessOr(s.Expr, from)
	f := &Forward{expr: expr}
	for _, re := range flattenLeaves(expr) {
		f.leaves = append(f.leaves, &leafState{gen: re.Forward(from, trim)})
	}
	return f
}

// collapseGaplessOr rewrites any OR node whose children are all leaves
// sharing the same Unit and a Day-or-Week Recurrence, and whose position
// ranges tile that recurrence window end-to-end with no gap, into a
// single synthetic leaf spanning the whole window. That synthetic leaf
// then satisfies arecur.Forward's own per-leaf gapless shortcut, so a
// composite that is jointly gapless without any individual leaf being
// gapless itself (e.g. two daily RecurrentEvents covering hours 0-12 and
// 12-24: neither spans its whole day alone, but the two together never
// leave a gap) collapses to a single (Lo, Max) pair up front instead of
// pulling every leaf's generator forever chasing a gap that never comes.
//
// Month and Year recurrences are left alone: the number of finer units a
// month or year spans isn't constant across periods (days-per-month,
// days-per-year both vary), so a tiling check against one anchor
// wouldn't necessarily hold for every future period.
func collapseGaplessOr(n *aexpr.Node, from acalendar.Instant) *aexpr.Node {
	if n == nil || n.IsLeaf() {
		return n
	}
	children := make([]*aexpr.Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = collapseGaplessOr(c, from)
	}
	if n.Kind == aexpr.KindOr {
		if tiled, ok := gaplessTiledLeaf(children, from); ok {
			return tiled
		}
	}
	return &aexpr.Node{Kind: n.Kind, Children: children}
}

// gaplessTiledLeaf reports whether children are all leaves sharing one
// Unit and one Day-or-Week Recurrence whose [Start,Stop) ranges, sorted,
// touch end-to-end across the whole recurrence window with no gap, and if
// so returns a single leaf node equivalent to their union.
func gaplessTiledLeaf(children []*aexpr.Node, from acalendar.Instant) (*aexpr.Node, bool) {
	if len(children) == 0 {
		return nil, false
	}
	var unit aunit.Unit
	var recurrence aunit.Unit
	ranges := make([][2]int, 0, len(children))
	for i, c := range children {
		if !c.IsLeaf() || c.Leaf.Recurrence == nil {
			return nil, false
		}
		re := c.Leaf
		if *re.Recurrence != aunit.Day && *re.Recurrence != aunit.Week {
			return nil, false
		}
		if i == 0 {
			unit = re.Unit
			recurrence = *re.Recurrence
		} else if re.Unit != unit || *re.Recurrence != recurrence {
			return nil, false
		}
		ranges = append(ranges, [2]int{re.Start, re.Stop})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })

	base := aunit.Base(unit)
	anchor := acalendar.Floor(from, recurrence)
	unitsPerWindow, err := acalendar.UnitsPerWindow(anchor, unit, recurrence)
	if err != nil {
		return nil, false
	}
	if ranges[0][0] != base {
		return nil, false
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i][0] != ranges[i-1][1] {
			return nil, false
		}
	}
	if int64(ranges[len(ranges)-1][1]-base) != unitsPerWindow {
		return nil, false
	}

	re, err := arecur.New(base, base+int(unitsPerWindow), unit, &recurrence)
	if err != nil {
		return nil, false
	}
	return aexpr.NewLeaf(re), true
}

// flattenLeaves lists the expression's leaves in the same left-to-right
// preorder aexpr.Walk visits them in, via an explicit stack.
func flattenLeaves(root *aexpr.Node) []*arecur.RecurrentEvent {
	var out []*arecur.RecurrentEvent
	type item struct {
		node *aexpr.Node
	}
	stack := []item{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			out = append(out, top.node.Leaf)
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: top.node.Children[i]})
		}
	}
	return out
}

// Next produces the next pair in increasing order. ok is false once every
// leaf is exhausted and no live content remains to emit.
func (f *Forward) Next() (asparse.Pair, bool) {
	if f.done {
		return asparse.Pair{}, false
	}
	for {
		g := f.evaluate()
		if f.emittedHi != nil {
			g = g.Trim(f.emittedHi, nil)
		}

		if len(g) == 0 {
			if f.allExhausted() {
				f.done = true
				return asparse.Pair{}, false
			}
			f.pullAll()
			continue
		}

		candidate := g[0]

		if len(g) == 1 {
			if f.allExhausted() {
				f.advance(candidate.Hi)
				return candidate, true
			}
			f.pullAll()
			continue
		}

		lastDate := candidate.Hi
		if f.canEmit(lastDate) {
			f.advance(lastDate)
			return asparse.Pair{Lo: candidate.Lo, Hi: lastDate}, true
		}
		f.pullAll()
	}
}

// evaluate folds the expression's AND/OR/NOT structure over each leaf's
// current accumulated SparseInterval, in the same preorder flattenLeaves
// used to build f.leaves, so the i-th leaf visited is always f.leaves[i].
func (f *Forward) evaluate() asparse.SparseInterval {
	idx := 0
	v, ok := aexpr.Walk(f.expr,
		func(*arecur.RecurrentEvent) (asparse.SparseInterval, bool) {
			acc := f.leaves[idx].acc
			idx++
			return acc, true
		},
		func(kind aexpr.Kind, args []asparse.SparseInterval) (asparse.SparseInterval, bool) {
			switch kind {
			case aexpr.KindAnd:
				result := args[0]
				for _, a := range args[1:] {
					result = asparse.Intersection(result, a)
				}
				return result, true
			case aexpr.KindOr:
				var result asparse.SparseInterval
				for _, a := range args {
					result = asparse.Union(result, a)
				}
				return result, true
			case aexpr.KindNot:
				if len(args) != 1 {
					return nil, false
				}
				return asparse.Complement(args[0]), true
			default:
				return nil, false
			}
		},
	)
	if !ok {
		return nil
	}
	return v
}

func (f *Forward) allExhausted() bool {
	for _, l := range f.leaves {
		if !l.exhausted {
			return false
		}
	}
	return true
}

// canEmit reports whether every still-live leaf has already produced
// output reaching at least up to lastDate, so nothing it produces next
// could still extend or reopen the candidate about to be emitted.
func (f *Forward) canEmit(lastDate acalendar.Instant) bool {
	for _, l := range f.leaves {
		if l.exhausted {
			continue
		}
		if len(l.acc) == 0 {
			return false
		}
		if l.acc[len(l.acc)-1].Hi.Before(lastDate) {
			return false
		}
	}
	return true
}

// pullAll advances every still-live leaf's generator by exactly one pair.
func (f *Forward) pullAll() {
	for _, l := range f.leaves {
		if l.exhausted {
			continue
		}
		pair, ok := l.gen.Next()
		if !ok {
			l.exhausted = true
			continue
		}
		l.acc = asparse.Union(l.acc, asparse.SparseInterval{{Lo: pair.Lo, Hi: pair.Hi}})
	}
}

// advance records the new emitted boundary and compacts every leaf's
// accumulator down to the content still relevant beyond it, bounding the
// memory the enumeration holds onto as it runs forward indefinitely.
func (f *Forward) advance(hi acalendar.Instant) {
	f.emittedHi = &hi
	for _, l := range f.leaves {
		l.acc = l.acc.Trim(f.emittedHi, nil)
	}
}
