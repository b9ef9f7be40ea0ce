// Package asparse implements SparseInterval, an ordered set of disjoint,
// non-touching half-open instant ranges, with the Union, Intersection,
// Difference, and Trim algebra the expression evaluator folds over.
package asparse

import (
	"sort"

	"github.com/jpfluger/atempo/acalendar"
)

// Pair is a half-open instant range [Lo, Hi).
type Pair struct {
	Lo acalendar.Instant
	Hi acalendar.Instant
}

// SparseInterval is a normalized, increasing, disjoint sequence of Pairs.
// A nil or zero-length SparseInterval is the empty set; there is no
// separate "empty" variant to construct.
type SparseInterval []Pair

// New builds a normalized SparseInterval from arbitrary, possibly
// overlapping or unordered pairs.
func New(pairs ...Pair) SparseInterval {
	return normalize(pairs)
}

func normalize(pairs []Pair) SparseInterval {
	work := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if !p.Lo.Before(p.Hi) {
			continue // Lo == Hi (or inverted) carries no content
		}
		work = append(work, p)
	}
	if len(work) == 0 {
		return nil
	}
	sort.Slice(work, func(i, j int) bool { return work[i].Lo.Before(work[j].Lo) })
	out := make(SparseInterval, 0, len(work))
	cur := work[0]
	for _, p := range work[1:] {
		if !p.Lo.After(cur.Hi) {
			if p.Hi.After(cur.Hi) {
				cur.Hi = p.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = p
	}
	out = append(out, cur)
	return out
}

// IsEmpty reports whether s has no content.
func (s SparseInterval) IsEmpty() bool {
	return len(s) == 0
}

// Equal reports whether s and o contain the same pairs in the same order.
func Equal(s, o SparseInterval) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Lo.Equal(o[i].Lo) || !s[i].Hi.Equal(o[i].Hi) {
			return false
		}
	}
	return true
}

// Union returns the normalized union of a and b.
func Union(a, b SparseInterval) SparseInterval {
	merged := make([]Pair, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return normalize(merged)
}

// Intersection returns the normalized intersection of a and b: for every
// overlapping pair (x in a, y in b), the overlap [max(x.Lo,y.Lo),
// min(x.Hi,y.Hi)) is emitted.
func Intersection(a, b SparseInterval) SparseInterval {
	var out []Pair
	for _, x := range a {
		for _, y := range b {
			if x.Hi.Before(y.Lo) || y.Hi.Before(x.Lo) {
				continue
			}
			lo := acalendar.MaxOf(x.Lo, y.Lo)
			hi := acalendar.MinOf(x.Hi, y.Hi)
			if lo.Before(hi) {
				out = append(out, Pair{Lo: lo, Hi: hi})
			}
		}
	}
	return normalize(out)
}

// Difference returns a with every part overlapping b removed.
func Difference(a, b SparseInterval) SparseInterval {
	var out []Pair
	for _, x := range a {
		lo := x.Lo
		hi := x.Hi
		for _, y := range b {
			if y.Hi.Before(lo) || !y.Lo.Before(hi) {
				continue
			}
			if y.Lo.After(lo) {
				out = append(out, Pair{Lo: lo, Hi: y.Lo})
			}
			if y.Hi.After(lo) {
				lo = y.Hi
			}
			if !lo.Before(hi) {
				lo = hi
				break
			}
		}
		if lo.Before(hi) {
			out = append(out, Pair{Lo: lo, Hi: hi})
		}
	}
	return normalize(out)
}

// Complement returns the complement of s within the universal range
// [acalendar.Min, acalendar.Max], computed by interleaving s's endpoints
// with the universal bounds and pairing them off two at a time.
func Complement(s SparseInterval) SparseInterval {
	points := make([]acalendar.Instant, 0, len(s)*2+2)
	points = append(points, acalendar.Min)
	for _, p := range s {
		points = append(points, p.Lo, p.Hi)
	}
	points = append(points, acalendar.Max)
	var out []Pair
	for i := 0; i+1 < len(points); i += 2 {
		out = append(out, Pair{Lo: points[i], Hi: points[i+1]})
	}
	return normalize(out)
}

// Trim drops sub-intervals entirely outside [lo, hi], clipping the
// partial overlaps at the boundary. A nil lo or hi means unbounded on
// that side.
func (s SparseInterval) Trim(lo, hi *acalendar.Instant) SparseInterval {
	var out []Pair
	for _, p := range s {
		l, h := p.Lo, p.Hi
		if lo != nil && l.Before(*lo) {
			l = *lo
		}
		if hi != nil && h.After(*hi) {
			h = *hi
		}
		if l.Before(h) {
			out = append(out, Pair{Lo: l, Hi: h})
		}
	}
	return normalize(out)
}
