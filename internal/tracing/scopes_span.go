package tracing

import (
	"fmt"
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/irrelevant/internal/directive"
)

// discardSpan stores a [start,end] span of a discard and, if needed, a nested RB-tree
// for spans fully contained in this span.
type discardSpan struct {
	start token.Pos
	end   token.Pos

	dir      *directive.Directive
	children *rbtree.Tree[*discardSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// NOTE: overlapping discard spans are always nested. "Equal" (0) means either
// superspan or subspan and InsertReturn hands the overlapping node back to us.
func (n *discardSpan) Cmp(other *discardSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *discardSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t, using the following containment rules:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, r is mutated in-place to become s
//     and the old r is re-attached as a child of the new s.
//   - If r contains s, s is attached into r.children.
func attachInto(t *rbtree.Tree[*discardSpan], s *discardSpan) error {
	r := t.InsertReturn(s)
	if r == s {
		return nil
	}

	if contains(s, r) {
		old := *r
		*r = *s
		r.children = rbtree.New[*discardSpan]()
		return attachInto(r.children, &old)
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*discardSpan]()
		}
		return attachInto(r.children, s)
	}

	return fmt.Errorf(
		"discard span [%d,%d] of %s partially overlaps [%d,%d] of %s",
		s.start, s.end, s.dir.Name(),
		r.start, r.end, r.dir.Name(),
	)
}

func descendCollect(t *rbtree.Tree[*discardSpan], pos token.Pos, res *[]*directive.Directive) {
	if t == nil {
		return
	}

	n := t.Search(&discardSpan{start: pos, end: pos})
	if n == nil {
		return
	}

	*res = append(*res, n.dir)
	descendCollect(n.children, pos, res)
}
