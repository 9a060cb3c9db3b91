package tracing

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/irrelevant/internal/directive"
)

// NewScopes is [Scopes] constructor.
func NewScopes() *Scopes {
	return &Scopes{tree: rbtree.New[*discardSpan]()}
}

// Scopes indexes the source ranges where discarded values must not be touched.
// Every range starts right after a directive call and lasts until the end of the
// innermost block enclosing it. Two such ranges are either disjoint or nested.
type Scopes struct {
	tree *rbtree.Tree[*discardSpan]
}

// Add registers a discard effective over the [start,end] token span.
func (s *Scopes) Add(d *directive.Directive, start, end token.Pos) error {
	return attachInto(s.tree, &discardSpan{start: start, end: end, dir: d})
}

// Covering returns discards whose spans cover pos, outermost first.
func (s *Scopes) Covering(pos token.Pos) []*directive.Directive {
	var res []*directive.Directive
	descendCollect(s.tree, pos, &res)
	return res
}
