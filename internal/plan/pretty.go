package plan

import (
	"fmt"
	"strings"
)

// Pretty renders the program either with indented blocks or with braces.
func (p *Program) Pretty(indentedBlocks bool) string {
	var b strings.Builder
	for _, fn := range p.Functions {
		if indentedBlocks {
			fmt.Fprintf(&b, "Function %s:\n", fn.Name)
		} else {
			fmt.Fprintf(&b, "Function %s {\n", fn.Name)
		}
		for _, n := range fn.Nodes {
			renderNode(&b, n, 1, indentedBlocks)
		}
		if indentedBlocks {
			b.WriteByte('\n')
		} else {
			b.WriteString("}\n\n")
		}
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node, indent int, indentedBlocks bool) {
	ind := strings.Repeat("  ", indent)
	switch x := n.(type) {
	case Rewrite:
		head := fmt.Sprintf("%s%s [%s]", ind, directiveTitle(x.Directive), x.Name)
		if x.Reason != "" {
			head += fmt.Sprintf(" %q", x.Reason)
		}
		head += fmt.Sprintf(" (%s)", x.Variant)

		if indentedBlocks {
			fmt.Fprintf(b, "%s\n", head)
		} else {
			fmt.Fprintf(b, "%s {\n", head)
		}
		for _, s := range x.Steps {
			renderNode(b, s, indent+1, indentedBlocks)
		}
		if !indentedBlocks {
			fmt.Fprintf(b, "%s}\n", ind)
		}
	case Consume:
		fmt.Fprintf(b, "%sConsume [%s]\n", ind, x.Name)
	case Obligation:
		fmt.Fprintf(b, "%sObligation [%s] type=%s\n", ind, x.Name, x.Type)
	case Check:
		fmt.Fprintf(b, "%sCheck [%s] assume=%q strength=%s\n", ind, x.Name, x.Assume, x.Strength)
	case Rebind:
		fmt.Fprintf(b, "%sRebind [%s] -> Ignored\n", ind, x.Name)
	case Problem:
		fmt.Fprintf(b, "%sProblem %s %q\n", ind, x.Code, x.Message)
	}
}

func directiveTitle(kind string) string {
	if kind == "" {
		return "Directive"
	}

	return strings.ToUpper(kind[:1]) + kind[1:]
}
