package plan

// StripPos returns a deep copy of prog with all Pos fields zeroed.
// This is useful for equality testing (ignoring source positions).
func StripPos(p *Program) *Program {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Functions = make([]Function, len(p.Functions))
	for i, fn := range p.Functions {
		cp.Functions[i] = Function{Name: fn.Name}
		for _, n := range fn.Nodes {
			cp.Functions[i].Nodes = append(cp.Functions[i].Nodes, stripNodePos(n))
		}
	}
	return &cp
}

func stripNodePos(n Node) Node {
	switch x := n.(type) {
	case Rewrite:
		x.Pos = Pos{}
		x.Steps = append([]Node(nil), x.Steps...)
		return x
	case Problem:
		x.Pos = Pos{}
		return x
	default:
		return n
	}
}
