package xpath

import "github.com/chrisuehlinger/xmldom/dom"

// Evaluate compiles expr and evaluates it against ctx.
func Evaluate(expr string, ctx *dom.Element) []*dom.Element {
	return Compile(expr).Evaluate(ctx)
}

// Evaluate runs the path against ctx and returns matching elements in
// document order, one context element's matches before the next. Results
// alias the live tree: they are references, never copies, and mutations
// through the dom interface remain visible through them. Duplicates the
// grammar produces are preserved.
func (p *Path) Evaluate(ctx *dom.Element) []*dom.Element {
	if ctx == nil {
		return nil
	}
	set := []*dom.Element{ctx}
	if p.absolute {
		set = []*dom.Element{ctx.Root()}
	}
	for _, seg := range p.segments {
		set = evalSegment(seg, set)
		if len(set) == 0 {
			return nil
		}
	}
	return set
}

func evalSegment(seg segment, set []*dom.Element) []*dom.Element {
	switch seg.kind {
	case segSelf:
		return set
	case segParent:
		var out []*dom.Element
		for _, e := range set {
			if parent := e.Parent(); parent != nil {
				out = append(out, parent)
			}
		}
		return out
	case segWildcard:
		var out []*dom.Element
		for _, e := range set {
			out = append(out, e.ChildElements()...)
		}
		return out
	default:
		return applyPredicate(seg, childMatches(seg.name, set))
	}
}

// childMatches name-filters the direct child elements of every element in
// the set, building the candidate set in document order.
func childMatches(name string, set []*dom.Element) []*dom.Element {
	var out []*dom.Element
	for _, e := range set {
		for _, child := range e.ChildElements() {
			if name == "*" || child.Name() == name {
				out = append(out, child)
			}
		}
	}
	return out
}

func applyPredicate(seg segment, candidates []*dom.Element) []*dom.Element {
	switch seg.pred {
	case predNone:
		return candidates
	case predIndex:
		// 1-based position in the candidate set; anything out of range
		// (including zero and negatives) selects nothing.
		if seg.index < 1 || seg.index > len(candidates) {
			return nil
		}
		return candidates[seg.index-1 : seg.index]
	case predAttrExists:
		var out []*dom.Element
		for _, e := range candidates {
			if e.HasAttr(seg.attr) {
				out = append(out, e)
			}
		}
		return out
	case predAttrEquals:
		var out []*dom.Element
		for _, e := range candidates {
			if e.HasAttr(seg.attr) && e.Attr(seg.attr) == seg.value {
				out = append(out, e)
			}
		}
		return out
	case predTextEquals:
		var out []*dom.Element
		for _, e := range candidates {
			if e.Text() == seg.value {
				out = append(out, e)
			}
		}
		return out
	default:
		// Unsupported predicates select nothing rather than erroring.
		return nil
	}
}
