// Package xpath evaluates a restricted path-expression grammar over dom
// trees. An expression is a '/'-separated chain of segments evaluated left
// to right against a running element set; supported segments are '*', '..',
// '.', a plain child name, and a child name with one bracketed predicate.
//
// Evaluation is total: malformed or unsupported expressions never raise an
// error, they produce an empty result.
package xpath

import (
	"strconv"
	"strings"
)

type segmentKind int

const (
	segName segmentKind = iota
	segWildcard
	segSelf
	segParent
)

type predicateKind int

const (
	predNone predicateKind = iota
	predIndex
	predAttrExists
	predAttrEquals
	predTextEquals
	predUnsupported
)

type segment struct {
	kind  segmentKind
	name  string // name filter; "*" matches any child element
	pred  predicateKind
	attr  string // attribute key for predAttrExists/predAttrEquals
	value string // comparison value for predAttrEquals/predTextEquals
	index int    // 1-based position for predIndex
}

// Path is a compiled expression, reusable across trees and evaluations.
type Path struct {
	expr     string
	absolute bool
	segments []segment
}

// Compile parses an expression into a Path. It never fails: segments the
// grammar does not recognize evaluate to an empty set.
func Compile(expr string) *Path {
	p := &Path{expr: expr}
	rest := expr
	if strings.HasPrefix(rest, "/") {
		p.absolute = true
		rest = rest[1:]
	}
	if rest == "" {
		return p
	}
	for _, part := range strings.Split(rest, "/") {
		p.segments = append(p.segments, parseSegment(part))
	}
	return p
}

// String returns the original expression.
func (p *Path) String() string {
	return p.expr
}

func parseSegment(part string) segment {
	switch part {
	case "*":
		return segment{kind: segWildcard}
	case "..":
		return segment{kind: segParent}
	case ".":
		return segment{kind: segSelf}
	}

	open := strings.Index(part, "[")
	end := strings.LastIndex(part, "]")
	if open >= 0 && end > open {
		seg := segment{kind: segName, name: part[:open]}
		parsePredicate(&seg, part[open+1:end])
		return seg
	}
	return segment{kind: segName, name: part, pred: predNone}
}

func parsePredicate(seg *segment, pred string) {
	if n, err := strconv.Atoi(strings.TrimSpace(pred)); err == nil {
		seg.pred = predIndex
		seg.index = n
		return
	}
	if strings.HasPrefix(pred, "@") {
		attr, value, hasValue := strings.Cut(pred[1:], "=")
		if !hasValue {
			seg.pred = predAttrExists
			seg.attr = attr
			return
		}
		seg.pred = predAttrEquals
		seg.attr = attr
		seg.value = unquote(value)
		return
	}
	if value, ok := strings.CutPrefix(pred, "text()="); ok {
		seg.pred = predTextEquals
		seg.value = unquote(value)
		return
	}
	seg.pred = predUnsupported
}

// unquote strips one level of matching single or double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
