package dom

import "strings"

const indentUnit = "    "

// String renders the node as compact XML. Text content escapes the markup
// characters & < > only; attribute values escape the double quote only, so
// parsing the output restores the original values.
func (n *Node) String() string {
	var sb strings.Builder
	writeNode(&sb, n, 0, false)
	return sb.String()
}

// String renders the element and its subtree as compact XML.
func (e *Element) String() string {
	return e.AsNode().String()
}

// IndentString renders the element and its subtree with 4-space indentation
// per depth level and newlines between structural children.
func (e *Element) IndentString() string {
	var sb strings.Builder
	writeNode(&sb, e.AsNode(), 0, true)
	return sb.String()
}

// String renders the whole document compactly: declaration, pre-root
// processing instructions and comments, then the root element.
func (d *Document) String() string {
	return d.render(false)
}

// IndentString renders the whole document in pretty-printed form.
func (d *Document) IndentString() string {
	return d.render(true)
}

func (d *Document) render(indent bool) string {
	var sb strings.Builder
	version := d.Version
	if version == "" {
		version = DefaultVersion
	}
	encoding := d.Encoding
	if encoding == "" {
		encoding = DefaultEncoding
	}
	sb.WriteString(`<?xml version="` + version + `" encoding="` + encoding + `"?>`)
	sb.WriteString("\n")
	for _, pi := range d.Instructions {
		writeNode(&sb, pi, 0, indent)
		sb.WriteString("\n")
	}
	for _, c := range d.Comments {
		writeNode(&sb, c, 0, indent)
		sb.WriteString("\n")
	}
	if d.root != nil {
		writeNode(&sb, d.root.AsNode(), 0, indent)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, depth int, indent bool) {
	switch n.nodeType {
	case ElementNode:
		writeElement(sb, (*Element)(n), depth, indent)
	case TextNode:
		sb.WriteString(escapeText(n.data))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.data)
		sb.WriteString("-->")
	case CDataNode:
		sb.WriteString("<![CDATA[")
		sb.WriteString(n.data)
		sb.WriteString("]]>")
	case ProcInstNode:
		sb.WriteString("<?")
		sb.WriteString(n.name)
		if n.data != "" {
			sb.WriteString(" ")
			sb.WriteString(n.data)
		}
		sb.WriteString("?>")
	}
}

func writeElement(sb *strings.Builder, e *Element, depth int, indent bool) {
	sb.WriteString("<")
	sb.WriteString(e.name)
	for _, a := range e.attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteString(`"`)
	}
	if e.firstChild == nil {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")

	// Pure-text content stays inline even in indent mode; newline placement
	// inside it would change the text on re-parse.
	if indent && hasStructuralChild(e) {
		for c := e.firstChild; c != nil; c = c.nextSibling {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(indentUnit, depth+1))
			writeNode(sb, c, depth+1, true)
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(indentUnit, depth))
	} else {
		for c := e.firstChild; c != nil; c = c.nextSibling {
			writeNode(sb, c, depth+1, indent)
		}
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteString(">")
}

func hasStructuralChild(e *Element) bool {
	for c := e.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType != TextNode {
			return true
		}
	}
	return false
}

func escapeText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
