// Package dom implements an in-memory XML document tree: a closed set of
// node variants (Element, Text, Comment, CData, ProcessingInstruction) linked
// into a single rooted tree, plus the Document container that owns the root.
//
// The tree is mutable and unsynchronized. Callers sharing a tree across
// goroutines must serialize access themselves; Copy produces an independent
// snapshot safe for concurrent use.
package dom

import "strings"

// Node is one node in an XML tree. The Type tag determines which fields are
// meaningful: elements use the name, attribute list, and child links; text,
// comment, and CDATA nodes use the data field; processing instructions use
// the name field as their target and the data field as their payload.
type Node struct {
	nodeType NodeType
	name     string // element tag name, or processing-instruction target
	data     string // text/comment/CDATA content, or processing-instruction data

	attrs []Attr // element only; unique keys, insertion-ordered

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// NewText creates a standalone text node.
func NewText(value string) *Node {
	return &Node{nodeType: TextNode, data: value}
}

// NewComment creates a standalone comment node.
func NewComment(value string) *Node {
	return &Node{nodeType: CommentNode, data: value}
}

// NewCData creates a standalone CDATA section node.
func NewCData(value string) *Node {
	return &Node{nodeType: CDataNode, data: value}
}

// NewProcInst creates a standalone processing-instruction node.
func NewProcInst(target, data string) *Node {
	return &Node{nodeType: ProcInstNode, name: target, data: data}
}

// Type returns the variant tag of the node.
func (n *Node) Type() NodeType {
	return n.nodeType
}

// Name returns the tag name for elements and the target for processing
// instructions. It is empty for the other variants.
func (n *Node) Name() string {
	return n.name
}

// Data returns the content of a text, comment, or CDATA node, or the data
// portion of a processing instruction. It is empty for elements.
func (n *Node) Data() string {
	return n.data
}

// SetData replaces the content of a text, comment, CDATA, or
// processing-instruction node. It is a no-op on elements.
func (n *Node) SetData(value string) {
	if n.nodeType != ElementNode {
		n.data = value
	}
}

// Parent returns the owning element, or nil for a tree root or a standalone
// node. The link is lookup-only: it never implies ownership and is written
// exclusively by attach and detach operations.
func (n *Node) Parent() *Element {
	if n.parent == nil {
		return nil
	}
	return (*Element)(n.parent)
}

// FirstChild returns the first child node, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PrevSibling returns the previous sibling, or nil if n is a first child.
func (n *Node) PrevSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling, or nil if n is a last child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// Depth returns the number of parent hops to the top of the chain. A node
// with no parent has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// contains reports whether other is n or a descendant of n.
func (n *Node) contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// detach removes n from its parent's child list and clears its parent and
// sibling links. Safe on standalone nodes.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else {
		p.firstChild = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	} else {
		p.lastChild = n.prevSibling
	}
	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

// Copy returns a deep copy of the node. The copy is standalone: it has no
// parent and shares no node identity with the original.
func (n *Node) Copy() *Node {
	clone := &Node{
		nodeType: n.nodeType,
		name:     n.name,
		data:     n.data,
	}
	if n.attrs != nil {
		clone.attrs = make([]Attr, len(n.attrs))
		copy(clone.attrs, n.attrs)
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		(*Element)(clone).AppendChild(c.Copy())
	}
	return clone
}

// collectText appends the content of direct text children of n to sb.
func (n *Node) collectText(sb *strings.Builder) {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == TextNode {
			sb.WriteString(c.data)
		}
	}
}
