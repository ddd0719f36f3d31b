package dom

import "strings"

// Element is a named, attributed node that may own children. It is a view
// over Node; convert with AsNode and AsElement.
type Element Node

// NewElement creates a standalone element with the given tag name.
func NewElement(name string) *Element {
	return &Element{nodeType: ElementNode, name: name}
}

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// AsElement returns n viewed as an Element, or nil if n is not an element.
func AsElement(n *Node) *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// Name returns the element's tag name.
func (e *Element) Name() string {
	return e.name
}

// Rename changes the element's tag name.
func (e *Element) Rename(name string) {
	e.name = name
}

// Parent returns the owning element, or nil for a root.
func (e *Element) Parent() *Element {
	return e.AsNode().Parent()
}

// Depth returns the number of parent hops to the root of the chain.
func (e *Element) Depth() int {
	return e.AsNode().Depth()
}

// Root walks the parent chain and returns the topmost element.
func (e *Element) Root() *Element {
	root := (*Node)(e)
	for root.parent != nil {
		root = root.parent
	}
	return (*Element)(root)
}

// AppendChild attaches c as the last child of e. If c is already owned by
// another element it is detached from there first, so a node belongs to at
// most one tree at a time. Attaching e to itself or to one of its own
// descendants would create a cycle and is ignored.
func (e *Element) AppendChild(c *Node) {
	e.InsertBefore(c, nil)
}

// InsertBefore attaches c immediately before ref in e's child list, or as
// the last child when ref is nil or not a child of e. Re-parenting and cycle
// rules match AppendChild.
func (e *Element) InsertBefore(c, ref *Node) {
	if c == nil || c.contains(e.AsNode()) {
		return
	}
	if ref != nil && ref.parent != e.AsNode() {
		ref = nil
	}
	if c == ref {
		return
	}
	c.detach()
	c.parent = e.AsNode()
	if ref == nil {
		c.prevSibling = e.lastChild
		if e.lastChild != nil {
			e.lastChild.nextSibling = c
		} else {
			e.firstChild = c
		}
		e.lastChild = c
	} else {
		c.prevSibling = ref.prevSibling
		c.nextSibling = ref
		if ref.prevSibling != nil {
			ref.prevSibling.nextSibling = c
		} else {
			e.firstChild = c
		}
		ref.prevSibling = c
	}
}

// RemoveChild detaches c from e. It is a no-op if c is not a child of e.
// The detached node remains usable as a standalone subtree root.
func (e *Element) RemoveChild(c *Node) {
	if c == nil || c.parent != e.AsNode() {
		return
	}
	c.detach()
}

// RemoveChildAt detaches and returns the child at index i, or nil if i is
// out of range.
func (e *Element) RemoveChildAt(i int) *Node {
	if i < 0 {
		return nil
	}
	for c := e.firstChild; c != nil; c = c.nextSibling {
		if i == 0 {
			c.detach()
			return c
		}
		i--
	}
	return nil
}

// ClearChildren detaches every child of e.
func (e *Element) ClearChildren() {
	for e.firstChild != nil {
		e.firstChild.detach()
	}
}

// Children returns the child nodes in document order.
func (e *Element) Children() []*Node {
	var children []*Node
	for c := e.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// ChildElements returns only the element children, in document order.
func (e *Element) ChildElements() []*Element {
	var elems []*Element
	for c := e.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			elems = append(elems, (*Element)(c))
		}
	}
	return elems
}

// HasChildren reports whether e owns any child nodes.
func (e *Element) HasChildren() bool {
	return e.firstChild != nil
}

// Attr returns the value of the named attribute, or empty string if absent.
func (e *Element) Attr(key string) string {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, overwriting any existing value for the key.
// New keys keep their insertion order for output.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
}

// RemoveAttr removes the named attribute if present.
func (e *Element) RemoveAttr(key string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// MergeAttrs sets every attribute from attrs on e, overwriting existing keys.
func (e *Element) MergeAttrs(attrs []Attr) {
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Value)
	}
}

// Attrs returns a copy of the attribute list in insertion order.
func (e *Element) Attrs() []Attr {
	if e.attrs == nil {
		return nil
	}
	attrs := make([]Attr, len(e.attrs))
	copy(attrs, e.attrs)
	return attrs
}

// Text returns the concatenated content of e's direct text children.
func (e *Element) Text() string {
	var sb strings.Builder
	e.AsNode().collectText(&sb)
	return sb.String()
}

// SetText replaces e's text content: all existing text children are removed
// and one new text node is inserted at the front. Non-text children keep
// their relative order.
func (e *Element) SetText(value string) {
	for c := e.firstChild; c != nil; {
		next := c.nextSibling
		if c.nodeType == TextNode {
			c.detach()
		}
		c = next
	}
	e.InsertBefore(NewText(value), e.firstChild)
}

// Copy returns a deep copy of the element and its subtree. The copy is an
// independent standalone tree with no shared node identity.
func (e *Element) Copy() *Element {
	return (*Element)(e.AsNode().Copy())
}
