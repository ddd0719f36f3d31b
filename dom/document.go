package dom

// Declaration defaults used when a document carries no XML declaration.
const (
	DefaultVersion  = "1.0"
	DefaultEncoding = "UTF-8"
)

// Document is the top-level container: it exclusively owns one root element
// together with the XML declaration and any processing instructions and
// comments that precede the root.
type Document struct {
	Version  string
	Encoding string

	// Instructions and Comments hold the pre-root nodes in source order.
	Instructions []*Node
	Comments     []*Node

	root *Element
}

// NewDocument creates a document with a fresh root element of the given name
// and default declaration values.
func NewDocument(rootName string) *Document {
	return &Document{
		Version:  DefaultVersion,
		Encoding: DefaultEncoding,
		root:     NewElement(rootName),
	}
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// SetRoot replaces the document's root element. The new root is detached
// from any previous owner; the old root becomes a standalone tree.
func (d *Document) SetRoot(root *Element) {
	if root == nil {
		return
	}
	root.AsNode().detach()
	d.root = root
}

// Copy returns a deep copy of the document with no shared node identity,
// suitable as an isolated snapshot of the tree.
func (d *Document) Copy() *Document {
	clone := &Document{
		Version:  d.Version,
		Encoding: d.Encoding,
	}
	for _, pi := range d.Instructions {
		clone.Instructions = append(clone.Instructions, pi.Copy())
	}
	for _, c := range d.Comments {
		clone.Comments = append(clone.Comments, c.Copy())
	}
	if d.root != nil {
		clone.root = d.root.Copy()
	}
	return clone
}
