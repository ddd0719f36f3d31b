package dom

// Builder constructs a document through fluent chained calls. It keeps an
// explicit stack of open elements: Element pushes a new child, Parent pops
// back to the enclosing element. The root is never popped.
//
//	doc := dom.NewBuilder("library").
//		Element("book").Attr("id", "1").Text("X").Parent().
//		Element("book").Attr("id", "2").Text("Y").Parent().
//		Document()
type Builder struct {
	doc   *Document
	stack []*Element
}

// NewBuilder creates a builder whose document has a root element of the
// given name. The root starts as the current element.
func NewBuilder(rootName string) *Builder {
	doc := NewDocument(rootName)
	return &Builder{
		doc:   doc,
		stack: []*Element{doc.Root()},
	}
}

// Current returns the element the next calls apply to.
func (b *Builder) Current() *Element {
	return b.stack[len(b.stack)-1]
}

// Element appends a new child element to the current element and makes it
// current.
func (b *Builder) Element(name string) *Builder {
	child := NewElement(name)
	b.Current().AppendChild(child.AsNode())
	b.stack = append(b.stack, child)
	return b
}

// Parent pops back to the enclosing element. Popping past the root is a
// no-op.
func (b *Builder) Parent() *Builder {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

// Attr sets an attribute on the current element.
func (b *Builder) Attr(key, value string) *Builder {
	b.Current().SetAttr(key, value)
	return b
}

// Text appends a text node to the current element.
func (b *Builder) Text(value string) *Builder {
	b.Current().AppendChild(NewText(value))
	return b
}

// Comment appends a comment node to the current element.
func (b *Builder) Comment(value string) *Builder {
	b.Current().AppendChild(NewComment(value))
	return b
}

// CData appends a CDATA section to the current element.
func (b *Builder) CData(value string) *Builder {
	b.Current().AppendChild(NewCData(value))
	return b
}

// Instruction appends a processing instruction to the current element.
func (b *Builder) Instruction(target, data string) *Builder {
	b.Current().AppendChild(NewProcInst(target, data))
	return b
}

// Document returns the built document. The builder can keep adding to the
// same document afterwards.
func (b *Builder) Document() *Document {
	return b.doc
}
