package dom

import "testing"

func TestBuilderFluentChain(t *testing.T) {
	doc := NewBuilder("library").
		Element("book").Attr("id", "1").Text("X").Parent().
		Element("book").Attr("id", "2").Text("Y").Parent().
		Comment("end of catalog").
		Document()

	want := "<library>" +
		`<book id="1">X</book>` +
		`<book id="2">Y</book>` +
		"<!--end of catalog-->" +
		"</library>"
	if got := doc.Root().String(); got != want {
		t.Errorf("built tree renders %q, want %q", got, want)
	}
}

func TestBuilderStack(t *testing.T) {
	b := NewBuilder("root")
	if b.Current().Name() != "root" {
		t.Fatal("root should start as the current element")
	}

	b.Element("a").Element("b")
	if b.Current().Name() != "b" {
		t.Errorf("current = %s, want b", b.Current().Name())
	}

	b.Parent()
	if b.Current().Name() != "a" {
		t.Errorf("after Parent, current = %s, want a", b.Current().Name())
	}

	// Popping past the root stays at the root.
	b.Parent().Parent().Parent()
	if b.Current().Name() != "root" {
		t.Errorf("current = %s, want root", b.Current().Name())
	}
}

func TestBuilderMixedContent(t *testing.T) {
	doc := NewBuilder("doc").
		Instruction("style", `href="a.css"`).
		CData("raw <stuff>").
		Text("tail").
		Document()

	root := doc.Root()
	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0].Type() != ProcInstNode || children[1].Type() != CDataNode || children[2].Type() != TextNode {
		t.Error("children have wrong types or order")
	}
	if children[1].Data() != "raw <stuff>" {
		t.Errorf("cdata = %q", children[1].Data())
	}
}
