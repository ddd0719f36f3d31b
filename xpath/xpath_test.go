package xpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/xmldom/dom"
	"github.com/chrisuehlinger/xmldom/parser"
)

const catalog = `<library>
<shelf id="top">
<book category="fiction" lang="en">Alpha</book>
<book category="fiction">Beta</book>
<book category="science">Gamma</book>
</shelf>
<shelf id="bottom">
<book category="fiction">Delta</book>
</shelf>
</library>`

func root(t *testing.T) *dom.Element {
	t.Helper()
	doc, err := parser.Parse(catalog)
	require.NoError(t, err)
	return doc.Root()
}

func names(set []*dom.Element) []string {
	var out []string
	for _, e := range set {
		out = append(out, e.Name())
	}
	return out
}

func texts(set []*dom.Element) []string {
	var out []string
	for _, e := range set {
		out = append(out, e.Text())
	}
	return out
}

func TestPlainNameSegment(t *testing.T) {
	r := root(t)
	shelves := Evaluate("shelf", r)
	require.Len(t, shelves, 2)
	assert.Equal(t, "top", shelves[0].Attr("id"))
	assert.Equal(t, "bottom", shelves[1].Attr("id"))

	assert.Empty(t, Evaluate("nosuch", r))
}

func TestChainedSegments(t *testing.T) {
	books := Evaluate("shelf/book", root(t))
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, texts(books),
		"document order: one shelf's matches before the next")
}

func TestDocumentOrderScenario(t *testing.T) {
	doc, err := parser.Parse(`<lib><b id="1">X</b><b id="2">Y</b></lib>`)
	require.NoError(t, err)

	all := Evaluate("b", doc.Root())
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].Attr("id"))

	second := Evaluate("b[2]", doc.Root())
	require.Len(t, second, 1)
	assert.Equal(t, "2", second[0].Attr("id"))
	assert.Equal(t, "Y", second[0].Text())
}

func TestWildcard(t *testing.T) {
	r := root(t)
	assert.Equal(t, []string{"shelf", "shelf"}, names(Evaluate("*", r)))
	assert.Len(t, Evaluate("*/book", r), 4)
	assert.Len(t, Evaluate("shelf/*", r), 4)
}

func TestSelfAndParent(t *testing.T) {
	r := root(t)
	self := Evaluate(".", r)
	require.Len(t, self, 1)
	assert.Same(t, r, self[0], "results alias the live tree")

	parents := Evaluate("shelf/..", r)
	require.Len(t, parents, 2, "duplicates are not removed")
	assert.Same(t, r, parents[0])
	assert.Same(t, r, parents[1])

	// The root has no parent, so it contributes nothing.
	assert.Empty(t, Evaluate("..", r))
}

func TestAbsolutePath(t *testing.T) {
	r := root(t)
	book := Evaluate("shelf/book", r)[0]

	fromLeaf := Evaluate("/shelf/book", book)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, texts(fromLeaf),
		"absolute paths re-anchor at the tree root")

	rootOnly := Evaluate("/", book)
	require.Len(t, rootOnly, 1)
	assert.Same(t, r, rootOnly[0])
}

func TestIndexPredicate(t *testing.T) {
	r := root(t)
	tests := []struct {
		expr string
		want []string
	}{
		{"shelf/book[1]", []string{"Alpha"}},
		{"shelf/book[4]", []string{"Delta"}}, // index spans the whole candidate set
		{"shelf/book[5]", nil},
		{"shelf/book[0]", nil},
		{"shelf/book[-1]", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, texts(Evaluate(tt.expr, r)), "expr %q", tt.expr)
	}
}

func TestAttributePredicates(t *testing.T) {
	r := root(t)

	withLang := Evaluate("shelf/book[@lang]", r)
	assert.Equal(t, []string{"Alpha"}, texts(withLang))

	fiction := Evaluate("shelf/book[@category='fiction']", r)
	assert.Equal(t, []string{"Alpha", "Beta", "Delta"}, texts(fiction))

	doubleQuoted := Evaluate(`shelf/book[@category="science"]`, r)
	assert.Equal(t, []string{"Gamma"}, texts(doubleQuoted))

	unquoted := Evaluate("shelf/book[@category=science]", r)
	assert.Equal(t, []string{"Gamma"}, texts(unquoted))

	assert.Empty(t, Evaluate("shelf/book[@category='drama']", r))
	assert.Empty(t, Evaluate("shelf/book[@missing]", r))
}

func TestTextPredicate(t *testing.T) {
	r := root(t)
	beta := Evaluate("shelf/book[text()='Beta']", r)
	require.Len(t, beta, 1)
	assert.Equal(t, "fiction", beta[0].Attr("category"))

	assert.Empty(t, Evaluate("shelf/book[text()='Nope']", r))
}

func TestWildcardWithPredicate(t *testing.T) {
	r := root(t)
	anyFiction := Evaluate("shelf/*[@category='fiction']", r)
	assert.Equal(t, []string{"Alpha", "Beta", "Delta"}, texts(anyFiction))
}

func TestUnsupportedPredicate(t *testing.T) {
	r := root(t)
	assert.Empty(t, Evaluate("shelf/book[position()>1]", r))
	assert.Empty(t, Evaluate("shelf/book[last()]", r))
}

func TestShortCircuit(t *testing.T) {
	r := root(t)
	assert.Empty(t, Evaluate("nosuch/book", r))
	assert.Empty(t, Evaluate("shelf/nosuch/..", r))
}

func TestEmptyAndDegenerateExpressions(t *testing.T) {
	r := root(t)

	self := Evaluate("", r)
	require.Len(t, self, 1)
	assert.Same(t, r, self[0])

	// Interior empty segments are outside the grammar.
	assert.Empty(t, Evaluate("shelf//book", r))
	assert.Empty(t, Evaluate("shelf/", r))

	assert.Empty(t, Evaluate("shelf", nil))
}

func TestCompiledPathReuse(t *testing.T) {
	p := Compile("shelf/book[@category='fiction']")
	assert.Equal(t, "shelf/book[@category='fiction']", p.String())

	r := root(t)
	first := p.Evaluate(r)
	second := p.Evaluate(r)
	assert.Equal(t, texts(first), texts(second), "evaluation is pure")
}

func TestResultsAliasLiveTree(t *testing.T) {
	r := root(t)
	book := Evaluate("shelf/book[1]", r)[0]

	book.SetAttr("category", "changed")
	again := Evaluate("shelf/book[1]", r)[0]
	assert.Same(t, book, again)
	assert.Equal(t, "changed", again.Attr("category"))

	// Queries never mutate: the fiction set shrinks accordingly.
	fiction := Evaluate("shelf/book[@category='fiction']", r)
	assert.Equal(t, []string{"Beta", "Delta"}, texts(fiction))
}

func TestChainedPredicates(t *testing.T) {
	// One segment supports one bracket group; chaining needs '.' segments.
	r := root(t)
	got := Evaluate("shelf/book[@category='fiction']", r)
	require.NotEmpty(t, got)

	chained := Evaluate("shelf[1]/book[@category='fiction']", r)
	assert.Equal(t, []string{"Alpha", "Beta"}, texts(chained))
}
