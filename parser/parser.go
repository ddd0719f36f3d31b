// Package parser turns XML text into a dom.Document by hand-written
// recursive descent over a character cursor. Parsing is fail-fast: the first
// grammar or structure violation aborts the whole parse and is returned as a
// *ParseError carrying the 1-based line and column of the failure.
//
// The supported grammar is deliberately restricted: no DTDs, namespaces, or
// entity declarations; names use ASCII letters, digits, ':', '_', '-', '.';
// only the five predefined character entities are decoded.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/chrisuehlinger/xmldom/dom"
)

// Parse consumes the entire input string and returns the document tree. Any
// non-whitespace content after the root element is a MalformedDocument error.
func Parse(input string) (*dom.Document, error) {
	p := &parser{s: newScanner(input)}
	return p.parseDocument()
}

// ParseBytes validates that b is UTF-8 and parses it. Invalid bytes yield an
// InvalidData error.
func ParseBytes(b []byte) (*dom.Document, error) {
	if !utf8.Valid(b) {
		return nil, errInvalidData("input is not valid UTF-8")
	}
	return Parse(string(b))
}

type parser struct {
	s *scanner
}

func (p *parser) parseDocument() (*dom.Document, error) {
	doc := &dom.Document{
		Version:  dom.DefaultVersion,
		Encoding: dom.DefaultEncoding,
	}

	p.s.skipWhitespace()

	// Prolog: an optional XML declaration, then any number of processing
	// instructions and comments before the root element. Only the very
	// first processing instruction can be the declaration.
	declAllowed := true
	for {
		switch {
		case p.s.hasPrefix("<!--"):
			comment, err := p.parseComment()
			if err != nil {
				return nil, err
			}
			doc.Comments = append(doc.Comments, comment)
		case p.s.hasPrefix("<?"):
			pi, err := p.parseProcInst()
			if err != nil {
				return nil, err
			}
			if declAllowed && pi.Name() == "xml" {
				if v, ok := declAttr(pi.Data(), "version"); ok {
					doc.Version = v
				}
				if enc, ok := declAttr(pi.Data(), "encoding"); ok {
					doc.Encoding = enc
				}
			} else {
				doc.Instructions = append(doc.Instructions, pi)
			}
		default:
			root, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			doc.SetRoot(root)
			p.s.skipWhitespace()
			if !p.s.eof() {
				return nil, errMalformed(p.s.line, p.s.column, "unexpected content after root element")
			}
			return doc, nil
		}
		declAllowed = false
		p.s.skipWhitespace()
	}
}

func (p *parser) parseElement() (*dom.Element, error) {
	line, col := p.s.line, p.s.column
	if p.s.eof() {
		return nil, errUnexpectedEnd(line, col, "expected element")
	}
	if p.s.peek() != '<' {
		return nil, errSyntax(line, col, "expected '<'")
	}
	p.s.consume()

	name, ok := p.s.consumeName()
	if !ok {
		return nil, errSyntax(p.s.line, p.s.column, "invalid element name")
	}
	elem := dom.NewElement(name)

	for {
		p.s.skipWhitespace()
		switch {
		case p.s.eof():
			return nil, errUnexpectedEnd(p.s.line, p.s.column, "unexpected end of input inside tag <%s>", name)
		case p.s.consumeLiteral("/>"):
			return elem, nil
		case p.s.peek() == '>':
			p.s.consume()
			if err := p.parseContent(elem); err != nil {
				return nil, err
			}
			return elem, nil
		default:
			if err := p.parseAttribute(elem); err != nil {
				return nil, err
			}
		}
	}
}

func (p *parser) parseAttribute(elem *dom.Element) error {
	name, ok := p.s.consumeName()
	if !ok {
		return errSyntax(p.s.line, p.s.column, "expected attribute name in tag <%s>", elem.Name())
	}
	p.s.skipWhitespace()
	if p.s.peek() != '=' {
		return errSyntax(p.s.line, p.s.column, "expected '=' after attribute %q", name)
	}
	p.s.consume()
	p.s.skipWhitespace()

	quote := p.s.peek()
	if quote != '"' && quote != '\'' {
		return errSyntax(p.s.line, p.s.column, "attribute %q value must start with a quote", name)
	}
	line, col := p.s.line, p.s.column
	p.s.consume()
	value, ok := p.s.consumeUntil(string(quote))
	if !ok {
		return errUnexpectedEnd(line, col, "unterminated value for attribute %q", name)
	}
	// A repeated attribute name keeps the last occurrence.
	elem.SetAttr(name, decodeEntities(value))
	return nil
}

// parseContent parses element content until the matching close tag. Runs of
// non-markup characters coalesce into a single text node.
func (p *parser) parseContent(elem *dom.Element) error {
	var text strings.Builder
	flushText := func() {
		if text.Len() > 0 {
			elem.AppendChild(dom.NewText(decodeEntities(text.String())))
			text.Reset()
		}
	}

	for {
		switch {
		case p.s.eof():
			return errUnexpectedEnd(p.s.line, p.s.column, "missing closing tag </%s>", elem.Name())

		case p.s.hasPrefix("</"):
			flushText()
			line, col := p.s.line, p.s.column
			p.s.consumeLiteral("</")
			name, ok := p.s.consumeName()
			if !ok {
				return errSyntax(p.s.line, p.s.column, "invalid closing tag name")
			}
			p.s.skipWhitespace()
			if p.s.peek() != '>' {
				return errSyntax(p.s.line, p.s.column, "malformed closing tag </%s", name)
			}
			p.s.consume()
			if name != elem.Name() {
				return errMalformed(line, col, "mismatched closing tag: expected </%s>, found </%s>", elem.Name(), name)
			}
			return nil

		case p.s.hasPrefix("<!--"):
			flushText()
			comment, err := p.parseComment()
			if err != nil {
				return err
			}
			elem.AppendChild(comment)

		case p.s.hasPrefix("<![CDATA["):
			flushText()
			cdata, err := p.parseCData()
			if err != nil {
				return err
			}
			elem.AppendChild(cdata)

		case p.s.hasPrefix("<?"):
			flushText()
			pi, err := p.parseProcInst()
			if err != nil {
				return err
			}
			elem.AppendChild(pi)

		case p.s.peek() == '<':
			flushText()
			child, err := p.parseElement()
			if err != nil {
				return err
			}
			elem.AppendChild(child.AsNode())

		default:
			text.WriteRune(p.s.consume())
		}
	}
}

// Comment and CDATA bodies are taken verbatim, with no entity decoding.

func (p *parser) parseComment() (*dom.Node, error) {
	line, col := p.s.line, p.s.column
	p.s.consumeLiteral("<!--")
	body, ok := p.s.consumeUntil("-->")
	if !ok {
		return nil, errUnexpectedEnd(line, col, "unterminated comment")
	}
	return dom.NewComment(body), nil
}

func (p *parser) parseCData() (*dom.Node, error) {
	line, col := p.s.line, p.s.column
	p.s.consumeLiteral("<![CDATA[")
	body, ok := p.s.consumeUntil("]]>")
	if !ok {
		return nil, errUnexpectedEnd(line, col, "unterminated CDATA section")
	}
	return dom.NewCData(body), nil
}

func (p *parser) parseProcInst() (*dom.Node, error) {
	line, col := p.s.line, p.s.column
	p.s.consumeLiteral("<?")
	target, ok := p.s.consumeName()
	if !ok {
		return nil, errSyntax(p.s.line, p.s.column, "invalid processing instruction target")
	}
	p.s.skipWhitespace()
	data, ok := p.s.consumeUntil("?>")
	if !ok {
		return nil, errUnexpectedEnd(line, col, "unterminated processing instruction <?%s", target)
	}
	return dom.NewProcInst(target, data), nil
}

// declAttr extracts a name="value" or name='value' pair from the raw data of
// the XML declaration.
func declAttr(data, name string) (string, bool) {
	idx := strings.Index(data, name+"=")
	if idx < 0 {
		return "", false
	}
	rest := data[idx+len(name)+1:]
	if rest == "" {
		return "", false
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return "", false
	}
	return rest[1 : 1+end], true
}
