// Package xmlio reads and writes dom documents as UTF-8 text, from files,
// URLs, and arbitrary readers. Input passes through charset detection so
// byte-order marks and legacy encodings are transcoded before parsing.
package xmlio

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/chrisuehlinger/xmldom/dom"
	"github.com/chrisuehlinger/xmldom/parser"
)

// Read decodes r to UTF-8 and parses it into a document.
func Read(r io.Reader) (*dom.Document, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return parser.ParseBytes(data)
}

// ReadString parses a document from a string.
func ReadString(s string) (*dom.Document, error) {
	return parser.Parse(s)
}

// ReadFile parses the document stored at path.
func ReadFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ReadURL fetches url over HTTP and parses the response body.
func ReadURL(url string) (*dom.Document, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	decoded, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return parser.ParseBytes(data)
}

// Write renders doc compactly to w as UTF-8.
func Write(w io.Writer, doc *dom.Document) error {
	_, err := io.WriteString(w, doc.String())
	return err
}

// WriteIndent renders doc pretty-printed to w as UTF-8.
func WriteIndent(w io.Writer, doc *dom.Document) error {
	_, err := io.WriteString(w, doc.IndentString())
	return err
}

// WriteFile renders doc compactly into the file at path, creating or
// truncating it.
func WriteFile(doc *dom.Document, path string) error {
	return os.WriteFile(path, []byte(doc.String()), 0o644)
}

// WriteFileIndent renders doc pretty-printed into the file at path.
func WriteFileIndent(doc *dom.Document, path string) error {
	return os.WriteFile(path, []byte(doc.IndentString()), 0o644)
}
