// Command xmlq parses an XML document and optionally evaluates a path query
// against it, printing the matching elements.
//
//	xmlq [-query PATH] [-indent] [-check] [-no-color] <file.xml | ->
//
// Exit codes: 0 on success, 1 on parse failure or I/O error, 2 on usage
// errors. With -query, an empty result set still exits 0.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/chrisuehlinger/xmldom/dom"
	"github.com/chrisuehlinger/xmldom/xmlio"
	"github.com/chrisuehlinger/xmldom/xpath"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	query := fs.String("query", "", "path expression to evaluate against the document root")
	indent := fs.Bool("indent", false, "pretty-print output with 4-space indentation")
	check := fs.Bool("check", false, "parse only; report well-formedness and exit")
	noColor := fs.Bool("no-color", false, "disable colored diagnostics")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xmlq [options] <file.xml | ->\n\n")
		fmt.Fprintln(stderr, "Parses an XML document and optionally evaluates a path query.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: exactly one XML file argument is required (use - for stdin)")
		fs.Usage()
		return 2
	}

	errColor := color.New(color.FgRed)
	okColor := color.New(color.FgGreen)
	if *noColor {
		errColor.DisableColor()
		okColor.DisableColor()
	}

	doc, err := readDocument(fs.Arg(0))
	if err != nil {
		errColor.Fprintf(stderr, "xmlq: %v\n", err)
		return 1
	}

	if *check {
		okColor.Fprintf(stdout, "%s: well-formed\n", fs.Arg(0))
		return 0
	}

	if *query != "" {
		for _, match := range xpath.Evaluate(*query, doc.Root()) {
			fmt.Fprintln(stdout, renderElement(match, *indent))
		}
		return 0
	}

	if *indent {
		fmt.Fprintln(stdout, doc.IndentString())
	} else {
		fmt.Fprintln(stdout, doc.String())
	}
	return 0
}

func readDocument(path string) (*dom.Document, error) {
	if path == "-" {
		return xmlio.Read(os.Stdin)
	}
	return xmlio.ReadFile(path)
}

func renderElement(e *dom.Element, indent bool) string {
	if indent {
		return e.IndentString()
	}
	return e.String()
}
