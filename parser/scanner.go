package parser

import "strings"

// scanner is the cursor over the input text. It advances one code point at a
// time and maintains 1-based line/column counters; column resets to 1 and
// line increments on '\n'. Every error produced by the parser carries the
// scanner position at the point of failure.
type scanner struct {
	input  []rune
	pos    int
	line   int
	column int
}

func newScanner(input string) *scanner {
	return &scanner{
		input:  []rune(input),
		line:   1,
		column: 1,
	}
}

// peek returns the current code point without consuming it, or -1 at EOF.
func (s *scanner) peek() rune {
	if s.pos >= len(s.input) {
		return -1
	}
	return s.input[s.pos]
}

// peekN returns the code point at offset n from the current position.
func (s *scanner) peekN(n int) rune {
	pos := s.pos + n
	if pos >= len(s.input) || pos < 0 {
		return -1
	}
	return s.input[pos]
}

// consume consumes and returns the current code point, or -1 at EOF.
func (s *scanner) consume() rune {
	if s.pos >= len(s.input) {
		return -1
	}
	r := s.input[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// hasPrefix reports whether the unconsumed input starts with lit.
func (s *scanner) hasPrefix(lit string) bool {
	for i, r := range lit {
		if s.peekN(i) != r {
			return false
		}
	}
	return true
}

// consumeLiteral consumes lit if the input starts with it.
func (s *scanner) consumeLiteral(lit string) bool {
	if !s.hasPrefix(lit) {
		return false
	}
	for range lit {
		s.consume()
	}
	return true
}

// consumeUntil consumes input up to and including the closer, returning the
// text before it. ok is false if the input ends first.
func (s *scanner) consumeUntil(closer string) (string, bool) {
	var sb strings.Builder
	for !s.eof() {
		if s.consumeLiteral(closer) {
			return sb.String(), true
		}
		sb.WriteRune(s.consume())
	}
	return sb.String(), false
}

func (s *scanner) skipWhitespace() {
	for isWhitespace(s.peek()) {
		s.consume()
	}
}

// consumeName consumes an XML name per the supported grammar. ok is false if
// the input does not start with a name-start character.
func (s *scanner) consumeName() (string, bool) {
	if !isNameStart(s.peek()) {
		return "", false
	}
	var sb strings.Builder
	sb.WriteRune(s.consume())
	for isNameChar(s.peek()) {
		sb.WriteRune(s.consume())
	}
	return sb.String(), true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Name characters per the supported grammar. Full Unicode name productions
// are a deliberate scope limit, not an oversight.
func isNameStart(r rune) bool {
	return r == ':' || r == '_' || isLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || isDigit(r)
}

// decodeEntities performs a single left-to-right pass over s replacing the
// five predefined entities. Output is never rescanned, so decoding is not
// applied twice. Unrecognized ampersand sequences pass through literally;
// numeric character references and custom entities are not supported.
func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		matched := false
		for _, ent := range entities {
			if strings.HasPrefix(s[i:], ent.name) {
				sb.WriteByte(ent.value)
				i += len(ent.name)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

var entities = []struct {
	name  string
	value byte
}{
	{"&amp;", '&'},
	{"&lt;", '<'},
	{"&gt;", '>'},
	{"&quot;", '"'},
	{"&apos;", '\''},
}
