package parser

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// ErrMalformedDocument covers structural violations: mismatched tag
	// names, unexpected trailing content.
	ErrMalformedDocument ErrorKind = iota
	// ErrInvalidStructure is reserved for structural issues reported above
	// the character grammar by caller-level checks.
	ErrInvalidStructure
	// ErrInvalidData covers input bytes that are not valid UTF-8.
	ErrInvalidData
	// ErrSyntax covers grammar violations: a missing = in an attribute, an
	// attribute value not starting with a quote, an unparseable name.
	ErrSyntax
	// ErrUnexpectedEnd means the input ran out before a required closer.
	ErrUnexpectedEnd
	// ErrOther is the catch-all for conditions not covered above.
	ErrOther
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedDocument:
		return "MalformedDocument"
	case ErrInvalidStructure:
		return "InvalidStructure"
	case ErrInvalidData:
		return "InvalidData"
	case ErrSyntax:
		return "SyntaxError"
	case ErrUnexpectedEnd:
		return "UnexpectedEnd"
	default:
		return "Other"
	}
}

// ParseError is the error type returned by every parser entry point. Line
// and Column are 1-based and refer to the point of failure; both are zero
// for kinds that carry no position.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Message, e.Line, e.Column)
}

func errMalformed(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrMalformedDocument, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

func errSyntax(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

func errUnexpectedEnd(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrUnexpectedEnd, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

func errInvalidData(format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrInvalidData, Message: fmt.Sprintf(format, args...)}
}
