package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-articlerender/internal/mustache"
)

// Kind classifies render failures.
type Kind string

const (
	KindCompile            Kind = "compile"
	KindMissingVariable    Kind = "missing-variable"
	KindMissingSection     Kind = "missing-section"
	KindUnsupportedSection Kind = "unsupported-section"
	KindUnknownSource      Kind = "unknown-source"
	KindBodyStrip          Kind = "body-strip"
	KindLoad               Kind = "load"
)

// Sentinels matched by errors.Is against an *Error of the same Kind.
var (
	ErrCompile            = errors.New("render: compile error")
	ErrMissingVariable    = errors.New("render: missing variable")
	ErrMissingSection     = errors.New("render: missing section")
	ErrUnsupportedSection = errors.New("render: unsupported section type")
	ErrUnknownSource      = errors.New("render: unknown legacy source")
	ErrBodyStrip          = errors.New("render: body strip failure")
	ErrLoad               = errors.New("render: template load failure")
)

var sentinels = map[Kind]error{
	KindCompile:            ErrCompile,
	KindMissingVariable:    ErrMissingVariable,
	KindMissingSection:     ErrMissingSection,
	KindUnsupportedSection: ErrUnsupportedSection,
	KindUnknownSource:      ErrUnknownSource,
	KindBodyStrip:          ErrBodyStrip,
	KindLoad:               ErrLoad,
}

// Error is the single structured value returned for every render failure.
// Line is zero when the failure is not tied to a template token.
type Error struct {
	Kind    Kind
	Name    string
	Type    string
	Line    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (at line %d)", msg, e.Line)
	}
	switch e.Kind {
	case KindMissingVariable, KindMissingSection, KindUnsupportedSection:
		return "Failed to perform template substitution: " + msg
	}
	return msg
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var renderErr *Error
	if errors.As(err, &renderErr) {
		return renderErr, true
	}
	return nil, false
}

// MissingVariable reports a variable token with no scalar binding.
func MissingVariable(name string, line int) *Error {
	return &Error{
		Kind:    KindMissingVariable,
		Name:    name,
		Line:    line,
		Message: "No such variable " + name,
	}
}

// MissingSection reports a section token with no binding.
func MissingSection(name string, line int) *Error {
	return &Error{
		Kind:    KindMissingSection,
		Name:    name,
		Line:    line,
		Message: "No such section " + name,
	}
}

// UnsupportedSection reports a section bound to a value with no rendering
// rule.
func UnsupportedSection(name, typ string, line int) *Error {
	return &Error{
		Kind:    KindUnsupportedSection,
		Name:    name,
		Type:    typ,
		Line:    line,
		Message: fmt.Sprintf("No handler for section type %s on token %s", typ, name),
	}
}

// UnknownSource reports a legacy render request for an unrecognised source.
func UnknownSource(source string) *Error {
	return &Error{
		Kind:    KindUnknownSource,
		Name:    source,
		Message: "Attempted to legacy-render HTML, but no renderer exists for " + source,
	}
}

// BodyStripFailure reports that the legacy body wrapper could not be removed.
func BodyStripFailure(err error) *Error {
	return &Error{
		Kind:    KindBodyStrip,
		Message: fmt.Sprintf("Failed to strip body tags: %v", err),
		Err:     err,
	}
}

// CompileFailure wraps a template syntax error, keeping its line number.
func CompileFailure(err error) *Error {
	out := &Error{Kind: KindCompile, Err: err}
	var syntaxErr *mustache.SyntaxError
	if errors.As(err, &syntaxErr) {
		out.Line = syntaxErr.Line
		out.Message = "Failed to compile template: " + syntaxErr.Message
		return out
	}
	out.Message = fmt.Sprintf("Failed to compile template: %v", err)
	return out
}

// LoadFailure wraps an error from the template loader.
func LoadFailure(location string, err error) *Error {
	return &Error{
		Kind:    KindLoad,
		Name:    location,
		Message: fmt.Sprintf("Failed to load template %s: %v", location, err),
		Err:     err,
	}
}
