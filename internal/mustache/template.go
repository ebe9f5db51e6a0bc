// Package mustache is a small Mustache-style template runtime. It parses
// template text into an immutable node tree and, when rendering, hands every
// variable and section token back to a caller-supplied Handler. The runtime
// never looks values up itself.
package mustache

import (
	"fmt"
	"io"
	"strings"
)

// Variable is a {{name}}, {{{name}}} or {{& name}} token.
type Variable struct {
	Name    string
	Escaped bool
	Line    int
}

// Section is a {{#name}}...{{/name}} token. Body is the nested template the
// handler renders zero or more times.
type Section struct {
	Name string
	Line int
	Body *Template
}

// Handler receives rendered text and resolves tokens on behalf of the
// runtime. The first error returned aborts the render and is propagated to
// the caller unchanged.
type Handler interface {
	io.Writer
	Variable(v Variable) error
	Section(s Section) error
}

// SyntaxError reports malformed template text.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mustache: line %d: %s", e.Line, e.Message)
}

// Template is a compiled template. It is never mutated after Compile returns
// and may be rendered concurrently with independent handlers.
type Template struct {
	nodes []node
}

// Compile reads the whole template from r and parses it.
func Compile(r io.Reader) (*Template, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mustache: read template: %w", err)
	}
	return CompileString(string(src))
}

// CompileString parses template text.
func CompileString(src string) (*Template, error) {
	p := parser{src: src, line: 1}
	nodes, err := p.parseBlock("", 0)
	if err != nil {
		return nil, err
	}
	return &Template{nodes: nodes}, nil
}

// Render walks the template, writing text through h and delegating tokens.
func (t *Template) Render(h Handler) error {
	if t == nil {
		return nil
	}
	for _, n := range t.nodes {
		if err := n.render(h); err != nil {
			return err
		}
	}
	return nil
}

// Variables lists the distinct variable names referenced anywhere in the
// template, in first-seen order.
func (t *Template) Variables() []string {
	var names []string
	seen := make(map[string]struct{})
	t.walk(func(n node) {
		if v, ok := n.(variableNode); ok {
			if _, dup := seen[v.tok.Name]; !dup {
				seen[v.tok.Name] = struct{}{}
				names = append(names, v.tok.Name)
			}
		}
	})
	return names
}

// Sections lists the distinct section names in first-seen order.
func (t *Template) Sections() []string {
	var names []string
	seen := make(map[string]struct{})
	t.walk(func(n node) {
		if s, ok := n.(sectionNode); ok {
			if _, dup := seen[s.tok.Name]; !dup {
				seen[s.tok.Name] = struct{}{}
				names = append(names, s.tok.Name)
			}
		}
	})
	return names
}

func (t *Template) walk(fn func(node)) {
	if t == nil {
		return
	}
	for _, n := range t.nodes {
		fn(n)
		if s, ok := n.(sectionNode); ok {
			s.tok.Body.walk(fn)
		}
	}
}

type node interface {
	render(h Handler) error
}

type textNode struct{ text string }

func (n textNode) render(h Handler) error {
	_, err := io.WriteString(h, n.text)
	return err
}

type variableNode struct{ tok Variable }

func (n variableNode) render(h Handler) error {
	return h.Variable(n.tok)
}

type sectionNode struct{ tok Section }

func (n sectionNode) render(h Handler) error {
	return h.Section(n.tok)
}

// String reconstructs a normalized form of the template, mainly for tests
// and debugging output.
func (t *Template) String() string {
	var sb strings.Builder
	t.format(&sb)
	return sb.String()
}

func (t *Template) format(sb *strings.Builder) {
	if t == nil {
		return
	}
	for _, n := range t.nodes {
		switch v := n.(type) {
		case textNode:
			sb.WriteString(v.text)
		case variableNode:
			if v.tok.Escaped {
				sb.WriteString("{{" + v.tok.Name + "}}")
			} else {
				sb.WriteString("{{{" + v.tok.Name + "}}}")
			}
		case sectionNode:
			sb.WriteString("{{#" + v.tok.Name + "}}")
			v.tok.Body.format(sb)
			sb.WriteString("{{/" + v.tok.Name + "}}")
		}
	}
}
