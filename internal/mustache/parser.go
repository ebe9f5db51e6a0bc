package mustache

import (
	"strings"
)

const (
	leftDelim   = "{{"
	rightDelim  = "}}"
	rawRightEnd = "}}}"
)

type parser struct {
	src  string
	i    int
	line int
}

func (p *parser) eof() bool { return p.i >= len(p.src) }

// advance consumes n bytes and keeps the line counter in sync.
func (p *parser) advance(n int) {
	p.line += strings.Count(p.src[p.i:p.i+n], "\n")
	p.i += n
}

func (p *parser) errorf(line int, msg string) error {
	return &SyntaxError{Line: line, Message: msg}
}

// parseBlock collects nodes until the closing tag of section (or EOF when
// section is empty, i.e. at the top level).
func (p *parser) parseBlock(section string, openLine int) ([]node, error) {
	nodes := make([]node, 0, 8)
	for !p.eof() {
		start := strings.Index(p.src[p.i:], leftDelim)
		if start == -1 {
			nodes = append(nodes, textNode{text: p.src[p.i:]})
			p.advance(len(p.src) - p.i)
			break
		}
		if start > 0 {
			nodes = append(nodes, textNode{text: p.src[p.i : p.i+start]})
			p.advance(start)
		}

		tagLine := p.line
		p.advance(len(leftDelim))

		if strings.HasPrefix(p.src[p.i:], "{") {
			end := strings.Index(p.src[p.i:], rawRightEnd)
			if end == -1 {
				return nil, p.errorf(tagLine, "unterminated tag")
			}
			name := strings.TrimSpace(p.src[p.i+1 : p.i+end])
			p.advance(end + len(rawRightEnd))
			if err := checkName(name); err != "" {
				return nil, p.errorf(tagLine, err)
			}
			nodes = append(nodes, variableNode{tok: Variable{Name: name, Escaped: false, Line: tagLine}})
			continue
		}

		end := strings.Index(p.src[p.i:], rightDelim)
		if end == -1 {
			return nil, p.errorf(tagLine, "unterminated tag")
		}
		tag := strings.TrimSpace(p.src[p.i : p.i+end])
		p.advance(end + len(rightDelim))

		if tag == "" {
			return nil, p.errorf(tagLine, "empty tag")
		}

		switch tag[0] {
		case '!':
			continue
		case '#':
			name := strings.TrimSpace(tag[1:])
			if err := checkName(name); err != "" {
				return nil, p.errorf(tagLine, err)
			}
			body, err := p.parseBlock(name, tagLine)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, sectionNode{tok: Section{
				Name: name,
				Line: tagLine,
				Body: &Template{nodes: body},
			}})
		case '/':
			name := strings.TrimSpace(tag[1:])
			if section == "" {
				return nil, p.errorf(tagLine, "unexpected closing tag "+name)
			}
			if name != section {
				return nil, p.errorf(tagLine, "closing tag "+name+" does not match section "+section)
			}
			return nodes, nil
		case '&':
			name := strings.TrimSpace(tag[1:])
			if err := checkName(name); err != "" {
				return nil, p.errorf(tagLine, err)
			}
			nodes = append(nodes, variableNode{tok: Variable{Name: name, Escaped: false, Line: tagLine}})
		case '^':
			return nil, p.errorf(tagLine, "inverted sections are not supported")
		case '>':
			return nil, p.errorf(tagLine, "partials are not supported")
		case '=':
			return nil, p.errorf(tagLine, "custom delimiters are not supported")
		default:
			if err := checkName(tag); err != "" {
				return nil, p.errorf(tagLine, err)
			}
			nodes = append(nodes, variableNode{tok: Variable{Name: tag, Escaped: true, Line: tagLine}})
		}
	}

	if section != "" {
		return nil, p.errorf(openLine, "unclosed section "+section)
	}
	return nodes, nil
}

func checkName(name string) string {
	if name == "" {
		return "empty tag name"
	}
	if strings.ContainsAny(name, " \t\r\n{}") {
		return "invalid tag name " + name
	}
	return ""
}
