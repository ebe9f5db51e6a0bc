package render

import (
	"github.com/goliatone/go-articlerender/internal/mustache"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

// resolveSection drives the sub-template according to the bound value:
//
//   - bool: rendered once when true, skipped when false; scope unchanged
//   - string: rendered once with the string as the dot scope
//   - string list: rendered once per item, in order, with the item as scope
//
// The scope is restored on every exit path. Output written before a failing
// iteration is kept; the error aborts the whole render.
func (s *session) resolveSection(sec mustache.Section, value vars.Value) error {
	switch value.Kind() {
	case vars.KindBool:
		if b, _ := value.AsBool(); !b {
			return nil
		}
		return sec.Body.Render(s)
	case vars.KindString:
		str, _ := value.AsString()
		return s.withScope(str, func() error {
			return sec.Body.Render(s)
		})
	case vars.KindStrings:
		return value.Each(func(item string) error {
			return s.withScope(item, func() error {
				return sec.Body.Render(s)
			})
		})
	default:
		return UnsupportedSection(sec.Name, value.Kind().String(), sec.Line)
	}
}

func (s *session) withScope(value string, fn func() error) error {
	s.push(value)
	defer s.pop()
	return fn()
}
