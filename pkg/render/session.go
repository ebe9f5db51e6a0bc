package render

import (
	"strings"

	"github.com/goliatone/go-articlerender/internal/mustache"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

// session is the per-render state: the binding, the output accumulator and
// the stack of section scope values used by dot references. A session is
// owned by a single Render call and never shared.
type session struct {
	store vars.Store
	out   strings.Builder
	scope []string
}

var _ mustache.Handler = (*session)(nil)

func newSession(store vars.Store) *session {
	return &session{store: store}
}

func (s *session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Variable resolves a variable token. The literal "." refers to the innermost
// section scope; outside of any scope it is looked up like any other name.
func (s *session) Variable(v mustache.Variable) error {
	value, ok := "", false
	if v.Name == "." {
		value, ok = s.current()
	}
	if !ok {
		value, ok = s.store.LookupScalar(v.Name)
	}
	if !ok {
		return MissingVariable(v.Name, v.Line)
	}

	if v.Escaped {
		value = EscapeHTML(value)
	}
	s.out.WriteString(value)
	return nil
}

// Section looks the section up and hands it to the resolver.
func (s *session) Section(sec mustache.Section) error {
	value, ok := s.store.LookupSection(sec.Name)
	if !ok {
		return MissingSection(sec.Name, sec.Line)
	}
	return s.resolveSection(sec, value)
}

func (s *session) current() (string, bool) {
	if len(s.scope) == 0 {
		return "", false
	}
	return s.scope[len(s.scope)-1], true
}

func (s *session) push(value string) {
	s.scope = append(s.scope, value)
}

func (s *session) pop() {
	s.scope = s.scope[:len(s.scope)-1]
}

func (s *session) depth() int {
	return len(s.scope)
}
