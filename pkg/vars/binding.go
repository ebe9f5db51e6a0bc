package vars

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the read-only view the renderer queries while resolving tokens.
// Lookups are exact name matches; there is no dotted path traversal.
type Store interface {
	// LookupScalar returns the string bound to name. Names bound to a non
	// string value are reported as absent.
	LookupScalar(name string) (string, bool)
	// LookupSection returns the value bound to name, whatever its kind.
	LookupSection(name string) (Value, bool)
}

// Binding maps names to typed values. A Binding is immutable once built and
// safe to share between concurrent renders.
type Binding struct {
	values map[string]Value
}

var _ Store = Binding{}

// NewBinding copies entries into a new Binding.
func NewBinding(entries map[string]Value) Binding {
	values := make(map[string]Value, len(entries))
	for name, value := range entries {
		values[name] = value
	}
	return Binding{values: values}
}

// LookupScalar implements Store.
func (b Binding) LookupScalar(name string) (string, bool) {
	value, ok := b.values[name]
	if !ok {
		return "", false
	}
	return value.AsString()
}

// LookupSection implements Store.
func (b Binding) LookupSection(name string) (Value, bool) {
	value, ok := b.values[name]
	return value, ok
}

// Len reports the number of bound names.
func (b Binding) Len() int {
	return len(b.values)
}

// Names returns the bound names sorted alphabetically.
func (b Binding) Names() []string {
	names := make([]string, 0, len(b.values))
	for name := range b.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying entries.
func (b Binding) Map() map[string]Value {
	out := make(map[string]Value, len(b.values))
	for name, value := range b.values {
		out[name] = value
	}
	return out
}

// Builder accumulates entries for a Binding. Later writes to the same name
// replace earlier ones.
type Builder struct {
	values map[string]Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string]Value)}
}

// Set binds name to an arbitrary value.
func (b *Builder) Set(name string, value Value) *Builder {
	b.values[name] = value
	return b
}

// String binds name to a scalar.
func (b *Builder) String(name, value string) *Builder {
	return b.Set(name, String(value))
}

// Bool binds name to a flag.
func (b *Builder) Bool(name string, value bool) *Builder {
	return b.Set(name, Bool(value))
}

// Strings binds name to a list.
func (b *Builder) Strings(name string, items ...string) *Builder {
	return b.Set(name, Strings(items...))
}

// Build returns an immutable Binding. The builder may keep being used; later
// changes do not affect bindings already built.
func (b *Builder) Build() Binding {
	return NewBinding(b.values)
}

// FromMap converts decoded data (JSON/YAML) into a Binding. Strings, bools,
// and lists of strings are accepted; any other shape is rejected so template
// mismatches surface before rendering.
func FromMap(data map[string]any) (Binding, error) {
	b := NewBuilder()
	for rawName, raw := range data {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return Binding{}, fmt.Errorf("vars: empty variable name")
		}
		value, err := valueOf(raw)
		if err != nil {
			return Binding{}, fmt.Errorf("vars: %s: %w", name, err)
		}
		b.Set(name, value)
	}
	return b.Build(), nil
}

func valueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case []string:
		return Strings(v...), nil
	case []any:
		items := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list item %d is %T, want string", i, item)
			}
			items = append(items, s)
		}
		return Strings(items...), nil
	case Value:
		return v, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
