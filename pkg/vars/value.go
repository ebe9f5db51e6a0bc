package vars

import "fmt"

// Kind enumerates the value shapes a binding can hold.
type Kind uint8

const (
	// KindInvalid marks the zero Value. It has no rendering rule.
	KindInvalid Kind = iota
	// KindString is a scalar string value.
	KindString
	// KindBool is a flag used to gate a section.
	KindBool
	// KindStrings is an ordered list of strings iterated by a section.
	KindStrings
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindStrings:
		return "string-list"
	default:
		return "invalid"
	}
}

// Value is a tagged variant over the supported binding types. Values are
// immutable: constructors copy their input and accessors never expose
// internal storage.
type Value struct {
	kind  Kind
	str   string
	flag  bool
	items []string
}

// String returns a scalar value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool returns a flag value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Strings returns a list value holding a copy of items.
func Strings(items ...string) Value {
	return Value{kind: KindStrings, items: append([]string(nil), items...)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the scalar and true when v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the flag and true when v is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// AsStrings returns a copy of the list and true when v is a string list.
func (v Value) AsStrings() ([]string, bool) {
	if v.kind != KindStrings {
		return nil, false
	}
	return append([]string(nil), v.items...), true
}

// Len reports the number of list items; zero for other kinds.
func (v Value) Len() int {
	return len(v.items)
}

// Each calls fn for every list item in order, stopping at the first error.
// It is a no-op for non-list values.
func (v Value) Each(fn func(item string) error) error {
	for _, item := range v.items {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// GoString renders the value for diagnostics and cmp diffs.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("vars.String(%q)", v.str)
	case KindBool:
		return fmt.Sprintf("vars.Bool(%t)", v.flag)
	case KindStrings:
		return fmt.Sprintf("vars.Strings(%q)", v.items)
	default:
		return "vars.Value{}"
	}
}

// Equal reports whether two values hold the same variant and content. It lets
// go-cmp compare values without reaching into unexported fields.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.str != other.str || v.flag != other.flag {
		return false
	}
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != other.items[i] {
			return false
		}
	}
	return true
}
