package vars_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-articlerender/pkg/vars"
)

func TestDecodeYAML(t *testing.T) {
	binding, err := vars.DecodeYAML(strings.NewReader(`
title: Hello & welcome
show: true
items:
  - a
  - b
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]vars.Value{
		"title": vars.String("Hello & welcome"),
		"show":  vars.Bool(true),
		"items": vars.Strings("a", "b"),
	}
	if diff := cmp.Diff(want, binding.Map()); diff != "" {
		t.Fatalf("binding mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_Empty(t *testing.T) {
	binding, err := vars.DecodeYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if binding.Len() != 0 {
		t.Fatalf("expected empty binding, got %d entries", binding.Len())
	}
}

func TestDecodeYAML_Rejects(t *testing.T) {
	for _, doc := range []string{"count: 3\n", "items: [a, 1]\n", "- a\n", "title: [\n"} {
		if _, err := vars.DecodeYAML(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}
