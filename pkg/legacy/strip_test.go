package legacy_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-articlerender/pkg/legacy"
	"github.com/goliatone/go-articlerender/pkg/render"
)

func TestStripDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "wrapped", in: "<html><body><p>x</p></body></html>", want: "<p>x</p>"},
		{name: "whitespace", in: "\n <html>\n<body>\n<p>x</p>\n</body> \n</html>\n", want: "\n<p>x</p>\n"},
		{name: "bare", in: "<p>x</p>", want: "<p>x</p>"},
		{name: "only prefix", in: "<html><body><p>x</p>", want: "<p>x</p>"},
		{name: "inner tags kept", in: "<p><html><body>x</body></html></p>", want: "<p><html><body>x</body></html></p>"},
		{name: "attributes not matched", in: `<html lang="en"><body>x</body></html>`, want: `<html lang="en"><body>x`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := legacy.StripDocument(tt.in)
			if err != nil {
				t.Fatalf("strip: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripDocument_InvalidUTF8(t *testing.T) {
	_, err := legacy.StripDocument("<html><body>\xc3\x28</body></html>")
	if !errors.Is(err, render.ErrBodyStrip) {
		t.Fatalf("expected body strip failure, got %v", err)
	}
}
