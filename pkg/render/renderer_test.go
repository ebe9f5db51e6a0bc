package render_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
	"github.com/goliatone/go-articlerender/pkg/render"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

func renderString(t *testing.T, text string, binding vars.Binding) (string, error) {
	t.Helper()
	return render.New().RenderString(text, binding)
}

func TestRenderString_Escaping(t *testing.T) {
	binding := vars.NewBuilder().String("name", `a&b <"c">`).Build()

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{name: "escaped", tmpl: "{{name}}", want: "a&amp;b &lt;&quot;c&quot;&gt;"},
		{name: "triple raw", tmpl: "{{{name}}}", want: `a&b <"c">`},
		{name: "ampersand raw", tmpl: "{{& name}}", want: `a&b <"c">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderString(t, tt.tmpl, binding)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderString_BoolSection(t *testing.T) {
	tmpl := "[{{#flag}}on{{/flag}}]"

	off, err := renderString(t, tmpl, vars.NewBuilder().Bool("flag", false).Build())
	if err != nil {
		t.Fatalf("render false: %v", err)
	}
	if off != "[]" {
		t.Fatalf("false flag rendered %q", off)
	}

	on, err := renderString(t, tmpl, vars.NewBuilder().Bool("flag", true).Build())
	if err != nil {
		t.Fatalf("render true: %v", err)
	}
	if on != "[on]" {
		t.Fatalf("true flag rendered %q", on)
	}
}

func TestRenderString_BoolSectionDoesNotOpenScope(t *testing.T) {
	_, err := renderString(t, "{{#flag}}{{.}}{{/flag}}", vars.NewBuilder().Bool("flag", true).Build())
	if !errors.Is(err, render.ErrMissingVariable) {
		t.Fatalf("expected missing variable, got %v", err)
	}

	got, err := renderString(t, "{{#outer}}{{#flag}}{{.}}{{/flag}}{{/outer}}", vars.NewBuilder().
		String("outer", "scope").
		Bool("flag", true).
		Build())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "scope" {
		t.Fatalf("expected enclosing scope, got %q", got)
	}
}

func TestRenderString_StringSection(t *testing.T) {
	got, err := renderString(t, "{{#title}}<h1>{{.}}</h1>{{/title}}", vars.NewBuilder().String("title", "A & B").Build())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<h1>A &amp; B</h1>" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderString_ListSectionRestoresScope(t *testing.T) {
	binding := vars.NewBuilder().
		String("outer", "O").
		Strings("items", "x", "y").
		Build()

	got, err := renderString(t, "{{#outer}}{{.}}:{{#items}}({{.}}){{/items}}:{{.}}{{/outer}}", binding)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "O:(x)(y):O" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderString_EmptyListRendersNothing(t *testing.T) {
	got, err := renderString(t, "a{{#items}}{{.}}{{/items}}b", vars.NewBuilder().Strings("items").Build())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderString_MissingNames(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		sentinel error
		kind     render.Kind
		token    string
		line     int
		message  string
	}{
		{
			name:     "variable",
			tmpl:     "ok\n\n{{absent}}",
			sentinel: render.ErrMissingVariable,
			kind:     render.KindMissingVariable,
			token:    "absent",
			line:     3,
			message:  "Failed to perform template substitution: No such variable absent (at line 3)",
		},
		{
			name:     "section",
			tmpl:     "\n{{#nothing}}x{{/nothing}}",
			sentinel: render.ErrMissingSection,
			kind:     render.KindMissingSection,
			token:    "nothing",
			line:     2,
			message:  "Failed to perform template substitution: No such section nothing (at line 2)",
		},
		{
			name:     "dot outside scope",
			tmpl:     "{{.}}",
			sentinel: render.ErrMissingVariable,
			kind:     render.KindMissingVariable,
			token:    ".",
			line:     1,
			message:  "Failed to perform template substitution: No such variable . (at line 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderString(t, tt.tmpl, vars.Binding{})
			if got != "" {
				t.Fatalf("expected no output on failure, got %q", got)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			renderErr, ok := render.AsError(err)
			if !ok {
				t.Fatalf("expected *render.Error, got %T", err)
			}
			if renderErr.Kind != tt.kind || renderErr.Name != tt.token || renderErr.Line != tt.line {
				t.Fatalf("unexpected error fields %+v", renderErr)
			}
			if renderErr.Error() != tt.message {
				t.Fatalf("message %q, want %q", renderErr.Error(), tt.message)
			}
		})
	}
}

func TestRenderString_VariableOfWrongTypeIsMissing(t *testing.T) {
	_, err := renderString(t, "{{files}}", vars.NewBuilder().Strings("files", "a").Build())
	if !errors.Is(err, render.ErrMissingVariable) {
		t.Fatalf("expected missing variable, got %v", err)
	}
}

func TestRenderString_UnsupportedSectionAborts(t *testing.T) {
	binding := vars.NewBinding(map[string]vars.Value{"weird": {}})
	_, err := renderString(t, "before{{#weird}}x{{/weird}}after", binding)
	if !errors.Is(err, render.ErrUnsupportedSection) {
		t.Fatalf("expected unsupported section, got %v", err)
	}
	renderErr, _ := render.AsError(err)
	if renderErr.Type != "invalid" || renderErr.Name != "weird" || renderErr.Line != 1 {
		t.Fatalf("unexpected error fields %+v", renderErr)
	}
}

func TestRenderString_FailureInsideListStops(t *testing.T) {
	binding := vars.NewBuilder().Strings("items", "a", "b").Build()
	_, err := renderString(t, "{{#items}}{{.}}{{#missing}}{{/missing}}{{/items}}", binding)
	if !errors.Is(err, render.ErrMissingSection) {
		t.Fatalf("expected missing section, got %v", err)
	}
}

func TestRenderString_CompileError(t *testing.T) {
	_, err := renderString(t, "line\n{{#open}}", vars.Binding{})
	if !errors.Is(err, render.ErrCompile) {
		t.Fatalf("expected compile error, got %v", err)
	}
	renderErr, _ := render.AsError(err)
	if renderErr.Line != 2 {
		t.Fatalf("expected line 2, got %d", renderErr.Line)
	}
}

func TestRender_NoCrossContamination(t *testing.T) {
	tmpl, err := render.Compile("{{#items}}{{.}},{{/items}}{{name}}")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	first := vars.NewBuilder().Strings("items", "a", "b").String("name", "one").Build()
	second := vars.NewBuilder().Strings("items", "z").String("name", "two").Build()

	engine := render.New()
	var wg sync.WaitGroup
	results := make([]string, 40)
	errs := make([]error, 40)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			binding := first
			if i%2 == 1 {
				binding = second
			}
			results[i], errs[i] = engine.Render(tmpl, binding)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if errs[i] != nil {
			t.Fatalf("render %d: %v", i, errs[i])
		}
		want := "a,b,one"
		if i%2 == 1 {
			want = "z,two"
		}
		if got != want {
			t.Fatalf("render %d: got %q, want %q", i, got, want)
		}
	}
}

func TestRender_WritesToOutputs(t *testing.T) {
	var a, b bytes.Buffer
	got, err := render.New().RenderString("hi {{who}}", vars.NewBuilder().String("who", "you").Build(), &a, nil, &b)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "hi you" || a.String() != got || b.String() != got {
		t.Fatalf("unexpected outputs %q %q %q", got, a.String(), b.String())
	}
}

type countingLoader struct {
	mu    sync.Mutex
	calls map[string]int
	files fstest.MapFS
}

func (l *countingLoader) Load(_ context.Context, src pkgloader.Source) (string, error) {
	l.mu.Lock()
	l.calls[src.URI()]++
	l.mu.Unlock()
	data, err := fs.ReadFile(l.files, src.Location())
	return string(data), err
}

func TestRenderTemplate_CachesBySource(t *testing.T) {
	loader := &countingLoader{
		calls: map[string]int{},
		files: fstest.MapFS{"templates/page.mst": {Data: []byte("<p>{{body}}</p>")}},
	}
	engine := render.New(render.WithLoader(loader))
	ctx := context.Background()
	binding := vars.NewBuilder().String("body", "x").Build()

	first, err := engine.RenderTemplate(ctx, "resource:///templates/page.mst", binding)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := engine.RenderTemplate(ctx, "resource:///templates/page.mst", binding)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second || first != "<p>x</p>" {
		t.Fatalf("unexpected output %q / %q", first, second)
	}
	if diff := cmp.Diff(map[string]int{"resource:///templates/page.mst": 1}, loader.calls); diff != "" {
		t.Fatalf("loader calls mismatch (-want +got):\n%s", diff)
	}

	if err := engine.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if engine.Cache().Len() != 0 {
		t.Fatalf("expected empty cache after close")
	}
	if _, err := engine.RenderTemplate(ctx, "resource:///templates/page.mst", binding); err != nil {
		t.Fatalf("render after close: %v", err)
	}
	if loader.calls["resource:///templates/page.mst"] != 2 {
		t.Fatalf("expected reload after close, got %d", loader.calls["resource:///templates/page.mst"])
	}
}

func TestRenderTemplate_LoadFailureIsNotCached(t *testing.T) {
	loader := &countingLoader{calls: map[string]int{}, files: fstest.MapFS{}}
	engine := render.New(render.WithLoader(loader))

	for i := 0; i < 2; i++ {
		_, err := engine.RenderTemplate(context.Background(), "resource:///missing.mst", vars.Binding{})
		if !errors.Is(err, render.ErrLoad) {
			t.Fatalf("expected load error, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected wrapped fs.ErrNotExist, got %v", err)
		}
	}
	if loader.calls["resource:///missing.mst"] != 2 {
		t.Fatalf("expected loader to be retried, got %d calls", loader.calls["resource:///missing.mst"])
	}
	if engine.Cache().Len() != 0 {
		t.Fatalf("expected no cache entry for failed load")
	}
}

func TestRenderTemplate_RejectsBadLocation(t *testing.T) {
	_, err := render.New().RenderTemplate(context.Background(), "http://example.com/a.mst", vars.Binding{})
	if !errors.Is(err, render.ErrLoad) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestTemplate_Introspection(t *testing.T) {
	tmpl, err := render.Compile("{{a}}{{#s}}{{{b}}}{{a}}{{/s}}")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tmpl.Variables()); diff != "" {
		t.Fatalf("variables mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"s"}, tmpl.Sections()); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}
