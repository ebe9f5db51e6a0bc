package render_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-articlerender/pkg/render"
)

func TestCache_GetOrCompile(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cache := render.NewCache(zap.New(core))

	var loads int32
	load := func() (string, error) {
		atomic.AddInt32(&loads, 1)
		return "{{x}}", nil
	}

	first, err := cache.GetOrCompile("id", load)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := cache.GetOrCompile("id", load)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached template to be reused")
	}
	if loads != 1 {
		t.Fatalf("expected one load, got %d", loads)
	}
	if logs.FilterMessage("template cache hit").Len() != 1 || logs.FilterMessage("template cache miss").Len() != 1 {
		t.Fatalf("unexpected log entries: %v", logs.All())
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	cache := render.NewCache(nil)
	boom := errors.New("boom")

	if _, err := cache.GetOrCompile("id", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected load error as-is, got %v", err)
	}
	if _, err := cache.GetOrCompile("id", func() (string, error) { return "{{#x}}", nil }); !errors.Is(err, render.ErrCompile) {
		t.Fatalf("expected compile error, got %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", cache.Len())
	}
}

func TestCache_ConcurrentMisses(t *testing.T) {
	cache := render.NewCache(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tmpl, err := cache.GetOrCompile("shared", func() (string, error) { return "{{v}}", nil })
			if err != nil || tmpl == nil {
				t.Errorf("get or compile: %v", err)
			}
		}()
	}
	wg.Wait()
	if cache.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", cache.Len())
	}
}
