package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-articlerender/pkg/legacy"
)

var errRequired = errors.New("a value is required")

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

// Article asks for the metadata of a legacy article, starting from seed.
// BodyHTML is carried over unchanged.
func Article(ctx context.Context, d Driver, sources []string, seed legacy.Content) (legacy.Content, error) {
	if d == nil {
		return seed, errors.New("prompt: driver is nil")
	}
	if len(sources) == 0 {
		return seed, errors.New("prompt: no sources to choose from")
	}
	out := seed

	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Content source",
		Options:      sources,
		DefaultIndex: indexOf(sources, seed.Source),
	})
	if err != nil {
		return seed, err
	}
	if idx < 0 || idx >= len(sources) {
		return seed, fmt.Errorf("prompt: source selection %d out of range", idx)
	}
	out.Source = sources[idx]

	inputs := []struct {
		cfg    InputConfig
		target *string
	}{
		{InputConfig{Message: "Source name", Default: seed.SourceName}, &out.SourceName},
		{InputConfig{Message: "Original URI", Default: seed.OriginalURI, Validator: required}, &out.OriginalURI},
		{InputConfig{Message: "License", Default: seed.License}, &out.License},
		{InputConfig{Message: "Title", Default: seed.Title}, &out.Title},
	}
	for _, in := range inputs {
		value, err := d.Input(ctx, in.cfg)
		if err != nil {
			return seed, err
		}
		*in.target = strings.TrimSpace(value)
	}

	if out.ShowTitle, err = d.Confirm(ctx, ConfirmConfig{Message: "Show title?", Default: seed.ShowTitle}); err != nil {
		return seed, err
	}
	if out.UseScrollManager, err = d.Confirm(ctx, ConfirmConfig{Message: "Load the scroll manager?", Default: seed.UseScrollManager}); err != nil {
		return seed, err
	}
	return out, nil
}
