// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// coder.go — coder selection surface: the process-wide default registry,
// registration of custom coders, and ResolveCoder, which turns whatever a
// caching site configured (a name, a coder, a function pair) into a Coder.

package memoize

import (
	"fmt"

	"github.com/AndrewDonelson/memoize/internal/coder"
)

// Re-export coder types so callers only import this package.
type Coder = coder.Coder
type CoderPair = coder.Pair
type CoderRegistry = coder.Registry

// Convenience constructors re-exported from the coder package.
var (
	NewCoderPair     = coder.NewPair
	RegisterBuiltins = coder.RegisterBuiltins
)

// DefaultRegistry is the process-wide coder registry, populated with the
// built-in coders ("", "none", "json", "gob", "msgpack") at startup.
// Callers extend it through RegisterCoder; tests wanting isolation build
// their own with NewCoderRegistry.
var DefaultRegistry = coder.NewRegistry()

func init() {
	coder.RegisterBuiltins(DefaultRegistry)
}

// NewCoderRegistry returns an empty, independent registry.
func NewCoderRegistry() *CoderRegistry {
	return coder.NewRegistry()
}

// RegisterCoder registers raw under name in the default registry. raw may
// be a Coder, a CoderPair, or any value with Encode/Decode methods;
// anything else fails with ErrInvalidCoder.
func RegisterCoder(name string, raw any) error {
	return DefaultRegistry.Register(name, raw)
}

// ResolveCoder normalizes a caching site's coder selection. A string is
// looked up in the default registry (ErrCoderNotFound when absent — a
// configuration error surfaced at decoration time, not at call time);
// anything else is normalized the same way RegisterCoder accepts it.
func ResolveCoder(sel any) (Coder, error) {
	if sel == nil {
		sel = "" // no selection means the bypass coder
	}
	if name, ok := sel.(string); ok {
		c, ok := DefaultRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrCoderNotFound, name)
		}
		return c, nil
	}
	return coder.Coderize(sel)
}
