// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// registry.go — named coder table. Read-mostly: populated at startup,
// consulted on every caching-site configuration.

package coder

import "sync"

// Registry maps coder names to Coders. A Registry is safe for concurrent
// use; registration typically happens once at startup while lookups run
// for the life of the process. The zero value is not usable; construct
// with NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	coders map[string]Coder
}

// NewRegistry returns an empty registry. Call RegisterBuiltins to populate
// it with the stock coders, or register entries individually.
func NewRegistry() *Registry {
	return &Registry{coders: make(map[string]Coder)}
}

// Register normalizes raw via Coderize and stores it under name,
// overwriting any prior entry for that name. Round-trip correctness of the
// supplied coder is the caller's obligation and is not validated here.
func (r *Registry) Register(name string, raw any) error {
	c, err := Coderize(raw)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.coders[name] = c
	r.mu.Unlock()
	return nil
}

// Get returns the coder registered under name. The second return is false
// when name is unregistered; Get itself never fails, the caller decides
// whether a missing coder is fatal.
func (r *Registry) Get(name string) (Coder, bool) {
	r.mu.RLock()
	c, ok := r.coders[name]
	r.mu.RUnlock()
	return c, ok
}

// Len returns the number of registered coders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.coders)
}

// RegisterBuiltins installs the stock coders into r:
//
//	"" and "none" → Bypass (identity, values must already be bytes)
//	"json"        → JSON
//	"gob"         → Gob (full-fidelity binary for registered Go types)
//	"msgpack"     → MsgPack (cross-language binary)
func RegisterBuiltins(r *Registry) {
	for _, name := range []string{"", "none"} {
		_ = r.Register(name, Bypass{})
	}
	_ = r.Register("json", JSON{})
	_ = r.Register("gob", Gob{})
	_ = r.Register("msgpack", MsgPack{})
}
