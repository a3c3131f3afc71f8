// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// json.go — JSON coder wrapping encoding/json; the right choice when the
// backend stores human-readable text or values cross language boundaries.

package coder

import "encoding/json"

// JSON encodes values as UTF-8 JSON text. Decode returns the generic JSON
// forms (float64 numbers, map[string]any objects, []any arrays), so it
// round-trips JSON-representable data, not arbitrary Go types.
type JSON struct{}

// Encode serializes v to JSON bytes.
func (JSON) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode parses JSON bytes into their generic representation.
func (JSON) Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Name returns "json".
func (JSON) Name() string { return "json" }
