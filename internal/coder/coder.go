// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// coder.go — the Coder interface, the Pair function adapter, and Coderize,
// which normalizes anything coder-shaped into a Coder.

// Package coder provides the encode/decode layer between in-memory values
// and the byte representation a cache backend stores.
package coder

import (
	"errors"
	"fmt"
)

// ErrInvalidCoder is returned by Coderize (and Registry.Register) when the
// supplied value satisfies none of the accepted coder shapes. This is a
// configuration bug in the caller and is never retried.
var ErrInvalidCoder = errors.New("coder: not a coder-compatible value")

// Coder transforms a value into its storable byte representation and back.
// Registered coders must uphold the round-trip law: Decode(Encode(v)) is
// observationally equivalent to v for every value the coder is designed to
// handle. The registry does not enforce this; it is a caller obligation.
type Coder interface {
	// Encode serializes v into bytes for storage.
	Encode(v any) ([]byte, error)
	// Decode deserializes stored bytes back into a value.
	Decode(data []byte) (any, error)
	// Name returns the coder identifier used for diagnostics.
	Name() string
}

// EncodeFunc is the encode half of a function-pair coder.
type EncodeFunc func(v any) ([]byte, error)

// DecodeFunc is the decode half of a function-pair coder.
type DecodeFunc func(data []byte) (any, error)

// Pair is a Coder built from two independent functions. The zero value is
// not usable; construct with NewPair or populate both function fields.
type Pair struct {
	Label    string
	EncodeFn EncodeFunc
	DecodeFn DecodeFunc
}

// NewPair builds a Pair coder from an encode and a decode function.
func NewPair(label string, enc EncodeFunc, dec DecodeFunc) Pair {
	return Pair{Label: label, EncodeFn: enc, DecodeFn: dec}
}

// Encode calls the pair's encode function.
func (p Pair) Encode(v any) ([]byte, error) { return p.EncodeFn(v) }

// Decode calls the pair's decode function.
func (p Pair) Decode(data []byte) (any, error) { return p.DecodeFn(data) }

// Name returns the pair's label, or "pair" when unlabeled.
func (p Pair) Name() string {
	if p.Label != "" {
		return p.Label
	}
	return "pair"
}

// encodeDecoder is the minimal duck shape Coderize accepts: any value with
// Encode and Decode methods of the right signatures, Name not required.
type encodeDecoder interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// Coderize normalizes raw into a Coder. Accepted shapes:
//
//   - a Coder
//   - a Pair (or anything else with Encode/Decode methods but no Name)
//
// Anything else fails with ErrInvalidCoder. A pair of loose functions is
// adapted with NewPair before being handed to Coderize or Register.
func Coderize(raw any) (Coder, error) {
	switch c := raw.(type) {
	case Coder:
		return c, nil
	case encodeDecoder:
		return Pair{EncodeFn: c.Encode, DecodeFn: c.Decode}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidCoder, raw)
	}
}
