package coder

import (
	"bytes"
	"encoding/gob"
)

// Gob is the full-fidelity binary coder for Go values. Concrete types
// stored through it must be registered with gob.Register by the caller,
// since values travel as interfaces.
type Gob struct{}

// Encode serializes v to gob bytes.
func (Gob) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes gob bytes back into the originally encoded value.
func (Gob) Decode(data []byte) (any, error) {
	var v any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Name returns "gob".
func (Gob) Name() string { return "gob" }
