package coder

import "fmt"

// Bypass is the default coder: it stores values untransformed. Encode
// accepts only values that already are bytes (or a string); Decode hands
// the stored bytes straight back.
type Bypass struct{}

// Encode passes byte and string values through unchanged.
func (Bypass) Encode(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("coder: bypass expects bytes or string, got %T", v)
	}
}

// Decode returns the stored bytes unchanged.
func (Bypass) Decode(data []byte) (any, error) {
	return data, nil
}

// Name returns "none".
func (Bypass) Name() string { return "none" }
