package coder

import "github.com/vmihailenco/msgpack/v5"

// MsgPack is a compact binary coder using MessagePack encoding; unlike Gob
// it needs no type registration and interoperates across languages.
type MsgPack struct{}

// Encode serializes v to MessagePack bytes.
func (MsgPack) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode deserializes MessagePack bytes into their generic representation.
func (MsgPack) Decode(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }
