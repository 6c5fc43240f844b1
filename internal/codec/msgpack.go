package codec

import (
	"bytes"
	"encoding/base64"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack encodes keys as MessagePack with sorted map keys. The bytes are
// wrapped in unpadded base64url so the canonical string stays valid UTF-8
// and survives a JSON round trip of the whole map.
type MsgPack[K any] struct{}

// Encode serializes key to base64url MessagePack.
func (MsgPack[K]) Encode(key K) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(key); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode.
func (MsgPack[K]) Decode(s string) (K, error) {
	var key K
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return key, err
	}
	err = msgpack.Unmarshal(b, &key)
	return key, err
}

// Name returns "msgpack".
func (MsgPack[K]) Name() string { return "msgpack" }
