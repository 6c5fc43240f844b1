// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// json.go — default key codec; keys are stringified as compact JSON with no
// HTML escaping so canonical strings match what a generic JSON stringifier
// produces for arrays and primitives.

package codec

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// API is the json-iterator configuration used for decoding keys and for
// streaming whole maps. Map keys are sorted; struct fields keep declaration
// order.
var API = jsoniter.Config{
	SortMapKeys: true,
}.Froze()

// marshalKey encodes key with encoding/json, which reports cyclic values and
// invalid json.RawMessage input as errors.
func marshalKey(key any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// JSON is the default key codec.
type JSON[K any] struct{}

// Encode marshals key to compact JSON.
func (JSON[K]) Encode(key K) (string, error) {
	b, err := marshalKey(key)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode unmarshals s into a fresh K.
func (JSON[K]) Decode(s string) (K, error) {
	var key K
	err := API.UnmarshalFromString(s, &key)
	return key, err
}

// Name returns "json".
func (JSON[K]) Name() string { return "json" }
