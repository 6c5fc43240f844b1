package codec

import "bytes"

// Stable is a JSON codec whose output does not depend on the field order of
// object-like keys. The key is encoded, parsed back into a generic tree and
// re-encoded by json-iterator with sorted object fields, so two keys with
// equal fields always share one canonical string. Numbers keep their
// literal text.
type Stable[K any] struct{}

// Encode returns the sorted-field JSON form of key.
func (Stable[K]) Encode(key K) (string, error) {
	raw, err := marshalKey(key)
	if err != nil {
		return "", err
	}
	dec := API.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return "", err
	}
	return API.MarshalToString(tree)
}

// Decode unmarshals s into a fresh K.
func (Stable[K]) Decode(s string) (K, error) {
	var key K
	err := API.UnmarshalFromString(s, &key)
	return key, err
}

// Name returns "stable-json".
func (Stable[K]) Name() string { return "stable-json" }
