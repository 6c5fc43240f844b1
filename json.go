package keymap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AndrewDonelson/keymap/internal/codec"
	"github.com/AndrewDonelson/keymap/internal/store"
	jsoniter "github.com/json-iterator/go"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record returns the entries as canonical string → value. Passing the result
// to FromRecord rebuilds an equivalent map (order aside).
func (m *Map[K, V]) Record() map[string]V {
	out := make(map[string]V, m.Len())
	for p := m.storage().Front(); p != nil; p = p.Next() {
		out[p.Key] = p.Value
	}
	return out
}

// Ordered returns the entries as canonical string → value in insertion
// order. The result is a copy.
func (m *Map[K, V]) Ordered() *orderedmap.OrderedMap[string, V] {
	return m.storage().Ordered()
}

// MarshalJSON writes the map as a JSON object keyed by canonical strings, in
// insertion order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	stream := jsoniter.NewStream(codec.API, buf, 4096)
	stream.WriteObjectStart()
	i := 0
	for p := m.storage().Front(); p != nil; p, i = p.Next(), i+1 {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(p.Key)
		stream.WriteVal(p.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	err := stream.Flush()
	return buf.Bytes(), err
}

// UnmarshalJSON replaces the map's entries with the members of a JSON
// object, in document order. Member names are stored verbatim as canonical
// strings. A map with no codec yet gets the JSON codec.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, V]()
	r := codec.API.BorrowIterator(data)
	defer codec.API.ReturnIterator(r)
	r.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		var v V
		it.ReadVal(&v)
		if it.Error != nil {
			return false
		}
		om.Set(field, v)
		return true
	})
	if r.Error != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, r.Error)
	}
	if m.codec == nil {
		m.configure(Options[K]{})
	}
	m.data = store.FromOrdered(om)
	return nil
}

// String renders the map with canonical keys, e.g. {["a","b"]: x}.
func (m *Map[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")
	i := 0
	for p := m.storage().Front(); p != nil; p, i = p.Next(), i+1 {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%s: %v", p.Key, p.Value)
	}
	builder.WriteString("}")
	return builder.String()
}
