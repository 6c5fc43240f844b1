package keymap

import (
	"iter"

	"github.com/AndrewDonelson/keymap/internal/store"
)

// Entry is one decoded key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Iterator walks a Map's entries in insertion order, decoding each key only
// when Next reaches it. It is single-pass; call Entries again for a new pass.
//
//	it := m.Entries()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Mutating the map while iterating is not supported. If the entry the
// iterator would visit next is deleted, or the map is cleared, iteration
// ends without yielding it.
type Iterator[K, V any] struct {
	m      *Map[K, V]
	op     string
	cursor *store.Pair[V]
	raw    string
	key    K
	value  V
	err    error
	done   bool
}

// Entries returns an iterator over the map's entries.
func (m *Map[K, V]) Entries() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, op: "entries", cursor: m.storage().Front()}
}

// Next decodes the next entry. It returns false when the entries are
// exhausted or a key fails to decode; Err tells the two apart.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	if !it.m.data.Live(it.cursor) {
		it.done = true
		return false
	}
	p := it.cursor
	it.cursor = p.Next()
	k, err := it.m.decode(it.op, p.Key)
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	it.raw, it.key, it.value = p.Key, k, p.Value
	return true
}

// Key returns the decoded key of the current entry.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value of the current entry.
func (it *Iterator[K, V]) Value() V { return it.value }

// Raw returns the canonical string of the current entry.
func (it *Iterator[K, V]) Raw() string { return it.raw }

// Entry returns the current entry.
func (it *Iterator[K, V]) Entry() Entry[K, V] { return Entry[K, V]{Key: it.key, Value: it.value} }

// Err returns the decode error that stopped iteration, if any.
func (it *Iterator[K, V]) Err() error { return it.err }

// KeyIterator is an Iterator that exposes keys only.
type KeyIterator[K any] struct {
	next func() bool
	key  func() K
	err  func() error
}

// Keys returns an iterator over the map's decoded keys in insertion order.
func (m *Map[K, V]) Keys() *KeyIterator[K] {
	it := &Iterator[K, V]{m: m, op: "keys", cursor: m.storage().Front()}
	return &KeyIterator[K]{next: it.Next, key: it.Key, err: it.Err}
}

// Next decodes the next key.
func (it *KeyIterator[K]) Next() bool { return it.next() }

// Key returns the current key.
func (it *KeyIterator[K]) Key() K { return it.key() }

// Err returns the decode error that stopped iteration, if any.
func (it *KeyIterator[K]) Err() error { return it.err() }

// Values yields values in insertion order. Keys are never decoded. Like
// Entries, it stops early if the next entry is deleted or the map cleared.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := m.storage().Front(); m.data.Live(p); {
			next := p.Next()
			if !yield(p.Value) {
				return
			}
			p = next
		}
	}
}

// All yields every entry in insertion order for use with range. A decode
// failure is yielded once with a zero Entry and ends the sequence.
//
//	for e, err := range m.All() {
//		if err != nil { ... }
//	}
func (m *Map[K, V]) All() iter.Seq2[Entry[K, V], error] {
	return func(yield func(Entry[K, V], error) bool) {
		it := &Iterator[K, V]{m: m, op: "all", cursor: m.storage().Front()}
		for it.Next() {
			if !yield(it.Entry(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield(Entry[K, V]{}, err)
		}
	}
}

// ForEach calls fn for every entry in insertion order with the decoded key.
// It stops at the first key that fails to decode and returns that error.
// Use ForEachValue when the key is not needed.
func (m *Map[K, V]) ForEach(fn func(value V, key K)) error {
	it := &Iterator[K, V]{m: m, op: "foreach", cursor: m.storage().Front()}
	for it.Next() {
		fn(it.Value(), it.Key())
	}
	return it.Err()
}

// ForEachValue calls fn for every value in insertion order without decoding
// any key, so a codec whose Decode fails cannot affect it.
func (m *Map[K, V]) ForEachValue(fn func(value V)) {
	for v := range m.Values() {
		fn(v)
	}
}
