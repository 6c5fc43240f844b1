// Package store provides the insertion-ordered, string-keyed storage that
// backs a keymap.Map.
package store

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is a cursor into the store. Iteration walks Pair.Next() from Front().
type Pair[V any] = orderedmap.Pair[string, V]

// Stats holds hit/miss/entry counts.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// Ordered is a string-keyed store that remembers the order in which keys were
// first inserted. It is not safe for concurrent use.
type Ordered[V any] struct {
	items  *orderedmap.OrderedMap[string, V]
	hits   int64
	misses int64
}

// New creates an empty store with room for capacity entries.
func New[V any](capacity int) *Ordered[V] {
	if capacity > 0 {
		return &Ordered[V]{items: orderedmap.New[string, V](capacity)}
	}
	return &Ordered[V]{items: orderedmap.New[string, V]()}
}

// FromOrdered copies om into a new store, keeping its order.
func FromOrdered[V any](om *orderedmap.OrderedMap[string, V]) *Ordered[V] {
	s := New[V](om.Len())
	for p := om.Oldest(); p != nil; p = p.Next() {
		s.items.Set(p.Key, p.Value)
	}
	return s
}

// Set upserts value under key. A new key goes to the back; an existing key
// keeps its position.
func (s *Ordered[V]) Set(key string, value V) {
	s.items.Set(key, value)
}

// Get retrieves a value by key.
func (s *Ordered[V]) Get(key string) (V, bool) {
	v, ok := s.items.Get(key)
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return v, ok
}

// Has reports whether key is present.
func (s *Ordered[V]) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Ordered[V]) Delete(key string) bool {
	_, ok := s.items.Delete(key)
	return ok
}

// Flush removes all entries.
func (s *Ordered[V]) Flush() {
	s.items = orderedmap.New[string, V]()
}

// Len returns the number of entries.
func (s *Ordered[V]) Len() int {
	return s.items.Len()
}

// Front returns the oldest entry, or nil when the store is empty.
func (s *Ordered[V]) Front() *Pair[V] {
	return s.items.Oldest()
}

// Live reports whether p is still the entry stored under its key. A cursor
// stops being live once its key is deleted or the store is flushed.
func (s *Ordered[V]) Live(p *Pair[V]) bool {
	return p != nil && s.items.GetPair(p.Key) == p
}

// Clone returns an independent shallow copy. Values are copied as-is.
func (s *Ordered[V]) Clone() *Ordered[V] {
	return FromOrdered(s.items)
}

// Ordered returns a copy of the entries as an ordered map.
func (s *Ordered[V]) Ordered() *orderedmap.OrderedMap[string, V] {
	return s.Clone().items
}

// Stats returns current statistics.
func (s *Ordered[V]) Stats() Stats {
	return Stats{Hits: s.hits, Misses: s.misses, Entries: int64(s.items.Len())}
}
