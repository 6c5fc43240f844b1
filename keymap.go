// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// keymap.go — Map type, Options, constructors and the key-addressed
// operations (Set, Get, Has, Delete, Clear, Len).

package keymap

import (
	"fmt"
	"sort"

	"github.com/AndrewDonelson/keymap/internal/codec"
	"github.com/AndrewDonelson/keymap/internal/metrics"
	"github.com/AndrewDonelson/keymap/internal/store"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Re-export types so callers only import this package.
type (
	KeyCodec[K any]     = codec.KeyCodec[K]
	MetricsRecorder     = metrics.Recorder
	Stats               = store.Stats
	JSONCodec[K any]    = codec.JSON[K]
	StableCodec[K any]  = codec.Stable[K]
	MsgPackCodec[K any] = codec.MsgPack[K]
	FuncCodec[K any]    = codec.Func[K]
)

// ────────────────────────────────────────────────────────────────────────────
// Options
// ────────────────────────────────────────────────────────────────────────────

// Options configures a Map. The zero value is valid and selects the JSON
// key codec.
type Options[K any] struct {
	// Codec converts keys to canonical strings and back. When set,
	// KeyStringifier and KeyParser are ignored.
	Codec KeyCodec[K]

	// KeyStringifier and KeyParser override one or both halves of the
	// default JSON codec. A custom stringifier usually needs a matching
	// parser for iteration to return the original key shape.
	KeyStringifier func(K) (string, error)
	KeyParser      func(string) (K, error)

	// Capacity pre-sizes the backing store.
	Capacity int

	Logger  Logger
	Metrics MetricsRecorder
}

func (o *Options[K]) defaults() {
	if o.Codec == nil {
		if o.KeyStringifier != nil || o.KeyParser != nil {
			o.Codec = codec.Func[K]{EncodeFunc: o.KeyStringifier, DecodeFunc: o.KeyParser}
		} else {
			o.Codec = codec.Default[K]()
		}
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	if o.Metrics == nil {
		o.Metrics = metrics.Noop{}
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Map
// ────────────────────────────────────────────────────────────────────────────

// Map is an insertion-ordered map keyed by the canonical string of K.
// Only canonical strings and values are stored; every key handed back to the
// caller is rebuilt with the codec's Decode.
//
// A Map is not safe for concurrent use. The zero value is an empty map using
// the JSON codec.
type Map[K, V any] struct {
	data    *store.Ordered[V]
	codec   KeyCodec[K]
	logger  Logger
	metrics MetricsRecorder
}

// New creates an empty Map.
func New[K, V any](opts Options[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.configure(opts)
	m.data = store.New[V](opts.Capacity)
	return m
}

// NewFrom creates a Map holding a shallow copy of src's entries. Canonical
// strings are copied directly, never re-encoded, so src's codec does not
// need to match opts.
func NewFrom[K, V any](src *Map[K, V], opts Options[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.configure(opts)
	if src == nil {
		m.data = store.New[V](opts.Capacity)
		return m
	}
	m.data = src.storage().Clone()
	return m
}

// FromRecord creates a Map from canonical string → value pairs. Record keys
// are stored verbatim, bypassing the codec. Go maps carry no order, so
// entries are inserted in ascending key order.
func FromRecord[K, V any](rec map[string]V, opts Options[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.configure(opts)
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m.data = store.New[V](len(keys))
	for _, k := range keys {
		m.data.Set(k, rec[k])
	}
	return m
}

// FromOrdered is FromRecord for an ordered source; its order is kept.
func FromOrdered[K, V any](om *orderedmap.OrderedMap[string, V], opts Options[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.configure(opts)
	if om == nil {
		m.data = store.New[V](opts.Capacity)
		return m
	}
	m.data = store.FromOrdered(om)
	return m
}

// Clone returns an independent copy that shares m's codec, logger and
// metrics.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m.lazyInit()
	return NewFrom(m, Options[K]{Codec: m.codec, Logger: m.logger, Metrics: m.metrics})
}

func (m *Map[K, V]) configure(opts Options[K]) {
	opts.defaults()
	m.codec = opts.Codec
	m.logger = opts.Logger
	m.metrics = opts.Metrics
}

func (m *Map[K, V]) lazyInit() {
	if m.codec == nil {
		m.configure(Options[K]{})
	}
	if m.data == nil {
		m.data = store.New[V](0)
	}
}

func (m *Map[K, V]) storage() *store.Ordered[V] {
	m.lazyInit()
	return m.data
}

// Codec returns the key codec in use.
func (m *Map[K, V]) Codec() KeyCodec[K] {
	m.lazyInit()
	return m.codec
}

// encode runs the codec and wraps its failure. Nothing is mutated on error.
func (m *Map[K, V]) encode(op string, key K) (string, error) {
	m.lazyInit()
	s, err := m.codec.Encode(key)
	if err != nil {
		m.metrics.RecordError(op)
		m.logger.Debug("keymap: key encode failed", "op", op, "codec", m.codec.Name(), "err", err)
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return s, nil
}

func (m *Map[K, V]) decode(op, s string) (K, error) {
	k, err := m.codec.Decode(s)
	if err != nil {
		m.metrics.RecordError(op)
		m.logger.Debug("keymap: key decode failed", "op", op, "codec", m.codec.Name(), "canonical", s, "err", err)
		return k, fmt.Errorf("%w: %q: %w", ErrDecodeFailed, s, err)
	}
	return k, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Key-addressed operations
// ────────────────────────────────────────────────────────────────────────────

// Set stores value under key. A key whose canonical string is already
// present keeps its position; its value is replaced.
func (m *Map[K, V]) Set(key K, value V) error {
	s, err := m.encode("set", key)
	if err != nil {
		return err
	}
	m.data.Set(s, value)
	return nil
}

// MustSet is Set for chaining. It panics if key cannot be encoded.
func (m *Map[K, V]) MustSet(key K, value V) *Map[K, V] {
	if err := m.Set(key, value); err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the value stored under key and whether it was present.
func (m *Map[K, V]) Lookup(key K) (V, bool, error) {
	var zero V
	s, err := m.encode("get", key)
	if err != nil {
		return zero, false, err
	}
	v, ok := m.data.Get(s)
	if !ok {
		m.metrics.RecordMiss("get")
		return zero, false, nil
	}
	m.metrics.RecordHit("get")
	return v, true, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok, err := m.Lookup(key)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

// Has reports whether an entry exists for key's canonical string.
func (m *Map[K, V]) Has(key K) (bool, error) {
	s, err := m.encode("has", key)
	if err != nil {
		return false, err
	}
	ok := m.data.Has(s)
	if ok {
		m.metrics.RecordHit("has")
	} else {
		m.metrics.RecordMiss("has")
	}
	return ok, nil
}

// Delete removes the entry for key and reports whether one was removed.
func (m *Map[K, V]) Delete(key K) (bool, error) {
	s, err := m.encode("delete", key)
	if err != nil {
		return false, err
	}
	return m.data.Delete(s), nil
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.storage().Flush()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m.data == nil {
		return 0
	}
	return m.data.Len()
}

// Stats returns lookup counters of the backing store.
func (m *Map[K, V]) Stats() Stats {
	return m.storage().Stats()
}
