// Package codec provides the key encoders that turn caller keys into the
// canonical strings used for storage and equality.
package codec

// KeyCodec converts keys to and from their canonical string form.
type KeyCodec[K any] interface {
	// Encode returns the canonical string for key. Equal keys must encode
	// to equal strings.
	Encode(key K) (string, error)
	// Decode rebuilds a key from its canonical string.
	Decode(s string) (K, error)
	// Name returns the codec identifier used for diagnostics.
	Name() string
}
