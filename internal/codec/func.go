package codec

// Func adapts a pair of plain functions into a KeyCodec. Either side may be
// nil, in which case the JSON codec fills in.
type Func[K any] struct {
	EncodeFunc func(K) (string, error)
	DecodeFunc func(string) (K, error)
}

// Encode calls EncodeFunc, or JSON when it is nil.
func (f Func[K]) Encode(key K) (string, error) {
	if f.EncodeFunc == nil {
		return JSON[K]{}.Encode(key)
	}
	return f.EncodeFunc(key)
}

// Decode calls DecodeFunc, or JSON when it is nil.
func (f Func[K]) Decode(s string) (K, error) {
	if f.DecodeFunc == nil {
		return JSON[K]{}.Decode(s)
	}
	return f.DecodeFunc(s)
}

// Name returns "func".
func (Func[K]) Name() string { return "func" }

// Default is the codec used when none is configured.
func Default[K any]() KeyCodec[K] { return JSON[K]{} }
