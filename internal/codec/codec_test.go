package codec_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AndrewDonelson/keymap/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int    `json:"x" msgpack:"x"`
	Y int    `json:"y" msgpack:"y"`
	L string `json:"label" msgpack:"label"`
}

func TestJSONCodec_Array(t *testing.T) {
	c := codec.JSON[[]string]{}
	s, err := c.Encode([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, s)

	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, "json", c.Name())
}

func TestJSONCodec_NoHTMLEscape(t *testing.T) {
	s, err := codec.JSON[string]{}.Encode("<a&b>")
	require.NoError(t, err)
	assert.Equal(t, `"<a&b>"`, s)
}

func TestJSONCodec_Struct(t *testing.T) {
	c := codec.JSON[point]{}
	orig := point{X: 1, Y: 2, L: "p"}
	s, err := c.Encode(orig)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2,"label":"p"}`, s)

	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestJSONCodec_RawMessageKeepsFieldOrder(t *testing.T) {
	c := codec.JSON[json.RawMessage]{}
	a, err := c.Encode(json.RawMessage(`{"b":1,"a":1,"c":1}`))
	require.NoError(t, err)
	b, err := c.Encode(json.RawMessage(`{"c":1,"a":1,"b":1}`))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJSONCodec_DecodeError(t *testing.T) {
	_, err := codec.JSON[[]string]{}.Decode("not json")
	assert.Error(t, err)
}

func TestStableCodec_SortsFields(t *testing.T) {
	c := codec.Stable[json.RawMessage]{}
	a, err := c.Encode(json.RawMessage(`{"b":1,"a":1,"c":1}`))
	require.NoError(t, err)
	b, err := c.Encode(json.RawMessage(`{"c":1,"a":1,"b":1}`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, `{"a":1,"b":1,"c":1}`, a)
	assert.Equal(t, "stable-json", c.Name())
}

func TestStableCodec_StructMatchesMap(t *testing.T) {
	fromStruct, err := codec.Stable[point]{}.Encode(point{X: 1, Y: 2, L: "p"})
	require.NoError(t, err)
	fromMap, err := codec.Stable[map[string]any]{}.Encode(map[string]any{"y": 2, "label": "p", "x": 1})
	require.NoError(t, err)
	assert.Equal(t, fromMap, fromStruct)
}

func TestStableCodec_NumbersKeepText(t *testing.T) {
	s, err := codec.Stable[json.RawMessage]{}.Encode(json.RawMessage(`[12345678901234567890,1.50]`))
	require.NoError(t, err)
	assert.Equal(t, `[12345678901234567890,1.50]`, s)
}

func TestStableCodec_RoundTrip(t *testing.T) {
	c := codec.Stable[point]{}
	orig := point{X: 3, Y: 4, L: "q"}
	s, err := c.Encode(orig)
	require.NoError(t, err)
	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestMsgPackCodec(t *testing.T) {
	c := codec.MsgPack[point]{}
	orig := point{X: 42, Y: 7, L: "pack"}
	s, err := c.Encode(orig)
	require.NoError(t, err)
	assert.NotContains(t, s, "=")

	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
	assert.Equal(t, "msgpack", c.Name())
}

func TestMsgPackCodec_SortedMapKeys(t *testing.T) {
	c := codec.MsgPack[map[string]int]{}
	first, err := c.Encode(map[string]int{"a": 1, "b": 2, "c": 3})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := c.Encode(map[string]int{"c": 3, "b": 2, "a": 1})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMsgPackCodec_BadBase64(t *testing.T) {
	_, err := codec.MsgPack[point]{}.Decode("!!!")
	assert.Error(t, err)
}

func TestFuncCodec(t *testing.T) {
	c := codec.Func[[]string]{
		EncodeFunc: func(k []string) (string, error) { return strings.Join(k, ","), nil },
		DecodeFunc: func(s string) ([]string, error) { return strings.Split(s, ","), nil },
	}
	s, err := c.Encode([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", s)

	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, "func", c.Name())
}

func TestFuncCodec_NilSidesFallBackToJSON(t *testing.T) {
	c := codec.Func[[]int]{}
	s, err := c.Encode([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", s)

	got, err := c.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestFuncCodec_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	c := codec.Func[int]{
		EncodeFunc: func(int) (string, error) { return "", boom },
		DecodeFunc: func(string) (int, error) { return 0, boom },
	}
	_, err := c.Encode(1)
	assert.ErrorIs(t, err, boom)
	_, err = c.Decode("1")
	assert.ErrorIs(t, err, boom)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "json", codec.Default[int]().Name())
}

type node struct {
	Name string `json:"name"`
	Next *node  `json:"next"`
}

func cyclicNode() *node {
	n := &node{Name: "loop"}
	n.Next = n
	return n
}

func TestJSONCodec_CyclicKeyFails(t *testing.T) {
	_, err := codec.JSON[*node]{}.Encode(cyclicNode())
	var unsupported *json.UnsupportedValueError
	assert.ErrorAs(t, err, &unsupported)
}

func TestStableCodec_CyclicKeyFails(t *testing.T) {
	_, err := codec.Stable[*node]{}.Encode(cyclicNode())
	assert.Error(t, err)
}

func TestJSONCodec_InvalidRawMessageFails(t *testing.T) {
	c := codec.JSON[json.RawMessage]{}
	for _, raw := range []string{"{bad", "[oops", "1 2 3"} {
		s, err := c.Encode(json.RawMessage(raw))
		assert.Error(t, err, raw)
		assert.Empty(t, s, raw)
	}
}

func TestJSONCodec_AcyclicPointerChain(t *testing.T) {
	s, err := codec.JSON[*node]{}.Encode(&node{Name: "a", Next: &node{Name: "b"}})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","next":{"name":"b","next":null}}`, s)
}
