package attr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{name: "nil becomes null", in: nil, want: Null()},
		{name: "true", in: true, want: Bool(true)},
		{name: "false", in: false, want: Bool(false)},
		{name: "string", in: "hello", want: String("hello")},
		{name: "empty string", in: "", want: String("")},
		{name: "int64", in: int64(42), want: Number("42")},
		{name: "negative int64", in: int64(-7), want: Number("-7")},
		{name: "int", in: 42, want: Number("42")},
		{name: "json number", in: json.Number("123.456"), want: Number("123.456")},
		{name: "big json number", in: json.Number("9223372036854775807"), want: Number("9223372036854775807")},
		{name: "float keeps fraction marker", in: float64(10), want: Number("10.0")},
		{name: "fractional float", in: 123.456, want: Number("123.456")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			assert.True(t, got.Equal(tt.want), "got %#v want %#v", got, tt.want)
		})
	}
}

func TestEncodeContainers(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		got := Encode([]any{})
		assert.Equal(t, KindList, got.Kind())
		assert.Len(t, got.ListValue(), 0)
	})

	t.Run("empty map", func(t *testing.T) {
		got := Encode(map[string]any{})
		assert.Equal(t, KindMap, got.Kind())
		assert.Len(t, got.MapValue(), 0)
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Encode([]any{"a", int64(1), nil, true})
		want := List(String("a"), Number("1"), Null(), Bool(true))
		assert.True(t, got.Equal(want))
	})

	t.Run("nested map", func(t *testing.T) {
		got := Encode(map[string]any{
			"name": "alice",
			"tags": []any{"x", "y"},
			"meta": map[string]any{"age": int64(30)},
		})
		want := Map(map[string]Value{
			"name": String("alice"),
			"tags": List(String("x"), String("y")),
			"meta": Map(map[string]Value{"age": Number("30")}),
		})
		assert.True(t, got.Equal(want))
	})
}

func TestEncodeNeverEmitsSets(t *testing.T) {
	// Sets enter the system only from the wire. Whatever the input, the
	// encoder output is built from S, N, BOOL, NULL, L, and M alone.
	inputs := []any{
		[]any{"a", "b", "c"},
		[]any{int64(1), int64(2)},
		map[string]any{"k": []any{[]any{int64(0)}}},
	}
	for _, in := range inputs {
		assertNoSetKinds(t, Encode(in))
	}
}

func assertNoSetKinds(t *testing.T, v Value) {
	t.Helper()
	switch v.Kind() {
	case KindStringSet, KindNumberSet, KindBinarySet, KindBinary:
		t.Fatalf("encoder emitted %s", v.Kind())
	case KindList:
		for _, e := range v.ListValue() {
			assertNoSetKinds(t, e)
		}
	case KindMap:
		for _, e := range v.MapValue() {
			assertNoSetKinds(t, e)
		}
	}
}

func TestFormatFloatRoundTrips(t *testing.T) {
	floats := []float64{0, 1, -1, 10, 0.5, 123.456, 78.9, 1e21, -2.5e-10, 9007199254740993}
	for _, f := range floats {
		s := FormatFloat(f)
		assert.Contains(t, s, ".", "float text must keep the float parse branch")
		got := Decode(Number(s))
		assert.Equal(t, f, got, "text %q", s)
	}
}
