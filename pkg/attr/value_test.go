package attr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueWireJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		wire string
	}{
		{name: "string", in: String("x"), wire: `{"S":"x"}`},
		{name: "number", in: Number("42"), wire: `{"N":"42"}`},
		{name: "bool", in: Bool(true), wire: `{"BOOL":true}`},
		{name: "null", in: Null(), wire: `{"NULL":true}`},
		{name: "binary base64", in: Binary([]byte{1, 2, 3}), wire: `{"B":"AQID"}`},
		{name: "empty list", in: List(), wire: `{"L":[]}`},
		{name: "list", in: List(String("a"), Number("1")), wire: `{"L":[{"S":"a"},{"N":"1"}]}`},
		{name: "empty map", in: Map(map[string]Value{}), wire: `{"M":{}}`},
		{name: "map", in: Map(map[string]Value{"k": Bool(false)}), wire: `{"M":{"k":{"BOOL":false}}}`},
		{name: "string set", in: StringSet("a", "b"), wire: `{"SS":["a","b"]}`},
		{name: "number set", in: NumberSet("1", "2"), wire: `{"NS":["1","2"]}`},
		{name: "binary set", in: BinarySet([]byte{1}), wire: `{"BS":["AQ=="]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			var back Value
			require.NoError(t, json.Unmarshal(data, &back))
			assert.True(t, back.Equal(tt.in), "got %#v want %#v", back, tt.in)
		})
	}
}

func TestValueWireJSONRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{name: "two tags", wire: `{"S":"x","N":"1"}`},
		{name: "zero tags", wire: `{}`},
		{name: "wrong payload type", wire: `{"S":42}`},
		{name: "not an object", wire: `"S"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			assert.Error(t, json.Unmarshal([]byte(tt.wire), &v))
		})
	}
}

func TestValueUnknownTagSurvivesUnmarshal(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"VS":["vector"]}`), &v))
	assert.Equal(t, Kind("VS"), v.Kind())

	// Unrecognized kinds cannot be re-marshalled; the payload was dropped.
	_, err := json.Marshal(v)
	assert.Error(t, err)
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "same string", a: String("x"), b: String("x"), want: true},
		{name: "different string", a: String("x"), b: String("y"), want: false},
		{name: "string vs number same text", a: String("1"), b: Number("1"), want: false},
		{name: "nulls", a: Null(), b: Null(), want: true},
		{name: "binary", a: Binary([]byte{1, 2}), b: Binary([]byte{1, 2}), want: true},
		{name: "binary differs", a: Binary([]byte{1, 2}), b: Binary([]byte{1}), want: false},
		{
			name: "nested equal",
			a:    Map(map[string]Value{"l": List(Number("1"), Bool(true))}),
			b:    Map(map[string]Value{"l": List(Number("1"), Bool(true))}),
			want: true,
		},
		{
			name: "nested differs",
			a:    Map(map[string]Value{"l": List(Number("1"))}),
			b:    Map(map[string]Value{"l": List(Number("2"))}),
			want: false,
		},
		{name: "sets ordered", a: StringSet("a", "b"), b: StringSet("b", "a"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestZeroValueIsNullKind(t *testing.T) {
	var v Value
	assert.Equal(t, Kind(""), v.Kind())
	assert.Nil(t, Decode(v))
}
