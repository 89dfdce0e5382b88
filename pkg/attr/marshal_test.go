package attr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Hola string `json:"hola"`
	Otro uint64 `json:"otro"`
}

type record struct {
	Hello string  `json:"hello"`
	World bool    `json:"world"`
	Fake  *inner  `json:"fake"`
	Other inner   `json:"other"`
	Tags  []inner `json:"tags"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := record{
		Hello: "world",
		World: false,
		Fake:  nil, // optional field left unset
		Other: inner{Hola: "mundo", Otro: 42},
		Tags: []inner{
			{Hola: "mundo1", Otro: 1},
			{Hola: "mundo2", Otro: 2},
		},
	}

	av, err := Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, KindMap, av.Kind())

	var out record
	require.NoError(t, Unmarshal(av, &out))
	assert.Equal(t, in, out)
}

func TestMarshalWireShape(t *testing.T) {
	av, err := Marshal(record{Hello: "hi", Other: inner{Hola: "x", Otro: 7}})
	require.NoError(t, err)

	m := av.MapValue()
	require.NotNil(t, m)
	assert.True(t, m["hello"].Equal(String("hi")))
	assert.True(t, m["world"].Equal(Bool(false)))
	assert.True(t, m["fake"].Equal(Null()))
	assert.True(t, m["other"].MapValue()["otro"].Equal(Number("7")))
}

func TestMarshalLargeIntegersKeepPrecision(t *testing.T) {
	type large struct {
		BigPositive int64 `json:"big_positive"`
		BigNegative int64 `json:"big_negative"`
	}
	in := large{BigPositive: 9223372036854775807, BigNegative: -9223372036854775808}

	av, err := Marshal(in)
	require.NoError(t, err)
	assert.True(t, av.MapValue()["big_positive"].Equal(Number("9223372036854775807")))

	var out large
	require.NoError(t, Unmarshal(av, &out))
	assert.Equal(t, in, out)
}

func TestMarshalSerializationError(t *testing.T) {
	// Channels cannot be represented in the JSON model.
	_, err := Marshal(struct{ C chan int }{C: make(chan int)})
	require.Error(t, err)

	var serr *SerializationError
	assert.True(t, errors.As(err, &serr))
	assert.Error(t, errors.Unwrap(serr))
}

func TestUnmarshalDeserializationError(t *testing.T) {
	av := Map(map[string]Value{"hello": Number("42")})

	var out struct {
		Hello []string `json:"hello"`
	}
	err := Unmarshal(av, &out)
	require.Error(t, err)

	var derr *DeserializationError
	assert.True(t, errors.As(err, &derr))
}

func TestMarshalItem(t *testing.T) {
	t.Run("object becomes attribute map", func(t *testing.T) {
		item, err := MarshalItem(inner{Hola: "x", Otro: 5})
		require.NoError(t, err)
		assert.True(t, item["hola"].Equal(String("x")))
		assert.True(t, item["otro"].Equal(Number("5")))

		var out inner
		require.NoError(t, UnmarshalItem(item, &out))
		assert.Equal(t, inner{Hola: "x", Otro: 5}, out)
	})

	t.Run("non-object is rejected", func(t *testing.T) {
		_, err := MarshalItem("just a string")
		var serr *SerializationError
		assert.True(t, errors.As(err, &serr))
	})
}

func TestMarshalWithCustomSerializer(t *testing.T) {
	s := staticSerializer{generic: map[string]any{"k": "v"}}

	av, err := MarshalWith(s, struct{}{})
	require.NoError(t, err)
	assert.True(t, av.Equal(Map(map[string]Value{"k": String("v")})))
}

// staticSerializer returns a fixed generic value regardless of input.
type staticSerializer struct {
	generic any
}

func (s staticSerializer) ToGeneric(any) (any, error) { return s.generic, nil }

func (s staticSerializer) FromGeneric(g any, out any) error {
	return DefaultSerializer().FromGeneric(g, out)
}
