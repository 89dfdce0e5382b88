package attr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serializer is the external capability that moves typed records in and out
// of the plain JSON model. The codec assumes nothing about how it is
// implemented beyond these two operations; the default is a JSON
// round trip, but schema-driven or generated implementations satisfy the
// same contract.
type Serializer interface {
	// ToGeneric converts a typed value into the JSON model
	// (nil, bool, string, json.Number, []any, map[string]any).
	ToGeneric(v any) (any, error)

	// FromGeneric populates out (a non-nil pointer) from a JSON-model
	// value, failing when the shape does not match out's type.
	FromGeneric(g any, out any) error
}

// SerializationError reports that the serializer could not represent a
// typed value in the JSON model. The encoder itself never fails; this is
// the only failure mode on the write path.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("attr: serializing value: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError reports that a decoded value's shape does not match
// the target type: a missing field, a type mismatch, an unexpected variant.
// The decoder itself never fails; this is the only failure mode on the
// read path.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("attr: deserializing value: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// jsonSerializer is the default Serializer: a JSON marshal/unmarshal round
// trip. Numbers come back as json.Number so 64-bit integers keep their
// precision through the generic model.
type jsonSerializer struct{}

func (jsonSerializer) ToGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var g any
	if err := dec.Decode(&g); err != nil {
		return nil, err
	}
	return g, nil
}

func (jsonSerializer) FromGeneric(g any, out any) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// DefaultSerializer returns the JSON-based Serializer used by Marshal and
// Unmarshal.
func DefaultSerializer() Serializer { return jsonSerializer{} }

// Marshal converts a typed record to an attribute value through the
// default serializer. It fails only with *SerializationError.
func Marshal(v any) (Value, error) {
	return MarshalWith(DefaultSerializer(), v)
}

// MarshalWith converts a typed record to an attribute value through the
// given serializer.
func MarshalWith(s Serializer, v any) (Value, error) {
	g, err := s.ToGeneric(v)
	if err != nil {
		return Value{}, &SerializationError{Err: err}
	}
	return Encode(g), nil
}

// Unmarshal decodes an attribute value and populates out through the
// default serializer. It fails only with *DeserializationError.
func Unmarshal(v Value, out any) error {
	return UnmarshalWith(DefaultSerializer(), v, out)
}

// UnmarshalWith decodes an attribute value and populates out through the
// given serializer. Decoding uses the lenient numeric fallback.
func UnmarshalWith(s Serializer, v Value, out any) error {
	g := Decode(v)
	if err := s.FromGeneric(g, out); err != nil {
		return &DeserializationError{Err: err}
	}
	return nil
}

// MarshalItem converts a typed record into a top-level attribute map, the
// shape item stores use for a whole item. The record must serialize to a
// JSON object.
func MarshalItem(v any) (map[string]Value, error) {
	av, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	m := av.MapValue()
	if m == nil {
		return nil, &SerializationError{
			Err: fmt.Errorf("value of type %T is not an object", v),
		}
	}
	return m, nil
}

// UnmarshalItem populates out from a top-level attribute map.
func UnmarshalItem(item map[string]Value, out any) error {
	return Unmarshal(Map(item), out)
}
