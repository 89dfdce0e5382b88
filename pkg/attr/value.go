// Package attr implements the attribute-value model used by item stores of
// the DynamoDB lineage: a tagged union of string, number-as-text, binary,
// boolean, null, list, map, and the three native set variants, together with
// a pair of total conversion functions between that model and the plain JSON
// data model (nil, bool, string, number, slice, string-keyed map).
package attr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the variant carried by a Value. The constants mirror the
// conventional wire tags of the item-attribute representation.
type Kind string

const (
	KindString    Kind = "S"
	KindNumber    Kind = "N"
	KindBinary    Kind = "B"
	KindBool      Kind = "BOOL"
	KindNull      Kind = "NULL"
	KindMap       Kind = "M"
	KindList      Kind = "L"
	KindStringSet Kind = "SS"
	KindNumberSet Kind = "NS"
	KindBinarySet Kind = "BS"
)

// Value is one attribute value: a closed union with exactly one active
// variant. The zero Value carries an empty kind, which the decoder treats
// like NULL. Values are built through the constructor functions and never
// mutated after construction; callers may share them freely across
// goroutines.
type Value struct {
	kind Kind
	str  string           // S and N payload
	flag bool             // BOOL payload
	bin  []byte           // B payload
	list []Value          // L payload
	m    map[string]Value // M payload
	set  []string         // SS and NS payload
	bset [][]byte         // BS payload
}

// String returns an S value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns an N value carrying the given decimal text verbatim.
// The text is not validated; the decoder's numeric policy deals with
// malformed input.
func Number(text string) Value { return Value{kind: KindNumber, str: text} }

// Binary returns a B value. The byte slice is not copied.
func Binary(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// Bool returns a BOOL value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Null returns a NULL value.
func Null() Value { return Value{kind: KindNull, flag: true} }

// List returns an L value with the given elements in order.
func List(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// Map returns an M value. The map is not copied.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// StringSet returns an SS value with the given members in order.
func StringSet(members ...string) Value { return Value{kind: KindStringSet, set: members} }

// NumberSet returns an NS value whose members are decimal text.
func NumberSet(members ...string) Value { return Value{kind: KindNumberSet, set: members} }

// BinarySet returns a BS value.
func BinarySet(members ...[]byte) Value { return Value{kind: KindBinarySet, bset: members} }

// Kind reports which variant the value carries. An empty kind means the
// value was unmarshalled from a wire tag this package does not recognize;
// Decode treats it the same as NULL.
func (v Value) Kind() Kind { return v.kind }

// StringValue returns the S payload, or "" when the value is not an S.
func (v Value) StringValue() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// NumberValue returns the N payload text, or "" when the value is not an N.
func (v Value) NumberValue() string {
	if v.kind == KindNumber {
		return v.str
	}
	return ""
}

// BoolValue returns the BOOL payload, or false when the value is not a BOOL.
func (v Value) BoolValue() bool { return v.kind == KindBool && v.flag }

// BinaryValue returns the B payload, or nil when the value is not a B.
func (v Value) BinaryValue() []byte {
	if v.kind == KindBinary {
		return v.bin
	}
	return nil
}

// ListValue returns the L payload, or nil when the value is not an L.
func (v Value) ListValue() []Value {
	if v.kind == KindList {
		return v.list
	}
	return nil
}

// MapValue returns the M payload, or nil when the value is not an M.
func (v Value) MapValue() map[string]Value {
	if v.kind == KindMap {
		return v.m
	}
	return nil
}

// SetValue returns the SS or NS members, or nil for other kinds.
func (v Value) SetValue() []string {
	if v.kind == KindStringSet || v.kind == KindNumberSet {
		return v.set
	}
	return nil
}

// BinarySetValue returns the BS members, or nil when the value is not a BS.
func (v Value) BinarySetValue() [][]byte {
	if v.kind == KindBinarySet {
		return v.bset
	}
	return nil
}

// Equal reports structural equality between two values: same kind and
// equal payloads, recursively for lists and maps. Set members compare in
// order; callers that treat sets as unordered should sort first.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString, KindNumber:
		return v.str == o.str
	case KindBool:
		return v.flag == o.flag
	case KindNull:
		return true
	case KindBinary:
		return bytes.Equal(v.bin, o.bin)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, ve := range v.m {
			oe, ok := o.m[k]
			if !ok || !ve.Equal(oe) {
				return false
			}
		}
		return true
	case KindStringSet, KindNumberSet:
		if len(v.set) != len(o.set) {
			return false
		}
		for i := range v.set {
			if v.set[i] != o.set[i] {
				return false
			}
		}
		return true
	case KindBinarySet:
		if len(v.bset) != len(o.bset) {
			return false
		}
		for i := range v.bset {
			if !bytes.Equal(v.bset[i], o.bset[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// GoString renders a compact debug form, e.g. S("x") or L[2].
func (v Value) GoString() string {
	switch v.kind {
	case KindString, KindNumber:
		return fmt.Sprintf("%s(%q)", v.kind, v.str)
	case KindBool:
		return fmt.Sprintf("BOOL(%t)", v.flag)
	case KindNull:
		return "NULL"
	case KindBinary:
		return fmt.Sprintf("B[%d]", len(v.bin))
	case KindList:
		return fmt.Sprintf("L[%d]", len(v.list))
	case KindMap:
		return fmt.Sprintf("M[%d]", len(v.m))
	case KindStringSet, KindNumberSet:
		return fmt.Sprintf("%s[%d]", v.kind, len(v.set))
	case KindBinarySet:
		return fmt.Sprintf("BS[%d]", len(v.bset))
	default:
		return fmt.Sprintf("?%q", string(v.kind))
	}
}

// MarshalJSON renders the conventional single-key wire form:
// {"S":"x"}, {"N":"42"}, {"NULL":true}, {"M":{...}}, and so on.
// Binary payloads use base64 per encoding/json's []byte handling.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.kind {
	case KindString, KindNumber:
		payload = v.str
	case KindBool:
		payload = v.flag
	case KindNull:
		payload = true
	case KindBinary:
		payload = v.bin
	case KindList:
		if v.list == nil {
			payload = []Value{}
		} else {
			payload = v.list
		}
	case KindMap:
		if v.m == nil {
			payload = map[string]Value{}
		} else {
			payload = v.m
		}
	case KindStringSet, KindNumberSet:
		payload = v.set
	case KindBinarySet:
		payload = v.bset
	case "":
		return nil, fmt.Errorf("attr: cannot marshal value with empty kind")
	default:
		return nil, fmt.Errorf("attr: cannot marshal unrecognized kind %q", string(v.kind))
	}
	return json.Marshal(map[string]any{string(v.kind): payload})
}

// UnmarshalJSON parses the single-key wire form. A tag this package does
// not define is preserved as an unrecognized kind with no payload, so a
// later Decode degrades it to nil instead of failing.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("attr: parsing wire value: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("attr: wire value must have exactly one tag, got %d", len(raw))
	}
	var tag string
	var payload json.RawMessage
	for k, p := range raw {
		tag, payload = k, p
	}

	switch Kind(tag) {
	case KindString, KindNumber:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return fmt.Errorf("attr: parsing %s payload: %w", tag, err)
		}
		*v = Value{kind: Kind(tag), str: s}
	case KindBool:
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return fmt.Errorf("attr: parsing BOOL payload: %w", err)
		}
		*v = Bool(b)
	case KindNull:
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return fmt.Errorf("attr: parsing NULL payload: %w", err)
		}
		*v = Null()
	case KindBinary:
		var b []byte
		if err := json.Unmarshal(payload, &b); err != nil {
			return fmt.Errorf("attr: parsing B payload: %w", err)
		}
		*v = Binary(b)
	case KindList:
		var l []Value
		if err := json.Unmarshal(payload, &l); err != nil {
			return fmt.Errorf("attr: parsing L payload: %w", err)
		}
		*v = List(l...)
	case KindMap:
		var m map[string]Value
		if err := json.Unmarshal(payload, &m); err != nil {
			return fmt.Errorf("attr: parsing M payload: %w", err)
		}
		if m == nil {
			m = map[string]Value{}
		}
		*v = Map(m)
	case KindStringSet, KindNumberSet:
		var s []string
		if err := json.Unmarshal(payload, &s); err != nil {
			return fmt.Errorf("attr: parsing %s payload: %w", tag, err)
		}
		*v = Value{kind: Kind(tag), set: s}
	case KindBinarySet:
		var b [][]byte
		if err := json.Unmarshal(payload, &b); err != nil {
			return fmt.Errorf("attr: parsing BS payload: %w", err)
		}
		*v = BinarySet(b...)
	default:
		// Unknown tags from newer wire revisions survive as an
		// unrecognized kind; Decode maps them to nil.
		*v = Value{kind: Kind(tag)}
	}
	return nil
}
