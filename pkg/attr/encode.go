package attr

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encode converts a plain JSON-model value into an attribute value. It is
// total: every input has a representation and no error path exists.
// Unrecognized Go types fall back to their fmt rendering as an S value, so
// callers feeding hand-built structures still get a usable result.
//
// Encode never produces B, SS, NS, or BS. Those variants only enter the
// system from the wire; once decoded and re-encoded they stay lists, maps,
// strings, and numbers.
func Encode(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case json.Number:
		return Number(x.String())
	case int64:
		return Number(FormatInt(x))
	case int:
		return Number(FormatInt(int64(x)))
	case int32:
		return Number(FormatInt(int64(x)))
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return Number(strconv.FormatUint(x, 10))
	case float64:
		return Number(FormatFloat(x))
	case float32:
		return Number(FormatFloat(float64(x)))
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = Encode(e)
		}
		return List(elems...)
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			m[k] = Encode(e)
		}
		return Map(m)
	default:
		return String(fmt.Sprint(x))
	}
}

// FormatInt is the canonical decimal rendering for integers. Every place
// in this module that turns an integer into number text goes through here.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat is the canonical decimal rendering for floats. The output
// always carries a fraction marker so the decoder's numeric policy routes
// it back through the float branch, and it reparses to the identical
// float64 via strconv.ParseFloat.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsNaN(f) && !math.IsInf(f, 0) {
		s += ".0"
	}
	return s
}
