package attr

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FallbackPolicy selects what the decoder emits for N payloads that do not
// parse as a 64-bit integer or a float: text without decimal syntax, or
// magnitudes outside both ranges.
type FallbackPolicy int

const (
	// PolicyLenient keeps the original text as a plain string. Only the
	// type tag degrades; the content survives. Re-encoding such a value
	// yields an S, not the N it came from.
	PolicyLenient FallbackPolicy = iota

	// PolicyStrict discards the malformed text and emits nil.
	PolicyStrict
)

// Decode converts an attribute value into the plain JSON model using the
// lenient numeric fallback. It is total: malformed number text and
// unrecognized variants degrade locally instead of failing.
//
// The three set variants have no JSON-model counterpart and flatten to
// ordered slices, so a set does not survive a decode/encode round trip.
// A B payload expands to a slice of byte values as numbers.
func Decode(v Value) any {
	return DecodeWithPolicy(v, PolicyLenient)
}

// DecodeWithPolicy is Decode with an explicit numeric fallback policy.
func DecodeWithPolicy(v Value, policy FallbackPolicy) any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.flag
	case KindBinary:
		bytes := make([]any, len(v.bin))
		for i, b := range v.bin {
			bytes[i] = int64(b)
		}
		return bytes
	case KindMap:
		m := make(map[string]any, len(v.m))
		for k, e := range v.m {
			m[k] = DecodeWithPolicy(e, policy)
		}
		return m
	case KindList:
		elems := make([]any, len(v.list))
		for i, e := range v.list {
			elems[i] = DecodeWithPolicy(e, policy)
		}
		return elems
	case KindNumber:
		return decodeNumber(v.str, policy)
	case KindNumberSet:
		elems := make([]any, len(v.set))
		for i, n := range v.set {
			elems[i] = decodeNumber(n, policy)
		}
		return elems
	case KindStringSet:
		elems := make([]any, len(v.set))
		for i, s := range v.set {
			elems[i] = s
		}
		return elems
	case KindBinarySet:
		elems := make([]any, len(v.bset))
		for i, b := range v.bset {
			elems[i] = DecodeWithPolicy(Binary(b), policy)
		}
		return elems
	default:
		// NULL and any variant this package does not recognize.
		return nil
	}
}

// decodeNumber applies the numeric policy to N text: a '.' routes through
// the float parser, anything else through the integer parser, and a parse
// failure on either path invokes the fallback policy.
func decodeNumber(text string, policy FallbackPolicy) any {
	if strings.Contains(text, ".") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
		return fallback(text, policy)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	return fallback(text, policy)
}

func fallback(text string, policy FallbackPolicy) any {
	logger().Debug("number text did not parse, applying fallback",
		zap.String("text", text),
		zap.Bool("strict", policy == PolicyStrict))
	if policy == PolicyStrict {
		return nil
	}
	return text
}
