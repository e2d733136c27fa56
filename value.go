package valfmt

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxDepth is the deepest nesting any encoder will descend into before
// failing with [ErrDepthExceeded].
const MaxDepth = 1000

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON-like value. The zero Value is null.
//
// Constructors copy their arguments, so a Value can never reference itself
// and is safe to share between goroutines.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []Value
	members []Member
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Field is shorthand for Member{Key: key, Value: v}.
func Field(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. Integers and floats share this variant.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array holding a copy of items.
func Array(items ...Value) Value {
	if len(items) == 0 {
		return Value{kind: KindArray}
	}
	return Value{kind: KindArray, items: slices.Clone(items)}
}

// Object returns an object with members in the given order. A repeated key
// overwrites the earlier value but keeps the earlier position.
func Object(members ...Member) Value {
	if len(members) == 0 {
		return Value{kind: KindObject}
	}
	out := make([]Member, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := index[m.Key]; ok {
			out[i].Value = m.Value
			continue
		}
		index[m.Key] = len(out)
		out = append(out, m)
	}
	return Value{kind: KindObject, members: out}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v, or false for other kinds.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the number held by v, or 0 for other kinds.
func (v Value) AsNumber() float64 { return v.n }

// AsString returns the string held by v, or "" for other kinds.
func (v Value) AsString() string { return v.s }

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Items returns a copy of the array items. It is nil for other kinds.
func (v Value) Items() []Value { return slices.Clone(v.items) }

// Members returns a copy of the object members in order.
func (v Value) Members() []Member { return slices.Clone(v.members) }

// Keys returns the object keys in insertion order.
func (v Value) Keys() []string {
	if len(v.members) == 0 {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get looks up key in an object.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Text returns the textual form of a scalar: "" for null, true/false,
// the shortest decimal form of a number, or the string itself. Containers
// return "".
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	default:
		return ""
	}
}

func (v Value) isContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// formatNumber renders integers without a fraction and switches to exponent
// notation outside [1e-6, 1e21).
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
