package valueobjects

import (
	"fmt"
	"strconv"
)

// ValueKind enumerates the types an attribute value can hold
type ValueKind string

const (
	KindString ValueKind = "string"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
	KindBool   ValueKind = "bool"
)

// Value is an immutable variant attribute value. Equality is strict: two
// values are equal only when they have the same kind and the same payload,
// so an int 25 never matches the string "25".
type Value struct {
	kind ValueKind
	str  string
	i    int64
	f    float64
	b    bool
}

// StringValue creates a string attribute value
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue creates an integer attribute value
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue creates a float attribute value
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// BoolValue creates a boolean attribute value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ValueOf converts a dynamically typed value into a Value. Returns an
// error for unsupported types rather than guessing a representation.
func ValueOf(v interface{}) (Value, error) {
	switch t := v.(type) {
	case string:
		return StringValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case float64:
		return FloatValue(t), nil
	case bool:
		return BoolValue(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, fmt.Errorf("unsupported attribute value type %T", v)
	}
}

// Kind returns the value's kind
func (v Value) Kind() ValueKind {
	return v.kind
}

// Equals reports strict equality: same kind, same payload
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	default:
		return false
	}
}

// String returns a printable representation of the value
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the value as a dynamically typed Go value, for
// serialization boundaries
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Attributes is a free-form attribute mapping attached to users and
// denormalized onto graph nodes
type Attributes map[string]Value

// Get looks up an attribute value
func (a Attributes) Get(key string) (Value, bool) {
	v, ok := a[key]
	return v, ok
}

// Clone returns an independent copy of the mapping
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	clone := make(Attributes, len(a))
	for k, v := range a {
		clone[k] = v
	}
	return clone
}
