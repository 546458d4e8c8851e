package scval

import "math/big"

// Kind enumerates the native shapes a decoded tagged value can take.
type Kind int

const (
	// KindAbsent marks a value that failed to decode.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindInt
	KindString
	KindBytes
	KindList
	KindMap
)

// Value is the closed sum type produced by Decode. Extraction rules match
// on Kind instead of probing with runtime type assertions.
type Value struct {
	kind    Kind
	boolVal bool
	intVal  *big.Int
	strVal  string
	bytVal  []byte
	list    []Value
	entries []MapEntry
}

// MapEntry is one key/value pair of a decoded ordered map. Keys are always
// decoded symbols or strings.
type MapEntry struct {
	Key string
	Val Value
}

// Absent returns the decode-failure value.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns the decoded void value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a native bool.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int wraps an arbitrary-precision integer. A nil input is Absent.
func Int(i *big.Int) Value {
	if i == nil {
		return Absent()
	}
	return Value{kind: KindInt, intVal: i}
}

// Str wraps a native string.
func Str(s string) Value { return Value{kind: KindString, strVal: s} }

// Bytes wraps a byte sequence.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytVal: b} }

// List wraps an ordered list of values.
func List(vals []Value) Value { return Value{kind: KindList, list: vals} }

// Map wraps an ordered key/value map.
func Map(entries []MapEntry) Value { return Value{kind: KindMap, entries: entries} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value failed to decode.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsBool returns the bool payload if the value is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// AsInt returns the integer payload if the value is an integer.
func (v Value) AsInt() (*big.Int, bool) {
	if v.kind != KindInt {
		return nil, false
	}
	return v.intVal, true
}

// AsString returns the string payload if the value is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.strVal, true
}

// AsBytes returns the byte payload if the value is a byte sequence.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytVal, true
}

// AsList returns the element slice if the value is a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsMap returns the ordered entries if the value is a map.
func (v Value) AsMap() ([]MapEntry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.entries, true
}

// MapGet looks up a key in a decoded map. The second result is false when
// the value is not a map or the key is missing.
func (v Value) MapGet(key string) (Value, bool) {
	if v.kind != KindMap {
		return Absent(), false
	}
	for _, entry := range v.entries {
		if entry.Key == key {
			return entry.Val, true
		}
	}
	return Absent(), false
}
