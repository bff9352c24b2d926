package awk

import (
	"strconv"
	"strings"
)

// Kind represents the type of a field value.
type Kind uint8

const (
	KindAbsent Kind = iota // No field at this position
	KindStr                // String value
	KindNum                // Numeric value
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindStr:
		return "str"
	case KindNum:
		return "num"
	default:
		return "unknown"
	}
}

// Value represents a single field value.
// Uses tagged union pattern; values are passed by value (24 bytes on 64-bit
// systems) and are comparable with ==.
//
// The zero Value is Absent: the marker a record carries at positions the
// input line did not provide. Absent is distinct from the empty string,
// which is a real field that happens to be empty.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Constructors

// Absent returns the explicit absent marker.
func Absent() Value {
	return Value{}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Num creates a numeric value.
func Num(n float64) Value {
	return Value{kind: KindNum, num: n}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent returns true if the value is the absent marker.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Conversions

// Str returns the string representation of the value.
// Numbers format with the shortest representation that round-trips;
// absent values yield the empty string.
func (v Value) Str() string {
	if v.kind == KindNum {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// Num returns the numeric representation of the value.
// Strings parse with strconv syntax, ignoring surrounding whitespace;
// a string that is not entirely a number yields 0, as does absent.
func (v Value) Num() float64 {
	switch v.kind {
	case KindNum:
		return v.num
	case KindStr:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the truthiness of the value: non-empty for strings,
// non-zero for numbers, false for absent.
func (v Value) Bool() bool {
	switch v.kind {
	case KindNum:
		return v.num != 0
	case KindStr:
		return v.str != ""
	default:
		return false
	}
}

// String implements fmt.Stringer with a display form: the string itself,
// the formatted number, or "<absent>".
func (v Value) String() string {
	if v.kind == KindAbsent {
		return "<absent>"
	}
	return v.Str()
}
