package awk

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Record is one parsed line: an ordered sequence of fields addressable by
// position (1-based) and by key. In header mode keys come from the header
// line; without a header fields carry positional keys "$1".."$N", which
// Get accepts in both modes.
//
// When the input repeats a key, keyed lookup resolves to the last
// occurrence while iteration and positional access still visit every field.
type Record struct {
	keys []string
	vals []Value
	idx  map[string]int
}

// NewRecord builds a record from parallel keys and values.
// The slices pair positionally the same way input lines pair with a
// header: missing values are padded with Absent, excess values are
// dropped. The record takes ownership of both slices.
func NewRecord(keys []string, values []Value) *Record {
	vals := values
	switch {
	case len(vals) < len(keys):
		padded := make([]Value, len(keys))
		copy(padded, vals)
		vals = padded
	case len(vals) > len(keys):
		vals = vals[:len(keys)]
	}
	return newRecord(keys, vals)
}

func newRecord(keys []string, vals []Value) *Record {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i // duplicate keys: last occurrence wins keyed lookup
	}
	return &Record{keys: keys, vals: vals, idx: idx}
}

// NF returns the number of fields the record holds.
func (r *Record) NF() int {
	return len(r.keys)
}

// Keys returns the field keys in order. The slice is a copy.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Values returns the field values in order. The slice is a copy.
func (r *Record) Values() []Value {
	return slices.Clone(r.vals)
}

// Has reports whether the record holds a field with the given key.
func (r *Record) Has(key string) bool {
	_, ok := r.idx[key]
	return ok
}

// Get returns the value for key. Keys are header names or positional
// "$N" forms; a header key spelled like "$N" wins over the positional
// reading. A padded field returns Absent with no error; a key the
// record does not hold returns Absent and a FieldError.
func (r *Record) Get(key string) (Value, error) {
	if i, ok := r.idx[key]; ok {
		return r.vals[i], nil
	}
	if n, ok := positionalIndex(key); ok && n <= len(r.vals) {
		return r.vals[n-1], nil
	}
	return Value{}, &FieldError{Key: key}
}

// positionalIndex parses a canonical positional key such as "$3".
// Leading zeros and "$0" do not parse; field numbers start at 1.
func positionalIndex(key string) (int, bool) {
	if len(key) < 2 || key[0] != '$' || key[1] == '0' {
		return 0, false
	}
	for i := 1; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Field returns the value at the 1-based position n.
// Positions outside [1, NF] return Absent and a FieldError.
func (r *Record) Field(n int) (Value, error) {
	if n < 1 || n > len(r.vals) {
		return Value{}, &FieldError{Key: fmt.Sprintf("$%d", n)}
	}
	return r.vals[n-1], nil
}

// at returns the value at the 1-based position n, Absent when out of range.
func (r *Record) at(n int) Value {
	if n < 1 || n > len(r.vals) {
		return Value{}
	}
	return r.vals[n-1]
}

// Set stores value under key: an existing key is overwritten in place,
// a new key is appended as the last field.
func (r *Record) Set(key string, value Value) {
	if i, ok := r.idx[key]; ok {
		r.vals[i] = value
		return
	}
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, value)
	r.idx[key] = len(r.keys) - 1
}

// All returns an iterator over (key, value) pairs in field order.
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, k := range r.keys {
			if !yield(k, r.vals[i]) {
				return
			}
		}
	}
}

// Fields returns an iterator over values in field order.
func (r *Record) Fields() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range r.vals {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the record for debugging: Record(a: 1, b: 2).
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Record(")
	for i, k := range r.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(r.vals[i].String())
	}
	b.WriteByte(')')
	return b.String()
}
