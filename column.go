package awk

import (
	"fmt"
	"iter"
)

// Column provides column-oriented views over an input. Each method runs
// its own pass through the full Parser pipeline, so the configured
// filters and maps shape what the columns contain.
type Column struct {
	filename string
	config   *Config
}

// NewColumn returns a Column over the named file.
// A nil config is equivalent to the zero Config.
func NewColumn(filename string, config *Config) *Column {
	return &Column{filename: filename, config: config.withDefaults()}
}

// Values materializes the column at the 1-based position n across all
// records of a pass. Records without that position contribute Absent,
// so the result always has one element per record.
func (c *Column) Values(n int) ([]Value, error) {
	if n < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("column position %d is not 1-based", n)}
	}
	var out []Value
	for rec, err := range NewParser(c.filename, c.config).Parse() {
		if err != nil {
			return nil, err
		}
		out = append(out, rec.at(n))
	}
	return out, nil
}

// Slice materializes the half-open position range [from, to) across all
// records of a pass, one rectangular []Value row per record with Absent
// at positions a record lacks. Positions are 1-based.
//
// Slicing is positional and therefore only available without a header;
// with Header set it returns a ConfigError.
func (c *Column) Slice(from, to int) ([][]Value, error) {
	if c.config.Header {
		return nil, &ConfigError{Reason: "column slices are positional and require headerless input"}
	}
	if from < 1 || to < from {
		return nil, &ConfigError{Reason: fmt.Sprintf("column range [%d, %d) is not valid", from, to)}
	}
	var out [][]Value
	for rec, err := range NewParser(c.filename, c.config).Parse() {
		if err != nil {
			return nil, err
		}
		row := make([]Value, 0, to-from)
		for n := from; n < to; n++ {
			row = append(row, rec.at(n))
		}
		out = append(out, row)
	}
	return out, nil
}

// Get returns a lazy sequence yielding, for each record, the values of
// the requested keys in the order given, Absent where a record lacks a
// key. The pass narrows its field work to the requested keys before the
// record-level hooks run. Each range over the sequence is an
// independent pass.
func (c *Column) Get(keys ...string) iter.Seq2[[]Value, error] {
	cfg := *c.config
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	user := cfg.FieldPreFilter
	cfg.FieldPreFilter = func(key string, value Value) bool {
		if !want[key] {
			return false
		}
		return user == nil || user(key, value)
	}
	p := NewParser(c.filename, &cfg)
	return func(yield func([]Value, error) bool) {
		for rec, err := range p.Parse() {
			if err != nil {
				yield(nil, err)
				return
			}
			row := make([]Value, len(keys))
			for i, k := range keys {
				row[i], _ = rec.Get(k)
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}
