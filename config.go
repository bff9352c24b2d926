package awk

import "io"

// FieldFilter decides whether a field survives a filtering stage.
// It receives the field's key and current value.
type FieldFilter func(key string, value Value) bool

// FieldMap transforms a single field value. It runs between the field
// pre-filter and the field post-filter.
type FieldMap func(key string, value Value) Value

// RecordFilter decides whether a whole record survives a filtering stage.
// nr is the 1-based physical line number of the record in the input and
// nf its raw field count, both independent of earlier filtering.
type RecordFilter func(nr, nf int, rec *Record) bool

// RecordMap transforms a whole record. Returning nil drops the record.
// nr and nf are as for RecordFilter.
type RecordMap func(nr, nf int, rec *Record) *Record

// Config holds configuration options for reading and parsing.
// The zero value reads headerless whitespace-separated records with no
// filtering. A nil *Config is equivalent. Configs are copied at
// construction: changing one after NewReader/NewParser/NewColumn has no
// effect on the constructed object.
type Config struct {
	// Separator selects how lines are cut into fields
	// (default: Whitespace, splitting on runs of whitespace).
	Separator Separator

	// Header treats the first line of the input as field keys.
	// Subsequent lines pair positionally with those keys: short lines
	// are padded with absent values, long lines are truncated to the
	// key count. Without Header, fields get positional keys "$1".."$N".
	Header bool

	// Ordered asserts that records preserve header order when iterated.
	// Records always do; the flag makes the guarantee explicit in the
	// configuration and is only meaningful with Header set. Setting it
	// without Header is a ConfigError.
	Ordered bool

	// MaxLines caps the number of physical data lines consumed.
	// Lines skipped by filters still count. nil means unlimited;
	// zero reads nothing. The header line is not counted.
	MaxLines *int

	// Input overrides the filename: when set, records are read from
	// this reader and the filename is ignored. Ownership passes to the
	// reading scope, which closes it on exit if it implements io.Closer.
	// An Input can serve only one pass.
	Input io.Reader

	// POSIXRegex enables POSIX leftmost-longest matching for Pattern
	// separators. When true (default), uses POSIX ERE semantics.
	// When false, uses leftmost-first matching (faster, Perl-like).
	POSIXRegex *bool

	// FieldPreFilter drops fields before any transformation.
	// Dropped fields are invisible to the rest of the pipeline.
	FieldPreFilter FieldFilter

	// FieldMapFunc transforms each surviving field value.
	FieldMapFunc FieldMap

	// FieldPostFilter drops fields after transformation, seeing the
	// mapped values.
	FieldPostFilter FieldFilter

	// RecordPreFilter drops whole records before field-level work.
	// It sees the raw paired record; skipped lines still advance nr.
	RecordPreFilter RecordFilter

	// RecordMapFunc transforms each surviving record after field work.
	RecordMapFunc RecordMap

	// RecordPostFilter drops records after transformation, seeing the
	// mapped record.
	RecordPostFilter RecordFilter
}

// withDefaults returns a private copy of the config, treating nil as the
// zero config.
func (c *Config) withDefaults() *Config {
	out := &Config{}
	if c != nil {
		*out = *c
	}
	return out
}

// posix reports the effective pattern matching mode.
func (c *Config) posix() bool {
	return c.POSIXRegex == nil || *c.POSIXRegex
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.Ordered && !c.Header {
		return &ConfigError{Reason: "Ordered requires Header"}
	}
	if c.MaxLines != nil && *c.MaxLines < 0 {
		return &ConfigError{Reason: "MaxLines must not be negative"}
	}
	return nil
}
