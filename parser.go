package awk

import "iter"

// Parser runs the configured four-stage pipeline over an input.
//
// A Parser is cheap to construct and holds no resources; each call to
// Parse opens a fresh pass inside the returned sequence and closes it
// when the iteration ends, whether the consumer drains the sequence,
// breaks out early, or panics.
//
// The stages run in a fixed order for every record:
//
//  1. record pre-filter (raw paired record, before any field work)
//  2. field pre-filter, field map, field post-filter, per field in order
//  3. record map
//  4. record post-filter
//
// Record hooks receive the physical line number and the raw field count
// of the record, regardless of what earlier stages dropped.
type Parser struct {
	filename string
	config   *Config
}

// NewParser returns a Parser over the named file.
// A nil config is equivalent to the zero Config.
func NewParser(filename string, config *Config) *Parser {
	return &Parser{filename: filename, config: config.withDefaults()}
}

// Parse returns a lazy, forward-only pass over the input. Records
// materialize one at a time as the consumer pulls them; no line is
// read ahead of demand.
//
// A failure to open the input or a read error surfaces as a final
// (nil, error) element. The sequence is single-use: once consumed or
// abandoned it yields nothing more and the underlying stream is
// closed. Call Parse again for a fresh, independent pass.
func (p *Parser) Parse() iter.Seq2[*Record, error] {
	var done bool
	return func(yield func(*Record, error) bool) {
		if done {
			return
		}
		done = true

		r := NewReader(p.filename, p.config)
		if err := r.Open(); err != nil {
			yield(nil, err)
			return
		}
		defer r.Close()

		for r.Scan() {
			rec, ok := p.transform(r)
			if !ok {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := r.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// transform runs stages two through four on the reader's current record.
func (p *Parser) transform(r *Reader) (*Record, bool) {
	rec := r.Record()
	nr, nf := r.NR(), r.NF()

	if p.config.FieldMapFunc != nil || p.config.FieldPostFilter != nil {
		rec = p.mapFields(rec)
	}
	if m := p.config.RecordMapFunc; m != nil {
		rec = m(nr, nf, rec)
		if rec == nil {
			return nil, false
		}
	}
	if post := p.config.RecordPostFilter; post != nil && !post(nr, nf, rec) {
		return nil, false
	}
	return rec, true
}

// mapFields applies the field map and field post-filter in key order.
// The post-filter sees mapped values.
func (p *Parser) mapFields(rec *Record) *Record {
	mapf := p.config.FieldMapFunc
	post := p.config.FieldPostFilter
	keys := make([]string, 0, len(rec.keys))
	vals := make([]Value, 0, len(rec.vals))
	for i, k := range rec.keys {
		v := rec.vals[i]
		if mapf != nil {
			v = mapf(k, v)
		}
		if post != nil && !post(k, v) {
			continue
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return newRecord(keys, vals)
}
