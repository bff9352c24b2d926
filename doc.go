// Package awk provides streaming, record-oriented text parsing in the
// spirit of AWK.
//
// Input is consumed line by line; each line is split into fields by a
// configurable separator and paired with keys, either positional
// ("$1".."$N") or taken from a header line. Records flow through a
// four-stage filter/transform pipeline and come out as lazy sequences,
// so arbitrarily large inputs parse in constant memory.
//
// Features:
//   - Literal and regular-expression separators (coregex engine,
//     optional POSIX leftmost-longest matching)
//   - Header and headerless field naming
//   - Per-field and per-record filters and maps
//   - Column-oriented views over any input
//   - Transparent decompression of .gz, .bz2, .zst and .xz files
//
// # Quick Start
//
// Iterate records of a whitespace-separated file:
//
//	for rec, err := range awk.Records("data.txt", nil) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    v, _ := rec.Get("$1")
//	    fmt.Println(v)
//	}
//
// With a header and a separator:
//
//	cfg := &awk.Config{Separator: awk.Tab, Header: true}
//	for rec, err := range awk.Records("metrics.tsv", cfg) {
//	    // fields are addressable by header key
//	}
//
// # Pipeline
//
// The [Config] hooks run in a fixed order on every line: the record
// pre-filter sees the raw paired record before any field-level work,
// then each field passes through pre-filter, map and post-filter, then
// the whole record through map and post-filter. Record hooks always
// receive the physical line number and the raw field count.
//
//	cfg := &awk.Config{
//	    Header: true,
//	    FieldMapFunc: func(key string, v awk.Value) awk.Value {
//	        return awk.Num(v.Num() * 2)
//	    },
//	    RecordPostFilter: func(nr, nf int, rec *awk.Record) bool {
//	        return nr%2 == 0
//	    },
//	}
//
// # Ragged Rows
//
// With a header, lines pair positionally with the header keys: short
// lines are padded with [Absent] values and long lines are truncated to
// the key count. Absent is a distinct marker, not the empty string.
//
// # Error Handling
//
// Lifecycle conditions are sentinel errors ([ErrNotOpen],
// [ErrAlreadyOpen], [ErrMissingHeader]); bad configurations surface as
// [ConfigError] and missing fields as [FieldError]. Read failures wrap
// the underlying I/O error.
//
// # Thread Safety
//
// Parsers and Columns are safe for concurrent use; every Parse call and
// column access runs an independent pass. A Reader is a single stream
// and must be confined to one goroutine.
package awk
