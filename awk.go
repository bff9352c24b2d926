package awk

import "iter"

// Version is the library version string.
const Version = "0.1.0"

// Records opens the named file and returns the configured parse pass.
// This is a convenience for one-off iteration; for repeated passes over
// the same input, construct a Parser once and call Parse per pass.
//
// Example:
//
//	for rec, err := range awk.Records("access.log", nil) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec)
//	}
func Records(filename string, config *Config) iter.Seq2[*Record, error] {
	return NewParser(filename, config).Parse()
}

// Collect runs a full pass over the named file and returns every record.
//
// Example:
//
//	recs, err := awk.Collect("data.tsv", &awk.Config{Separator: awk.Tab, Header: true})
func Collect(filename string, config *Config) ([]*Record, error) {
	var recs []*Record
	for rec, err := range Records(filename, config) {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Split cuts a single line into fields using sep, with default matching
// options. It is the tokenizer behind Reader, exposed directly.
//
// Example:
//
//	fields, err := awk.Split("a  b c", awk.Whitespace)
//	// fields: ["a", "b", "c"]
func Split(line string, sep Separator) ([]string, error) {
	tok, err := sep.compile(true)
	if err != nil {
		return nil, err
	}
	return tok.Split(line), nil
}
