package awk

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/SimoneBronzini/awk/internal/tokenizer"
)

// maxLineBytes caps the length of a single input line.
const maxLineBytes = 1 << 20

// Reader streams records from a single input, one line at a time.
//
// A Reader is created closed. Open moves it to the open state, Scan
// advances through data lines until the input ends or MaxLines is
// reached, and Close returns it to the initial state, after which the
// same Reader can run a fresh pass. The loop follows bufio.Scanner:
//
//	r := awk.NewReader("data.txt", nil)
//	if err := r.Open(); err != nil {
//		return err
//	}
//	defer r.Close()
//	for r.Scan() {
//		rec := r.Record()
//		// ...
//	}
//	if err := r.Err(); err != nil {
//		return err
//	}
//
// Line terminators ("\n", "\r\n") are stripped before tokenization;
// other surrounding whitespace is preserved. The Reader applies the
// configured record and field pre-filters; the remaining pipeline
// stages run in [Parser].
type Reader struct {
	filename string
	config   *Config

	tok        *tokenizer.Tokenizer
	src        io.ReadCloser
	scanner    *bufio.Scanner
	headerKeys []string

	rec     *Record
	fields  []string
	posKeys []string
	nr      int
	nf      int
	err     error
	open    bool
}

// NewReader returns a closed Reader over the named file.
// A nil config is equivalent to the zero Config.
func NewReader(filename string, config *Config) *Reader {
	return &Reader{filename: filename, config: config.withDefaults()}
}

// Open validates the configuration, acquires the input and, in header
// mode, consumes the header line. The header line never counts toward
// NR or MaxLines. Opening an empty input in header mode fails with
// ErrMissingHeader; opening an open Reader fails with ErrAlreadyOpen.
func (r *Reader) Open() error {
	if r.open {
		return ErrAlreadyOpen
	}
	if err := r.config.validate(); err != nil {
		return err
	}
	tok, err := r.config.Separator.compile(r.config.posix())
	if err != nil {
		return err
	}
	src, err := r.acquire()
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var headerKeys []string
	if r.config.Header {
		if !scanner.Scan() {
			err := scanner.Err()
			src.Close()
			if err != nil {
				return fmt.Errorf("read header from %s: %w", r.name(), err)
			}
			return ErrMissingHeader
		}
		hdr := tok.Split(scanner.Text())
		// clip capacity so records appending keys reallocate instead of
		// writing into the shared slice
		headerKeys = hdr[:len(hdr):len(hdr)]
	}

	r.tok = tok
	r.src = src
	r.scanner = scanner
	r.headerKeys = headerKeys
	r.open = true
	r.err = nil
	r.nr = 0
	return nil
}

// acquire resolves the input source: an injected reader wins over the
// filename.
func (r *Reader) acquire() (io.ReadCloser, error) {
	if in := r.config.Input; in != nil {
		if rc, ok := in.(io.ReadCloser); ok {
			return rc, nil
		}
		return io.NopCloser(in), nil
	}
	return openInput(r.filename)
}

func (r *Reader) name() string {
	if r.config.Input != nil {
		return "input"
	}
	return r.filename
}

// Scan advances to the next record that survives the pre-filters.
// It returns false when the input is exhausted, MaxLines is reached,
// an error occurs, or the Reader is not open; Err separates the error
// cases from plain exhaustion.
//
// Every physical data line consumed advances NR, including lines the
// record pre-filter skips.
func (r *Reader) Scan() bool {
	if !r.open {
		r.err = ErrNotOpen
		return false
	}
	for {
		if r.config.MaxLines != nil && r.nr >= *r.config.MaxLines {
			return false
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil && r.err == nil {
				r.err = fmt.Errorf("read %s: %w", r.name(), err)
			}
			return false
		}
		r.nr++
		tokens := r.tok.Split(r.scanner.Text())
		keys, vals, rawNF := r.pair(tokens)

		var rec *Record
		if pre := r.config.RecordPreFilter; pre != nil {
			rec = newRecord(keys, vals)
			if !pre(r.nr, rawNF, rec) {
				continue
			}
		}
		if keep := r.config.FieldPreFilter; keep != nil {
			keys, vals = filterFields(keep, keys, vals)
			rec = nil
		}
		if rec == nil {
			rec = newRecord(keys, vals)
		}

		r.rec = rec
		r.fields = tokens
		r.nf = rawNF
		return true
	}
}

// pair matches the line's tokens with their keys.
//
// In header mode the tokens pair positionally with the header keys:
// short lines pad with Absent, long lines lose their excess tokens, and
// the raw field count is the key count. Without a header every token
// gets a positional "$N" key and the raw count is the token count.
func (r *Reader) pair(tokens []string) (keys []string, vals []Value, rawNF int) {
	if r.headerKeys != nil {
		keys = r.headerKeys
		vals = make([]Value, len(keys))
		for i := 0; i < len(keys) && i < len(tokens); i++ {
			vals[i] = Str(tokens[i])
		}
		return keys, vals, len(keys)
	}
	keys = r.positionalKeys(len(tokens))
	vals = make([]Value, len(tokens))
	for i, tok := range tokens {
		vals[i] = Str(tok)
	}
	return keys, vals, len(tokens)
}

// positionalKeys returns "$1".."$n", growing a shared cache of the key
// strings. The returned slice is capacity-clipped for the same reason
// as the header keys.
func (r *Reader) positionalKeys(n int) []string {
	for len(r.posKeys) < n {
		r.posKeys = append(r.posKeys, "$"+strconv.Itoa(len(r.posKeys)+1))
	}
	return r.posKeys[:n:n]
}

func filterFields(keep FieldFilter, keys []string, vals []Value) ([]string, []Value) {
	outKeys := make([]string, 0, len(keys))
	outVals := make([]Value, 0, len(vals))
	for i, k := range keys {
		if keep(k, vals[i]) {
			outKeys = append(outKeys, k)
			outVals = append(outVals, vals[i])
		}
	}
	return outKeys, outVals
}

// Record returns the current record. Valid after a true Scan.
func (r *Reader) Record() *Record {
	return r.rec
}

// Fields returns the raw tokens of the current line, before pairing
// and filtering. The slice is a copy.
func (r *Reader) Fields() []string {
	return slices.Clone(r.fields)
}

// Keys returns the header keys, nil when reading without a header.
func (r *Reader) Keys() []string {
	if r.headerKeys == nil {
		return nil
	}
	return slices.Clone(r.headerKeys)
}

// NR returns the number of physical data lines consumed so far.
func (r *Reader) NR() int {
	return r.nr
}

// NF returns the raw field count of the current record, before field
// filtering.
func (r *Reader) NF() int {
	return r.nf
}

// Err returns the first error encountered while scanning, or the
// lifecycle sentinel if Scan was called on a closed Reader.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the input and resets the Reader to its initial state.
// Closing a closed Reader is a no-op.
func (r *Reader) Close() error {
	if !r.open {
		return nil
	}
	r.open = false
	err := r.src.Close()
	r.src = nil
	r.scanner = nil
	r.tok = nil
	r.headerKeys = nil
	r.rec = nil
	r.fields = nil
	r.nr, r.nf = 0, 0
	r.err = nil
	return err
}
