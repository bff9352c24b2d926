package awk_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/SimoneBronzini/awk"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectHeaderPairing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, recs []*awk.Record)
	}{
		{
			name:  "short row pads with absent",
			input: "a b c\n1 2\n",
			check: func(t *testing.T, recs []*awk.Record) {
				if v, _ := recs[0].Get("a"); v != awk.Str("1") {
					t.Errorf("a = %v", v)
				}
				if v, _ := recs[0].Get("b"); v != awk.Str("2") {
					t.Errorf("b = %v", v)
				}
				v, err := recs[0].Get("c")
				if err != nil || !v.IsAbsent() {
					t.Errorf("c = %v, %v; want absent with no error", v, err)
				}
			},
		},
		{
			name:  "long row drops excess",
			input: "a b c\n1 2 3 4\n",
			check: func(t *testing.T, recs []*awk.Record) {
				if recs[0].NF() != 3 {
					t.Errorf("NF = %d, want 3", recs[0].NF())
				}
				if _, err := recs[0].Get("$4"); err == nil {
					t.Error("fourth token survived truncation")
				}
			},
		},
		{
			name:  "exact row pairs one to one",
			input: "a b\n1 2\n",
			check: func(t *testing.T, recs []*awk.Record) {
				if got := recs[0].Keys(); !slices.Equal(got, []string{"a", "b"}) {
					t.Errorf("Keys = %q", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := awk.Collect(tempFile(t, tt.input), &awk.Config{Header: true})
			if err != nil {
				t.Fatalf("Collect failed: %v", err)
			}
			if len(recs) != 1 {
				t.Fatalf("got %d records, want 1", len(recs))
			}
			tt.check(t, recs)
		})
	}
}

func TestRecordNumbersArePhysical(t *testing.T) {
	path := tempFile(t, "keep 1\nskip 2\nkeep 3\n")
	var nrs []int
	cfg := &awk.Config{
		RecordPreFilter: func(nr, nf int, rec *awk.Record) bool {
			v, _ := rec.Get("$1")
			return v != awk.Str("skip")
		},
		RecordPostFilter: func(nr, nf int, rec *awk.Record) bool {
			nrs = append(nrs, nr)
			return true
		},
	}
	if _, err := awk.Collect(path, cfg); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	// surviving records keep their physical line numbers
	if !slices.Equal(nrs, []int{1, 3}) {
		t.Errorf("record numbers = %v, want [1 3]", nrs)
	}
}

func TestFieldCountIsRaw(t *testing.T) {
	path := tempFile(t, "a b c\n1 2\n1 2 3 4\n")
	var nfs []int
	cfg := &awk.Config{
		Header: true,
		// narrow the record so raw nf visibly differs from record width
		FieldPreFilter:   func(key string, value awk.Value) bool { return key == "a" },
		RecordPostFilter: func(nr, nf int, rec *awk.Record) bool { nfs = append(nfs, nf); return true },
	}
	if _, err := awk.Collect(path, cfg); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	// header mode: raw count is the header width for every row
	if !slices.Equal(nfs, []int{3, 3}) {
		t.Errorf("raw field counts = %v, want [3 3]", nfs)
	}

	nfs = nil
	path2 := tempFile(t, "1\n1 2 3\n")
	cfg2 := &awk.Config{
		RecordPostFilter: func(nr, nf int, rec *awk.Record) bool { nfs = append(nfs, nf); return true },
	}
	if _, err := awk.Collect(path2, cfg2); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	// headerless: raw count is the token count per row
	if !slices.Equal(nfs, []int{1, 3}) {
		t.Errorf("raw field counts = %v, want [1 3]", nfs)
	}
}

func TestMaxLinesZero(t *testing.T) {
	zero := 0
	recs, err := awk.Collect(tempFile(t, "a\nb\n"), &awk.Config{MaxLines: &zero})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestFreshPassesAgree(t *testing.T) {
	path := tempFile(t, "x 1\ny 2\nz 3\n")
	render := func() []string {
		recs, err := awk.Collect(path, nil)
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		var out []string
		for _, rec := range recs {
			out = append(out, rec.String())
		}
		return out
	}
	if first, second := render(), render(); !slices.Equal(first, second) {
		t.Errorf("passes differ:\n first %q\nsecond %q", first, second)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	path := tempFile(t, "1 2 3\n4 5\n7 8 9\n")
	recs, err := awk.Collect(path, nil)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	col := awk.NewColumn(path, nil)
	for n := 1; n <= 3; n++ {
		vals, err := col.Values(n)
		if err != nil {
			t.Fatalf("Values(%d) failed: %v", n, err)
		}
		if len(vals) != len(recs) {
			t.Fatalf("Values(%d) has %d entries for %d records", n, len(vals), len(recs))
		}
		for j, rec := range recs {
			want, _ := rec.Field(n)
			if n > rec.NF() {
				want = awk.Absent()
			}
			if vals[j] != want {
				t.Errorf("column %d row %d = %v, want %v", n, j, vals[j], want)
			}
		}
	}
}

func TestLeadingSeparatorMakesEmptyField(t *testing.T) {
	recs, err := awk.Collect(tempFile(t, " a b\n"), nil)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	rec := recs[0]
	if rec.NF() != 3 {
		t.Fatalf("NF = %d, want 3 (leading whitespace yields an empty field)", rec.NF())
	}
	if v, _ := rec.Field(1); v != awk.Str("") {
		t.Errorf("Field(1) = %v, want empty string", v)
	}
	if v, _ := rec.Field(2); v != awk.Str("a") {
		t.Errorf("Field(2) = %v", v)
	}
}

func TestMissingKeyError(t *testing.T) {
	recs, err := awk.Collect(tempFile(t, "a b\n1 2\n"), &awk.Config{Header: true})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	_, err = recs[0].Get("nope")
	key, ok := awk.IsFieldError(err)
	if !ok || key != "nope" {
		t.Errorf("Get(nope) error = %v, want FieldError for nope", err)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		sep  awk.Separator
		want []string
	}{
		{"whitespace default", "a  b\tc", awk.Whitespace, []string{"a", "b", "c"}},
		{"tab", "a\tb", awk.Tab, []string{"a", "b"}},
		{"literal", "a::b", awk.Literal("::"), []string{"a", "b"}},
		{"pattern", "a1b22c", awk.Pattern(`[0-9]+`), []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := awk.Split(tt.line, tt.sep)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q, %v) = %q, want %q", tt.line, tt.sep, got, tt.want)
			}
		})
	}
}

func TestSplitInvalidPattern(t *testing.T) {
	_, err := awk.Split("x", awk.Pattern("("))
	var ce *awk.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("Split = %v, want *ConfigError", err)
	}
}

func TestCollectError(t *testing.T) {
	if _, err := awk.Collect(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("Collect on missing file succeeded")
	}
}

// Benchmark tests
func BenchmarkRecords(b *testing.B) {
	const data = "alpha 1 x\nbeta 2 y\ngamma 3 z\n"
	for i := 0; i < b.N; i++ {
		cfg := &awk.Config{Input: strings.NewReader(data)}
		for _, err := range awk.Records("", cfg) {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRecordsPipeline(b *testing.B) {
	const data = "alpha 1 x\nbeta 2 y\ngamma 3 z\n"
	cfg := func() *awk.Config {
		return &awk.Config{
			Input:        strings.NewReader(data),
			FieldMapFunc: func(key string, value awk.Value) awk.Value { return value },
			RecordPostFilter: func(nr, nf int, rec *awk.Record) bool {
				return nr%2 == 1
			},
		}
	}
	for i := 0; i < b.N; i++ {
		for _, err := range awk.Records("", cfg()) {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

// Example functions for documentation
func ExampleRecords() {
	cfg := &awk.Config{
		Header: true,
		Input:  strings.NewReader("name qty\napples 4\npears 2\n"),
	}
	for rec, err := range awk.Records("", cfg) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		name, _ := rec.Get("name")
		qty, _ := rec.Get("qty")
		fmt.Printf("%s=%s\n", name, qty)
	}
	// Output:
	// apples=4
	// pears=2
}

func ExampleSplit() {
	fields, _ := awk.Split("a, b,  c", awk.Pattern(`,\s*`))
	fmt.Println(fields)
	// Output: [a b c]
}

func ExampleNewParser() {
	cfg := &awk.Config{
		Input: strings.NewReader("3 apples\n5 pears\n2 plums\n"),
		RecordPostFilter: func(nr, nf int, rec *awk.Record) bool {
			count, _ := rec.Get("$1")
			return count.Num() >= 3
		},
	}
	for rec, err := range awk.NewParser("", cfg).Parse() {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(rec)
	}
	// Output:
	// Record($1: 3, $2: apples)
	// Record($1: 5, $2: pears)
}
