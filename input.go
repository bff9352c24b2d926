package awk

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// openInput opens filename for reading, transparently decompressing
// .gz, .bz2, .zst and .xz files based on the extension.
func openInput(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	r, closeFunc, err := decompressed(f, filename)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &inputReader{r: r, closeFunc: closeFunc, f: f}, nil
}

// decompressed layers a decoder over f when the extension calls for one.
// The returned func releases the decoder; it is nil when the decoder has
// no resources of its own.
func decompressed(f *os.File, filename string) (io.Reader, func() error, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip %s: %w", filename, err)
		}
		return zr, zr.Close, nil
	case ".bz2":
		return bzip2.NewReader(f), nil, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("open zstd %s: %w", filename, err)
		}
		return dec, func() error { dec.Close(); return nil }, nil
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("open xz %s: %w", filename, err)
		}
		return xr, nil, nil
	default:
		return f, nil, nil
	}
}

// inputReader bundles a possibly decompressed stream with its closers.
type inputReader struct {
	r         io.Reader
	closeFunc func() error
	f         *os.File
}

func (in *inputReader) Read(p []byte) (int, error) {
	return in.r.Read(p)
}

func (in *inputReader) Close() error {
	var err error
	if in.closeFunc != nil {
		err = in.closeFunc()
	}
	if cerr := in.f.Close(); err == nil {
		err = cerr
	}
	return err
}
