package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
)

// Separators accepted by ParseSeparator.
const (
	SepTab     = "\t"
	SepSpace   = " "
	SepNewline = "\n"
)

// ParseSeparator maps a separator name (tab, space, newline) to its text.
// An empty name selects a tab.
func ParseSeparator(name string) (string, error) {
	switch name {
	case "", "tab":
		return SepTab, nil
	case "space":
		return SepSpace, nil
	case "newline":
		return SepNewline, nil
	default:
		return "", fmt.Errorf("unsupported separator %q (want tab|space|newline)", name)
	}
}

// Writer streams primes as whitespace-separated decimal values and ends the
// stream with a single newline on Close.
type Writer struct {
	bw     *bufio.Writer
	digest *xxhash.Digest
	sep    string
	buf    []byte
	n      int
}

// NewWriter returns a buffered Writer over w. An empty sep means a tab.
func NewWriter(w io.Writer, sep string) *Writer {
	if sep == "" {
		sep = SepTab
	}
	return &Writer{
		bw:     bufio.NewWriterSize(w, 64<<10),
		digest: xxhash.New(),
		sep:    sep,
		buf:    make([]byte, 0, 24),
	}
}

// Emit writes p, preceded by the separator unless it is the first value.
func (w *Writer) Emit(p int) error {
	w.buf = w.buf[:0]
	if w.n > 0 {
		w.buf = append(w.buf, w.sep...)
	}
	w.buf = strconv.AppendInt(w.buf, int64(p), 10)
	w.n++
	return w.write(w.buf)
}

// Close writes the trailing newline and flushes buffered output.
func (w *Writer) Close() error {
	if err := w.write([]byte{'\n'}); err != nil {
		return err
	}
	return w.bw.Flush()
}

// Count returns the number of values emitted.
func (w *Writer) Count() int { return w.n }

// Sum64 returns the xxhash64 of every byte written so far.
func (w *Writer) Sum64() uint64 { return w.digest.Sum64() }

func (w *Writer) write(b []byte) error {
	_, _ = w.digest.Write(b)
	_, err := w.bw.Write(b)
	return err
}
