package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitAll(t *testing.T, w *Writer, ps ...int) {
	t.Helper()
	for _, p := range ps {
		require.NoError(t, w.Emit(p))
	}
	require.NoError(t, w.Close())
}

func TestWriter_TabSeparated(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "")
	emitAll(t, w, 2, 3, 5, 7)
	assert.Equal(t, "2\t3\t5\t7\n", buf.String())
	assert.Equal(t, 4, w.Count())
}

func TestWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	emitAll(t, NewWriter(&buf, SepTab))
	assert.Equal(t, "\n", buf.String())
}

func TestWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	emitAll(t, NewWriter(&buf, SepTab), 2)
	assert.Equal(t, "2\n", buf.String())
}

func TestWriter_Separators(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "tab", want: "2\t3\n"},
		{name: "space", want: "2 3\n"},
		{name: "newline", want: "2\n3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, err := ParseSeparator(tt.name)
			require.NoError(t, err)
			var buf bytes.Buffer
			emitAll(t, NewWriter(&buf, sep), 2, 3)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseSeparator_Unknown(t *testing.T) {
	_, err := ParseSeparator("comma")
	assert.Error(t, err)
}

func TestWriter_Digest(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, SepTab)
	emitAll(t, w, 2, 3, 5)
	assert.Equal(t, xxhash.Sum64String("2\t3\t5\n"), w.Sum64())
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriter_PropagatesWriteError(t *testing.T) {
	w := NewWriter(failWriter{err: syscall.EPIPE}, SepTab)
	require.NoError(t, w.Emit(2))
	err := w.Close()
	require.Error(t, err)
	assert.True(t, IsBrokenPipe(err))
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
	assert.False(t, IsBrokenPipe(nil))
}
