package reader

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/emaildiff/internal/shared"
	th "github.com/desertthunder/emaildiff/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: []string{}},
		{name: "single line without terminator", input: "abc", want: []string{"abc"}},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", input: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "only a newline", input: "\n", want: []string{""}},
		{name: "crlf endings", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "bare cr endings", input: "a\rb", want: []string{"a", "b"}},
		{name: "surrounding whitespace", input: "  a \t\n\tb  ", want: []string{"a", "b"}},
		{name: "unicode content", input: "ünï@example.com\n", want: []string{"ünï@example.com"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid utf-8 names the line", func(t *testing.T) {
		_, err := Lines(strings.NewReader("ok\nstill ok\nbad \xff byte\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrDecode))
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("read failure", func(t *testing.T) {
		_, err := Lines(&th.FReader{})
		assert.True(t, errors.Is(err, shared.ErrFile))
	})
}

func TestReadLines(t *testing.T) {
	t.Run("reads fixture", func(t *testing.T) {
		path := th.WriteLines(t, t.TempDir(), "old.txt", "1003EMLa@example.com", "  padded  ")

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"1003EMLa@example.com", "padded"}, lines)
	})

	t.Run("empty file", func(t *testing.T) {
		path := th.WriteLines(t, t.TempDir(), "empty.txt")

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrFile))
	})

	t.Run("directory is unreadable", func(t *testing.T) {
		_, err := ReadLines(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrFile))
	})

	t.Run("invalid encoding", func(t *testing.T) {
		path := th.WriteFile(t, t.TempDir(), "latin1.txt", []byte("caf\xe9\n"))

		_, err := ReadLines(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrDecode))
		assert.Contains(t, err.Error(), "latin1.txt")
	})
}
