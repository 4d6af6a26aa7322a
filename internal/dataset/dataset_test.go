package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	values, err := ParseInts(strings.NewReader("5\n 3 \n\n8\r\n-1\n"))
	require.NoError(t, err)
	require.Equal(t, []int{5, 3, 8, -1}, values)
}

func TestParseIntsBadLine(t *testing.T) {
	_, err := ParseInts(strings.NewReader("1\n2\nthree\n4\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 3, perr.Line)
	require.Equal(t, "three", perr.Text)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Contains(t, err.Error(), "line 3")
}

func TestParseIntsOverflow(t *testing.T) {
	_, err := ParseInts(strings.NewReader("99999999999999999999999\n"))
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseEmpty(t *testing.T) {
	_, err := ParseInts(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmpty)

	_, err = ParseInts(strings.NewReader("\n  \n\n"))
	require.ErrorIs(t, err, ErrEmpty)

	_, err = ParseStrings(strings.NewReader("\n"))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestParseStrings(t *testing.T) {
	values, err := ParseStrings(strings.NewReader("banana\r\napple\n\ncherry"))
	require.NoError(t, err)
	require.Equal(t, []string{"banana", "apple", "cherry"}, values)
}

func TestLoadInts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("5\n3\n8\n1\n"), 0644))

	ds, err := LoadInts(path)
	require.NoError(t, err)
	require.Equal(t, "numbers.txt", ds.Name)
	require.Equal(t, []int{5, 3, 8, 1}, ds.Values)
	require.Equal(t, 4, ds.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadStrings(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadParseErrorKeepsType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nx\n"), 0644))

	_, err := LoadInts(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
}

func TestParseElements(t *testing.T) {
	for in, want := range map[string]Elements{"": Ints, "int": Ints, "Strings": Strings, "text": Strings} {
		got, err := ParseElements(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := ParseElements("floats")
	require.ErrorIs(t, err, ErrUnknownElements)
}

func TestWatchNotifiesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	require.NoError(t, <-done)
}
