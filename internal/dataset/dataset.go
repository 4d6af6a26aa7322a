package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates a source with no elements.
	ErrEmpty = errors.New("dataset: empty dataset")

	// ErrUnknownElements indicates an element type other than int or string.
	ErrUnknownElements = errors.New("dataset: unknown element type")
)

// ParseError reports a line that is not a valid element.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d: invalid element %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Elements selects how lines are interpreted.
type Elements string

const (
	Ints    Elements = "int"
	Strings Elements = "string"
)

func ParseElements(s string) (Elements, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "int", "ints", "integer", "integers":
		return Ints, nil
	case "string", "strings", "text", "lines":
		return Strings, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownElements, s)
}

// Dataset is an immutable, named list of elements.
type Dataset[T any] struct {
	Name   string
	Values []T
}

func (d *Dataset[T]) Len() int { return len(d.Values) }

// ParseInts reads one integer per line. Surrounding whitespace is trimmed and
// blank lines are skipped. Any other bad line rejects the whole input.
func ParseInts(r io.Reader) ([]int, error) {
	values := make([]int, 0)
	err := scanLines(r, func(line int, text string) error {
		v, err := strconv.Atoi(text)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return &ParseError{Line: line, Text: text, Err: err}
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	return values, nil
}

// ParseStrings reads one element per line, skipping blank lines.
func ParseStrings(r io.Reader) ([]string, error) {
	values := make([]string, 0)
	err := scanLines(r, func(_ int, text string) error {
		values = append(values, text)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	return values, nil
}

func scanLines(r io.Reader, fn func(line int, text string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := fn(line, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dataset: read: %w", err)
	}
	return nil
}

func LoadInts(path string) (*Dataset[int], error) {
	return load(path, ParseInts)
}

func LoadStrings(path string) (*Dataset[string], error) {
	return load(path, ParseStrings)
}

func load[T any](path string, parse func(io.Reader) ([]T, error)) (*Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	values, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &Dataset[T]{Name: filepath.Base(path), Values: values}, nil
}
