// Package input acquires puzzle input files. Inputs are plain UTF-8 text,
// newline-delimited; a leading byte order mark, which some editors insert
// when saving, is stripped so it cannot leak into the first line.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File wraps an open input file with BOM-stripping applied to reads.
// Close releases the underlying file handle.
type File struct {
	f *os.File
	r io.Reader
}

func (f *File) Read(p []byte) (int, error) { return f.r.Read(p) }

func (f *File) Close() error { return f.f.Close() }

// Open opens the input file at path for reading. I/O failures (missing or
// unreadable file) are returned to the caller unchanged apart from wrapping;
// there is no fallback.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	bom := unicode.BOMOverride(transform.Nop)
	return &File{f: f, r: transform.NewReader(f, bom)}, nil
}

// Lines splits r into newline-delimited lines. Whitespace within lines is
// preserved; trimming is the consumer's decision.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ReadAll returns the whole input as one string, BOM excluded when reading
// through Open.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
