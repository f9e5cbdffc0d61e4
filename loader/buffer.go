// Package loader reads SMOL instruction streams into memory: a flat
// byte buffer with no header or framing, loaded from a file or any
// io.Reader and grown geometrically as bytes arrive.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Buffer holds a loaded byte stream and serves the windowed reads a
// decode classifier issues.
type Buffer struct {
	data []byte
}

// Load opens path and reads it fully into a new Buffer.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, nil
}

// ReadAll drains r into a new Buffer. Its backing array is grown
// geometrically as data arrives — capacity becomes max(cap*2, needed)
// whenever it falls short — rather than sized from a length guessed up
// front.
func ReadAll(r io.Reader) (*Buffer, error) {
	data := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			data = appendGrow(data, chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
	return &Buffer{data: data}, nil
}

// NewBuffer wraps an already-loaded byte slice, for callers (the
// built-in test buffer, tests) that don't read from an io.Reader.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// appendGrow appends more onto data, growing data's capacity to
// max(cap*2, needed) whenever the existing capacity falls short.
func appendGrow(data, more []byte) []byte {
	needed := len(data) + len(more)
	if needed > cap(data) {
		newCap := cap(data) * 2
		if newCap < needed {
			newCap = needed
		}
		grown := make([]byte, len(data), newCap)
		copy(grown, data)
		data = grown
	}
	return append(data, more...)
}

// Read implements decode.Reader: it returns data[from:to], or an error
// if fewer than to-from bytes remain.
func (b *Buffer) Read(from, to int) ([]byte, error) {
	if from < 0 || to > len(b.data) || from > to {
		return nil, fmt.Errorf("loader: truncated input at offset %d", from)
	}
	return b.data[from:to], nil
}

// Len reports how many bytes the buffer holds.
func (b *Buffer) Len() int {
	return len(b.data)
}
