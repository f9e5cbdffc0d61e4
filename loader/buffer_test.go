package loader_test

import (
	"bytes"
	"testing"

	"github.com/smolarch/smol-disasm/loader"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "smaller than one chunk", data: bytes.Repeat([]byte{0xAB}, 16)},
		{name: "larger than one chunk", data: bytes.Repeat([]byte{0xCD}, 4096*3+17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := loader.ReadAll(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if buf.Len() != len(tt.data) {
				t.Fatalf("Len() = %d, want %d", buf.Len(), len(tt.data))
			}
			got, err := buf.Read(0, buf.Len())
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Fatalf("Read returned unequal data")
			}
		})
	}
}

func TestBufferReadTruncation(t *testing.T) {
	buf := loader.NewBuffer([]byte{0x01, 0x02, 0x03})

	if _, err := buf.Read(0, 4); err == nil {
		t.Fatalf("Read(0, 4) on a 3-byte buffer: want error, got nil")
	}
	if _, err := buf.Read(1, 3); err != nil {
		t.Fatalf("Read(1, 3): unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := loader.Load("/nonexistent/path/for/test"); err == nil {
		t.Fatalf("Load on a missing file: want error, got nil")
	}
}
