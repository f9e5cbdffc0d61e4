// Package disasm is the driver: it runs the decode loop for one loaded
// buffer at a time and feeds decoded instructions to the printer.
package disasm

import (
	"fmt"
	"io"

	"github.com/smolarch/smol-disasm/bundle"
	"github.com/smolarch/smol-disasm/decode"
	"github.com/smolarch/smol-disasm/ext"
	"github.com/smolarch/smol-disasm/listing"
	"github.com/smolarch/smol-disasm/loader"
	"github.com/smolarch/smol-disasm/tables"
)

// Diagnostic is one decode-time event worth reporting to the caller
// beyond the line printed to the listing writer: a decode miss or a
// truncated read.
type Diagnostic struct {
	Offset  int
	Message string
}

// Result is the outcome of decoding one buffer.
type Result struct {
	Lines       []string
	Diagnostics []Diagnostic
}

// Session decodes byte buffers into listings using a fixed bitmap and
// marker set, built once from the finalized registry and CLI flags and
// shared across every file the driver processes.
type Session struct {
	decoder *decode.Decoder
	printer *listing.Printer
}

// NewSession builds a session from a finalized extension registry and a
// marker set.
func NewSession(reg *ext.Registry, markers listing.MarkerSet) *Session {
	return &Session{
		decoder: decode.New(decode.NewBitmap(reg.HasFunc())),
		printer: listing.NewPrinter(markers),
	}
}

// Decode walks buf from offset 0 until a read error or the buffer is
// exhausted. Each decoded instruction is printed to w (if non-nil) and
// recorded in the returned Result; so is every diagnostic.
//
// Decode-miss advances the offset by 2 bytes and continues, per spec;
// a truncated read stops the session.
func (s *Session) Decode(buf *loader.Buffer, w io.Writer) Result {
	var res Result
	seg := bundle.New()
	offset := 0

	for offset < buf.Len() {
		id, err := s.decoder.Decode(buf, offset, seg.Class())
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Offset: offset, Message: "unexpected end"})
			if w != nil {
				fmt.Fprintf(w, "  %08x: unexpected end\n", offset)
			}
			break
		}
		if id == decode.NoMatch {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Offset: offset, Message: "failed to decode"})
			if w != nil {
				fmt.Fprintf(w, "  %08x: failed to decode\n", offset)
			}
			offset += 2
			continue
		}

		entry := tables.InstTable[id]
		length := int(entry.Len)
		wordBytes, _ := buf.Read(offset, offset+length)
		word := decode.AssembleWord(wordBytes)

		stop := bundle.StopBit(word, length)
		pos := seg.Position(stop)

		line := s.printer.Line(uint64(offset), word, id, pos)
		res.Lines = append(res.Lines, line)
		if w != nil {
			fmt.Fprintln(w, line)
		}

		seg.Advance(stop, entry.Class)
		offset += length
	}

	return res
}
