package decode

import (
	"errors"

	"github.com/smolarch/smol-disasm/tables"
)

// ErrTruncated is returned when a classifier needs more bytes than the
// source has left, the decoder's READ_ERROR contract.
var ErrTruncated = errors.New("decode: truncated input")

// NoMatch is the sentinel id returned when no enabled instruction
// matches the current word, the decoder's NONE contract.
const NoMatch = -1

// Reader supplies the bytes a classifier inspects. Read returns the
// bytes in [from, to), or an error if fewer than to-from bytes remain.
type Reader interface {
	Read(from, to int) ([]byte, error)
}

// Decoder pairs a validity bitmap with the static instruction tables to
// implement the per-class classifiers and their top-level dispatch.
type Decoder struct {
	bitmap *Bitmap
}

// New returns a decoder gated by bitmap.
func New(bitmap *Bitmap) *Decoder {
	return &Decoder{bitmap: bitmap}
}

// Decode runs the classifier selected by class against the word at
// offset. class is tables.ClassNone when no bundle is in progress, which
// selects the top-level classifier instead of a single class's.
func (d *Decoder) Decode(r Reader, offset int, class tables.Class) (int, error) {
	if class == tables.ClassNone {
		return d.decodeTop(r, offset)
	}
	return d.decodeClass(r, offset, class)
}

// decodeTop discriminates a 2-byte (compressed) word from a 4-byte one
// by the low 2 bits of the first byte, then scans the matching catalog.
func (d *Decoder) decodeTop(r Reader, offset int) (int, error) {
	b, err := r.Read(offset, offset+1)
	if err != nil {
		return NoMatch, ErrTruncated
	}
	if b[0]&0x3 != 0x3 {
		return d.scan(r, offset, 2, tables.ByClass[tables.ClassCompressed])
	}
	return d.scan(r, offset, 4, tables.AllFull)
}

// decodeClass scans the one class named by the current bundle class; its
// instruction length is fixed by the class (2 bytes for COMPRESSED, 4
// for everything else).
func (d *Decoder) decodeClass(r Reader, offset int, class tables.Class) (int, error) {
	length := 4
	if class == tables.ClassCompressed {
		length = 2
	}
	return d.scan(r, offset, length, tables.ByClass[class])
}

// scan reads length bytes at offset and matches them against ids in
// table order.
func (d *Decoder) scan(r Reader, offset, length int, ids []int) (int, error) {
	buf, err := r.Read(offset, offset+length)
	if err != nil {
		return NoMatch, ErrTruncated
	}
	return matchWord(AssembleWord(buf), ids, d.bitmap), nil
}

// AssembleWord assembles up to 4 little-endian bytes into a word; unused
// high bytes of a shorter read are simply never set. Exported so callers
// that already have the matched id's declared length (the driver, after
// a successful Decode) can rebuild the same word without re-deriving the
// byte order rule.
func AssembleWord(buf []byte) uint32 {
	var w uint32
	for i, b := range buf {
		w |= uint32(b) << uint(8*i)
	}
	return w
}

// matchWord returns the first id in ids whose (mask, match) pair hits
// word and whose bit is set in bitmap. A mask hit against a disabled id
// does not stop the scan: the classifier keeps looking, per spec.
func matchWord(word uint32, ids []int, bitmap *Bitmap) int {
	for _, id := range ids {
		e := tables.InstTable[id]
		if word&e.Mask != e.Match {
			continue
		}
		if bitmap.Enabled(id) {
			return id
		}
	}
	return NoMatch
}
