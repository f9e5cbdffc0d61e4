// Package decode implements the validity bitmap and the table-driven
// decoder: a dispatcher that picks a classifier by the current bundle
// class, and classifiers that scan a class's catalog entries for a
// (mask, match) hit gated by the bitmap.
package decode

import "github.com/smolarch/smol-disasm/tables"

// Bitmap is a bitset over the instruction universe: which ids the
// decoder may return in the current extension configuration. It is
// computed once from the registry and never mutated during decoding.
type Bitmap struct {
	bits [tables.InstCount]bool
}

// NewBitmap evaluates every instruction's guard against has and returns
// the resulting bitmap. An instruction with no guard is never enabled.
func NewBitmap(has tables.HasFunc) *Bitmap {
	bm := &Bitmap{}
	for id, entry := range tables.InstTable {
		if entry.Guard == nil {
			continue
		}
		bm.bits[id] = entry.Guard(has)
	}
	return bm
}

// Enabled reports whether id may be returned by the decoder. Out-of-range
// ids are always disabled.
func (bm *Bitmap) Enabled(id int) bool {
	if id < 0 || id >= tables.InstCount {
		return false
	}
	return bm.bits[id]
}
