package listing

import "github.com/smolarch/smol-disasm/bundle"

// MarkerSet is the four strings printed ahead of a mnemonic, one per
// bundle position.
type MarkerSet struct {
	Short, Head, Body, Tail string
}

// DefaultMarkers is the plain-ASCII marker set used unless -u or -s
// overrides it.
var DefaultMarkers = MarkerSet{Short: "- ", Head: "/ ", Body: "| ", Tail: `\ `}

// UnicodeMarkers is the -u marker set.
var UnicodeMarkers = MarkerSet{Short: "─ ", Head: "╭ ", Body: "│ ", Tail: "╰ "}

// CustomMarkers builds the -s marker set: marker is used for both SHORT
// and TAIL, and HEAD/BODY print nothing.
func CustomMarkers(marker string) MarkerSet {
	return MarkerSet{Short: marker, Head: "", Body: "", Tail: marker}
}

// For returns the marker string for a bundle position.
func (m MarkerSet) For(pos bundle.Position) string {
	switch pos {
	case bundle.PositionShort:
		return m.Short
	case bundle.PositionHead:
		return m.Head
	case bundle.PositionBody:
		return m.Body
	case bundle.PositionTail:
		return m.Tail
	default:
		return ""
	}
}
