// Package bundle implements the bundle state machine: stop-bit
// computation, bundle position derivation, and the class-transition
// rules that drive which classifier decodes the next word.
package bundle

import "github.com/smolarch/smol-disasm/tables"

// Position is where a decoded instruction sits within its bundle.
type Position uint8

const (
	PositionShort Position = iota
	PositionHead
	PositionBody
	PositionTail
)

func (p Position) String() string {
	switch p {
	case PositionShort:
		return "SHORT"
	case PositionHead:
		return "HEAD"
	case PositionBody:
		return "BODY"
	case PositionTail:
		return "TAIL"
	default:
		return "UNKNOWN"
	}
}

// StopBit reports whether an instruction of the given length (2 or 4
// bytes) terminates its bundle: the top bit of its highest used byte is
// clear.
func StopBit(word uint32, length int) bool {
	top := uint32(1) << uint(length*8-1)
	return word&top == 0
}

// Segmenter tracks the bundle class in progress across a decode loop.
// The class is ClassNone both at the start of a session and right after
// any stop bit.
type Segmenter struct {
	class tables.Class
}

// New returns a segmenter with no bundle in progress.
func New() *Segmenter {
	return &Segmenter{class: tables.ClassNone}
}

// Reset returns the segmenter to its start-of-session state.
func (s *Segmenter) Reset() {
	s.class = tables.ClassNone
}

// Class reports the bundle class in progress before the next decode.
func (s *Segmenter) Class() tables.Class {
	return s.class
}

// Position derives the bundle position of an instruction decoded while
// the segmenter was in its current state, given whether it stops the
// bundle.
func (s *Segmenter) Position(stop bool) Position {
	if s.class == tables.ClassNone {
		if stop {
			return PositionShort
		}
		return PositionHead
	}
	if stop {
		return PositionTail
	}
	return PositionBody
}

// Advance applies the post-decode class transition for an instruction of
// the given class that did or didn't stop its bundle:
//
//   - stop: bundle class resets to NONE.
//   - no bundle in progress: bundle class becomes the new instruction's
//     class.
//   - two LOAD-class instructions in a row: the bundle demotes to INT,
//     since loads cannot chain.
//   - otherwise: unchanged.
func (s *Segmenter) Advance(stop bool, class tables.Class) {
	switch {
	case stop:
		s.class = tables.ClassNone
	case s.class == tables.ClassNone:
		s.class = class
	case s.class == tables.ClassLoad && class == tables.ClassLoad:
		s.class = tables.ClassInt
	}
}
