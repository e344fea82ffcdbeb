// Package road generates the procedural sequence of blocks the player
// jumps across. It has no dependencies on the platform layer so the
// generator stays pure and testable with a fixed random source.
package road

import (
	"errors"
	"fmt"
	"strings"
)

// BlockKind is the type of a single road tile.
type BlockKind int

const (
	Empty BlockKind = iota // Gap, landing here ends the run
	Solid                  // Safe to land on
)

// Glyphs used by String and Parse.
const (
	SolidGlyph = '#'
	EmptyGlyph = '_'
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidLength is returned when a road of length < 1 is requested.
	ErrInvalidLength = errors.New("road: length must be at least 1")
	// ErrNilSource is returned when Generate is called without a random source.
	ErrNilSource = errors.New("road: nil random source")
	// ErrUnsafeStart is returned by Validate when tile 0 is not Solid.
	ErrUnsafeStart = errors.New("road: first tile must be solid")
	// ErrDoubleGap is returned by Validate when two Empty tiles are adjacent.
	ErrDoubleGap = errors.New("road: consecutive empty tiles")
)

// Road is an ordered sequence of blocks. Index 0 is the start tile.
type Road []BlockKind

// Len returns the number of tiles.
func (r Road) Len() int {
	return len(r)
}

// At returns the block at index i. The second result is false when i is
// outside the road.
func (r Road) At(i int) (BlockKind, bool) {
	if i < 0 || i >= len(r) {
		return Empty, false
	}
	return r[i], true
}

// Clone returns an independent copy of the road.
func (r Road) Clone() Road {
	if r == nil {
		return nil
	}
	out := make(Road, len(r))
	copy(out, r)
	return out
}

// Validate checks the safe-start and no-double-gap invariants.
func (r Road) Validate() error {
	if len(r) == 0 {
		return ErrInvalidLength
	}
	if r[0] != Solid {
		return ErrUnsafeStart
	}
	for i := 1; i < len(r); i++ {
		if r[i] == Empty && r[i-1] == Empty {
			return fmt.Errorf("%w at index %d", ErrDoubleGap, i)
		}
	}
	return nil
}

// String renders the road using '#' for Solid and '_' for Empty.
func (r Road) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, k := range r {
		if k == Solid {
			sb.WriteRune(SolidGlyph)
		} else {
			sb.WriteRune(EmptyGlyph)
		}
	}
	return sb.String()
}

// Parse builds a road from the String format. Whitespace is ignored.
// The result is not validated; call Validate if the invariants matter.
func Parse(s string) (Road, error) {
	r := make(Road, 0, len(s))
	for i, ch := range s {
		switch ch {
		case SolidGlyph:
			r = append(r, Solid)
		case EmptyGlyph:
			r = append(r, Empty)
		case ' ', '\t', '\n':
		default:
			return nil, fmt.Errorf("road: unexpected %q at offset %d", ch, i)
		}
	}
	return r, nil
}
