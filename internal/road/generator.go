package road

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source supplies uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CheckSource reports ErrNilSource for a nil source, including a nil
// *rand.Rand stored in the interface.
func CheckSource(rng Source) error {
	if rng == nil {
		return ErrNilSource
	}
	if r, ok := rng.(*rand.Rand); ok && r == nil {
		return ErrNilSource
	}
	return nil
}

// NewSource returns a seeded math/rand source for deterministic roads.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomSeed draws a seed from crypto/rand, for when the user did not ask
// for a reproducible road.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("road: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generate builds a road of the given length.
//
// Tile 0 is always Solid. Each following tile is forced Solid when the
// previous one is Empty; otherwise one draw from rng picks Empty (0) or
// Solid (1). A forced tile consumes no draw.
func Generate(length int, rng Source) (Road, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, length)
	}
	if err := CheckSource(rng); err != nil {
		return nil, err
	}

	r := make(Road, length)
	r[0] = Solid
	for i := 1; i < length; i++ {
		if r[i-1] == Empty {
			r[i] = Solid
			continue
		}
		if rng.Intn(2) == 0 {
			r[i] = Empty
		} else {
			r[i] = Solid
		}
	}
	return r, nil
}
