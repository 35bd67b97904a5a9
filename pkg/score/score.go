// Package score implements the tagged score type consumed by the mate classifiers in
// pkg/mistakes: a centipawn value or a mate-in-N distance, white-POV, with a total but
// non-arithmetic ordering (mate always dominates centipawns).
package score

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// kind distinguishes the two Score variants.
type kind uint8

const (
	centipawns kind = iota
	mate
)

// Score is a tagged union of a centipawn evaluation or a mate-in-N distance. The zero
// value is Cp(0). Construct with Cp or Mate; never compare the two variants numerically.
type Score struct {
	kind  kind
	cp    int32
	plies int32 // signed: positive = side to move mates, negative = side to move is mated.
}

// Cp constructs a centipawn score.
func Cp(v int32) Score {
	return Score{kind: centipawns, cp: v}
}

// Mate constructs a mate score. A positive n means the side to move delivers mate in n
// plies; negative means the side to move is mated in n plies. n == 0 is stored as given:
// it is neither mating nor being mated, and it orders below every other score.
func Mate(n int32) Score {
	return Score{kind: mate, plies: n}
}

// IsMate returns true iff s is a mate score of either sign.
func (s Score) IsMate() bool {
	return s.kind == mate
}

// IsMating returns true iff s is a mate score where the side to move delivers mate.
func (s Score) IsMating() bool {
	return s.kind == mate && s.plies > 0
}

// IsBeingMated returns true iff s is a mate score where the side to move is mated.
func (s Score) IsBeingMated() bool {
	return s.kind == mate && s.plies < 0
}

// Plies returns the signed mate distance and true, if s is a mate score.
func (s Score) Plies() (int32, bool) {
	if s.kind != mate {
		return 0, false
	}
	return s.plies, true
}

// CpValue returns the centipawn value and true, if s is a centipawn score.
func (s Score) CpValue() (int32, bool) {
	if s.kind != centipawns {
		return 0, false
	}
	return s.cp, true
}

// rank orders scores onto a single comparable axis: Mate(+n) > Cp(x) > Mate(-m), with
// closer mates outranking farther ones among mating scores, and farther being-mated
// scores outranking closer ones (per spec §3). This mirrors the classic "mate score
// inflation" trick (subtract/add distance from a value outside the centipawn range)
// without ever arithmetically mixing a mate score with a centipawn one.
func (s Score) rank() int64 {
	const mateBand = int64(1) << 32
	switch {
	case s.kind == mate && s.plies > 0:
		return mateBand - int64(s.plies)
	case s.kind == mate && s.plies < 0:
		return -mateBand - int64(s.plies) // plies negative, so -plies is positive: farther (more negative plies) ranks higher.
	case s.kind == mate:
		// plies == 0 is degenerate; treat as being mated immediately.
		return -mateBand
	default:
		return int64(s.cp)
	}
}

// Less returns true iff s orders strictly before o.
func (s Score) Less(o Score) bool {
	return s.rank() < o.rank()
}

// Equal returns true iff s and o denote the same score.
func (s Score) Equal(o Score) bool {
	return s.kind == o.kind && s.cp == o.cp && s.plies == o.plies
}

// Greater returns true iff s orders strictly after o.
func (s Score) Greater(o Score) bool {
	return o.Less(s)
}

// GreaterOrEqual returns true iff s orders after or equal to o.
func (s Score) GreaterOrEqual(o Score) bool {
	return !s.Less(o)
}

func (s Score) String() string {
	if s.kind == mate {
		return fmt.Sprintf("Mate(%+d)", s.plies)
	}
	return fmt.Sprintf("Cp(%d)", s.cp)
}

// Optional represents "no evaluation available" (spec §7), for callers wiring an external
// ingestion layer (out of scope) up to the four mate classifiers.
type Optional = lang.Optional[Score]

// NoEval is the absent-evaluation sentinel: the zero value of Optional.
var NoEval Optional
