// Package eval holds the nominal piece-value table (the L0 layer of the tactical
// heuristics tower): the single number every higher layer (attackers, exchange, tactics,
// mistakes) consults to weigh one piece against another.
package eval

import (
	"fmt"

	"github.com/tacticians-go/tactix/pkg/board"
)

// Pawns is a material quantity expressed in pawn units, the unit every exported function
// in this module reports its results in.
type Pawns float32

func (p Pawns) String() string {
	return fmt.Sprintf("%.2f", float32(p))
}

// NominalValue is the absolute nominal value in pawns of a piece kind. The King is given
// an arbitrary, deliberately dominant value: it can never be legally captured, so nothing
// in the exchange/tactics layers should ever treat trading it as a real option.
func NominalValue(p board.Piece) Pawns {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 1000
	default:
		return 0
	}
}
