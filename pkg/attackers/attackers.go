// Package attackers implements the legal-attacker enumerator (L1): the pin/check-aware
// filter over the Board Oracle's pseudo-attackers that every higher layer (exchange,
// tactics, mistakes) ultimately calls into.
package attackers

import (
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
	"github.com/tacticians-go/tactix/pkg/oracle"
)

// Of returns the squares occupied by side's pieces that could legally capture on sq now.
//
// A pseudo-attacker is excluded if: it is the king and the target is defended by the
// opponent (kings cannot capture a defended piece); or it is absolutely pinned away from
// sq; or side's king is in check and sq is not the sole checker (capturing elsewhere does
// not resolve the check). Setting ignoreCheck suppresses only the last of these, the
// own-king-in-check exclusion; the king and pin exclusions always apply. It is used by the
// SEE recursion (pkg/exchange) when the exchange is already hypothetical.
func Of(b oracle.Board, side board.Color, sq board.Square, ignoreCheck bool) board.Bitboard {
	pseudo := b.Attackers(side, sq)
	if pseudo == board.EmptyBitboard {
		return board.EmptyBitboard
	}

	var inCheck, targetIsOnlyChecker bool
	if !ignoreCheck {
		if king, ok := b.King(side); ok {
			checkers := b.Attackers(side.Opponent(), king)
			inCheck = checkers != board.EmptyBitboard
			targetIsOnlyChecker = checkers == sq.Mask()
		}
	}

	var ret board.Bitboard
	for _, a := range pseudo.ToSquares() {
		if b.PieceTypeAt(a) == board.King {
			if b.AttackersMask(side.Opponent(), sq) != board.EmptyBitboard {
				continue
			}
		} else {
			if b.Pin(side, a)&sq.Mask() == board.EmptyBitboard {
				continue
			}
			if inCheck && !targetIsOnlyChecker {
				continue
			}
		}
		ret |= a.Mask()
	}
	return ret
}

// LVA returns the least-valuable legal attacker of sq for side, i.e. the element of
// Of(...) minimizing nominal material value. Ties are broken by lowest square index,
// relying on Bitboard's ascending iteration order for reproducibility (spec §9).
func LVA(b oracle.Board, side board.Color, sq board.Square, ignoreCheck bool) (board.Square, bool) {
	candidates := Of(b, side, sq, ignoreCheck)
	if candidates == board.EmptyBitboard {
		return board.ZeroSquare, false
	}

	var best board.Square
	var bestValue eval.Pawns
	found := false
	for _, a := range candidates.ToSquares() {
		v := eval.NominalValue(b.PieceTypeAt(a))
		if !found || v < bestValue {
			best, bestValue, found = a, v, true
		}
	}
	return best, found
}
