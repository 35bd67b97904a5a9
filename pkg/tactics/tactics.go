// Package tactics implements the tactical predicates (L3): hanging pieces, capturability
// and forks, all expressed in terms of the L1 attacker enumerator and the L2 exchange
// evaluator.
package tactics

import (
	"github.com/tacticians-go/tactix/pkg/attackers"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
	"github.com/tacticians-go/tactix/pkg/exchange"
	"github.com/tacticians-go/tactix/pkg/oracle"
)

// IsHanging returns true iff sq holds a piece that its owner stands to lose outright: the
// opponent gains material by starting an exchange there. An empty square is never hanging.
func IsHanging(b oracle.Board, sq board.Square) bool {
	c, ok := b.ColorAt(sq)
	if !ok {
		return false
	}
	return exchange.Eval(b, c.Opponent(), sq, 0, false) > 0
}

// GetHangingPieces returns every square occupied by color's hanging pieces. The king is
// never included, since it can never actually be captured.
func GetHangingPieces(b oracle.Board, c board.Color) board.Bitboard {
	occupied := b.OccupiedCo(c)
	if king, ok := b.King(c); ok {
		occupied &^= king.Mask()
	}

	var hanging board.Bitboard
	for _, sq := range occupied.ToSquares() {
		if IsHanging(b, sq) {
			hanging |= sq.Mask()
		}
	}
	return hanging
}

// CanBeCaptured returns true iff sq's piece is hanging, or the opponent's least valuable
// attacker of sq is worth no more than sq's own piece -- an even or favorable trade is on
// offer even when the piece is not outright lost.
func CanBeCaptured(b oracle.Board, sq board.Square) bool {
	c, ok := b.ColorAt(sq)
	if !ok {
		return false
	}
	if IsHanging(b, sq) {
		return true
	}

	a, ok := attackers.LVA(b, c.Opponent(), sq, false)
	if !ok {
		return false
	}
	return eval.NominalValue(b.PieceTypeAt(a)) <= eval.NominalValue(b.PieceTypeAt(sq))
}

// IsFork returns true iff the piece on sq is itself safe (not CanBeCaptured) and attacks
// at least two hanging enemy pieces.
func IsFork(b oracle.Board, sq board.Square) bool {
	if CanBeCaptured(b, sq) {
		return false
	}
	c, ok := b.ColorAt(sq)
	if !ok {
		return false
	}

	targets := b.AttacksMask(sq) & b.OccupiedCo(c.Opponent())
	count := 0
	for _, t := range targets.ToSquares() {
		if IsHanging(b, t) {
			count++
		}
	}
	return count >= 2
}

// IsForkingMove returns true iff m, once played, lands a safe piece on a square attacking
// at least two enemy pieces that are hanging after m but were not already hanging before
// it -- restricting the pattern to pressure m itself created, not accidental aggregation of
// pre-existing threats.
func IsForkingMove(b oracle.Board, m board.Move) bool {
	c, ok := b.ColorAt(m.From)
	if !ok {
		return false
	}

	next := b.Apply(m)
	if CanBeCaptured(next, m.To) {
		return false
	}

	targets := next.AttacksMask(m.To) & next.OccupiedCo(c.Opponent())
	count := 0
	for _, t := range targets.ToSquares() {
		if !IsHanging(next, t) {
			continue
		}
		if IsHanging(b, t) {
			continue // already under threat before m; not new pressure.
		}
		count++
	}
	return count >= 2
}

// GetHangingAfterMove applies m and returns the hanging pieces of color, defaulting to the
// mover's own color when hasColor is false.
func GetHangingAfterMove(b oracle.Board, m board.Move, color board.Color, hasColor bool) board.Bitboard {
	next := b.Apply(m)
	c := color
	if !hasColor {
		mover, ok := b.ColorAt(m.From)
		if !ok {
			return board.EmptyBitboard
		}
		c = mover
	}
	return GetHangingPieces(next, c)
}
