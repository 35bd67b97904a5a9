// Package exchange implements the static exchange evaluator (L2): the two public SEE
// operations and the captured-value helper they and pkg/tactics build on.
package exchange

import (
	"github.com/tacticians-go/tactix/pkg/attackers"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
	"github.com/tacticians-go/tactix/pkg/oracle"
)

// CapturedValue (move_captured_value) returns the value of whatever m captures: the
// pawn value for an en passant capture, otherwise the value of the piece on m.To (0 if
// m.To is empty).
func CapturedValue(b oracle.Board, m board.Move) eval.Pawns {
	if b.IsEnPassant(m) {
		return eval.NominalValue(board.Pawn)
	}
	return eval.NominalValue(b.PieceTypeAt(m.To))
}

// Eval (exchange_eval) simulates the material swing of an exchange on sq if side were to
// move next and play optimally -- the first move is not forced. If the best choice is to
// decline, the result is 0 (never negative). promotion, when hasPromotion is set,
// substitutes for the captured value only at the outermost step of the recursion: it is
// how a caller conveys "the first attacker is a pawn that promotes while capturing"
// (see CaptureEval).
func Eval(b oracle.Board, side board.Color, sq board.Square, promotion eval.Pawns, hasPromotion bool) eval.Pawns {
	ignoreCheck := false
	if opp, ok := b.King(side.Opponent()); ok && b.Attackers(side, opp) != board.EmptyBitboard {
		// The opponent is already in check, so this exchange is purely hypothetical --
		// it cannot really be side's turn. Check gating is suppressed throughout; pin
		// gating still applies.
		ignoreCheck = true
	}
	return recurse(b, side, sq, promotion, hasPromotion, ignoreCheck, true)
}

func recurse(b oracle.Board, side board.Color, sq board.Square, promotion eval.Pawns, hasPromotion, ignoreCheck, outermost bool) eval.Pawns {
	a, ok := attackers.LVA(b, side, sq, ignoreCheck)
	if !ok {
		return 0
	}

	m := board.Move{From: a, To: sq}
	captured := CapturedValue(b, m)
	next := b.Apply(m)
	recapture := recurse(next, side.Opponent(), sq, 0, false, ignoreCheck, false)

	if captured < recapture {
		return 0 // the starter declines: continuing the exchange loses material.
	}
	if outermost && hasPromotion {
		return promotion - recapture
	}
	return captured - recapture
}

// CaptureEval (capture_exchange_eval) evaluates m as a forced capture: the result may be
// negative. attacker_value is always threaded through as the promotion substitute, since
// it is a no-op for a non-promoting move (the piece that lands on m.To is the attacker
// itself, at its own nominal value) and only changes the outcome for an actual promotion.
func CaptureEval(b oracle.Board, m board.Move) eval.Pawns {
	side, ok := b.ColorAt(m.From)
	if !ok {
		return 0
	}

	captured := CapturedValue(b, m)
	attackerValue := eval.NominalValue(b.PieceTypeAt(m.From))

	next := b.Apply(m)
	swing := Eval(next, side.Opponent(), m.To, attackerValue, true)

	return captured - swing
}
