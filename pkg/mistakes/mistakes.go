// Package mistakes implements the mistake classifiers (L4): the top of the tactical
// heuristics tower. Each classifier is a total predicate over a board, a move that was
// played, and optional engine hints (best_moves / best_opponent_moves / a principal
// variation), returning true iff the move exhibits the named error pattern.
package mistakes

import (
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
	"github.com/tacticians-go/tactix/pkg/exchange"
	"github.com/tacticians-go/tactix/pkg/oracle"
	"github.com/tacticians-go/tactix/pkg/tactics"
)

// HangingPieceNotCaptured returns true iff move did not capture a hanging target, while
// some hint in bestMoves would have.
func HangingPieceNotCaptured(b oracle.Board, m board.Move, bestMoves []board.Move) bool {
	if tactics.IsHanging(b, m.To) {
		return false
	}
	for _, bm := range bestMoves {
		if tactics.IsHanging(b, bm.To) {
			return true
		}
	}
	return false
}

// HungMovedPiece returns true iff m is a non-capturing move of a piece onto a square from
// which it can now be captured at a loss. bestOpponentMoves, when provided, must agree
// that recapturing the moved piece is the engine's preferred reply, or the classifier
// declines to fire.
func HungMovedPiece(b oracle.Board, m board.Move, bestOpponentMoves []board.Move, hasBestOpponentMoves bool) bool {
	if b.IsCapture(m) {
		return false // see StartedBadTrade
	}
	return movedPieceShouldBeCaptured(b, m, bestOpponentMoves, hasBestOpponentMoves)
}

// StartedBadTrade is HungMovedPiece's mirror image: m must be a capture that turns out to
// start an unfavorable exchange.
func StartedBadTrade(b oracle.Board, m board.Move, bestOpponentMoves []board.Move, hasBestOpponentMoves bool) bool {
	if !b.IsCapture(m) {
		return false // see HungMovedPiece
	}
	return movedPieceShouldBeCaptured(b, m, bestOpponentMoves, hasBestOpponentMoves)
}

func movedPieceShouldBeCaptured(b oracle.Board, m board.Move, bestOpponentMoves []board.Move, hasBestOpponentMoves bool) bool {
	if hasBestOpponentMoves {
		agrees := false
		for _, r := range bestOpponentMoves {
			if r.To == m.To {
				agrees = true
				break
			}
		}
		if !agrees {
			return false
		}
	}
	return exchange.CaptureEval(b, m) < 0
}

// HungOtherPiece returns true iff m causes some piece other than the mover to become newly
// hanging -- by losing a defender, being exposed to an attack, unpinning an attacker, or
// any other tactical reason -- and, when bestMoves is supplied, some hinted alternative
// hangs strictly less.
func HungOtherPiece(b oracle.Board, m board.Move, bestMoves []board.Move) bool {
	nh := newlyHangingValue(b, m)
	if nh <= 0 {
		return false
	}
	if len(bestMoves) == 0 {
		return true
	}

	min := newlyHangingValue(b, bestMoves[0])
	for _, bm := range bestMoves[1:] {
		if v := newlyHangingValue(b, bm); v < min {
			min = v
		}
	}
	return min < nh
}

// newlyHangingValue is the max SEE value, after m, across pieces of the mover's color that
// became hanging because of m -- excluding the moved piece itself and anything that was
// already hanging before m.
func newlyHangingValue(b oracle.Board, m board.Move) eval.Pawns {
	mover, ok := b.ColorAt(m.From)
	if !ok {
		return 0
	}

	hangingBefore := tactics.GetHangingPieces(b, mover) &^ board.BitMask(m.From)
	next := b.Apply(m)
	hangingAfter := tactics.GetHangingPieces(next, mover)
	newlyHanging := hangingAfter &^ hangingBefore &^ board.BitMask(m.To)

	return maxHangingValue(next, mover, newlyHanging)
}

// hangingAfterMoveValue is the max SEE value, after m, across every piece of the mover's
// color that is hanging -- with no exclusions, unlike newlyHangingValue.
func hangingAfterMoveValue(b oracle.Board, m board.Move) eval.Pawns {
	mover, ok := b.ColorAt(m.From)
	if !ok {
		return 0
	}
	next := b.Apply(m)
	return maxHangingValue(next, mover, tactics.GetHangingPieces(next, mover))
}

func maxHangingValue(b oracle.Board, mover board.Color, hanging board.Bitboard) eval.Pawns {
	var best eval.Pawns
	for _, sq := range hanging.ToSquares() {
		if v := exchange.Eval(b, mover.Opponent(), sq, 0, false); v > best {
			best = v
		}
	}
	return best
}

// LeftPieceHanging returns true iff a piece was already hanging before m, m neither moved
// it nor defended it, and no hinted alternative would have left as much hanging. A hanging
// piece that is moved (even to a square where it hangs again) is HungMovedPiece's domain,
// not this one.
func LeftPieceHanging(b oracle.Board, m board.Move, bestMoves []board.Move, hasBestMoves bool) bool {
	if hasBestMoves && board.Contains(bestMoves, m) {
		return false
	}

	mover, ok := b.ColorAt(m.From)
	if !ok {
		return false
	}

	hangingNow := tactics.GetHangingPieces(b, mover)
	if hangingNow == board.EmptyBitboard {
		return false
	}
	if hangingNow.Only(m.From) {
		return false // the hanging piece is the one being moved.
	}

	h := hangingAfterMoveValue(b, m) - exchange.CapturedValue(b, m)

	var optimum eval.Pawns
	if hasBestMoves && len(bestMoves) > 0 {
		optimum = hangingAfterMoveValue(b, bestMoves[0]) - exchange.CapturedValue(b, bestMoves[0])
		for _, bm := range bestMoves[1:] {
			if v := hangingAfterMoveValue(b, bm) - exchange.CapturedValue(b, bm); v < optimum {
				optimum = v
			}
		}
		if optimum < 0 {
			optimum = 0
		}
	}

	return optimum < h
}

// MissedFork returns true iff m is not a forking move, but some hinted alternative is.
func MissedFork(b oracle.Board, m board.Move, bestMoves []board.Move) bool {
	if tactics.IsForkingMove(b, m) {
		return false
	}
	for _, bm := range bestMoves {
		if tactics.IsForkingMove(b, bm) {
			return true
		}
	}
	return false
}

// HungFork returns true iff m allowed the opponent to fork: some hinted opponent reply
// forks after m, and -- when a two-ply principal variation is supplied -- that fork was
// not already unavoidable one move earlier (in which case m did not "hang" it).
func HungFork(b oracle.Board, m board.Move, bestOpponentMoves []board.Move, pv []board.Move) bool {
	if len(bestOpponentMoves) == 0 {
		return false
	}

	after := b.Apply(m)
	forked := false
	for _, r := range bestOpponentMoves {
		if tactics.IsForkingMove(after, r) {
			forked = true
			break
		}
	}
	if !forked {
		return false
	}

	if len(pv) >= 2 {
		priorAfter := b.Apply(pv[0])
		if tactics.IsForkingMove(priorAfter, pv[1]) {
			return false // the fork was already unavoidable; m did not hang it.
		}
	}

	return true
}

// MissedSacrifice returns true iff m was not among bestMoves and some hinted alternative
// is itself a sham sacrifice (StartedBadTrade). Real-sacrifice branches (via
// HungMovedPiece / HungOtherPiece / LeftPieceHanging) are intentionally not wired in: they
// flag far more positions than look like genuine sacrifices in practice.
func MissedSacrifice(b oracle.Board, m board.Move, bestMoves []board.Move) bool {
	if board.Contains(bestMoves, m) {
		return false
	}
	for _, bm := range bestMoves {
		if StartedBadTrade(b, bm, nil, false) {
			return true
		}
	}
	return false
}
