package mistakes_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/board/fen"
	"github.com/tacticians-go/tactix/pkg/mistakes"
	"github.com/tacticians-go/tactix/pkg/score"
)

func decode(t *testing.T, f string) *board.Position {
	t.Helper()
	return fen.MustDecode(f)
}

const pawnDefendedFEN = "1k6/6b1/8/4p3/8/2B5/8/1K6 w - - 0 1"

func TestHangingPieceNotCaptured(t *testing.T) {
	pos := decode(t, "1k6/8/8/4p3/8/2B5/8/1K6 w - - 0 1")
	bestMoves := []board.Move{{From: board.C3, To: board.E5}}
	require.True(t, mistakes.HangingPieceNotCaptured(pos, board.Move{From: board.C3, To: board.B2}, bestMoves))
}

func TestHungMovedPiece(t *testing.T) {
	pos := decode(t, pawnDefendedFEN)

	require.True(t, mistakes.HungMovedPiece(pos, board.Move{From: board.C3, To: board.D4}, nil, false))
	require.False(t, mistakes.HungMovedPiece(pos, board.Move{From: board.C3, To: board.B2}, nil, false))
	// a bad trade, not a hung moved piece: the move is itself a capture.
	require.False(t, mistakes.HungMovedPiece(pos, board.Move{From: board.C3, To: board.E5}, nil, false))

	// the engine's reply doesn't even recapture on d4, so this no longer counts.
	notRecapture := []board.Move{{From: board.E5, To: board.E4}}
	require.False(t, mistakes.HungMovedPiece(pos, board.Move{From: board.C3, To: board.D4}, notRecapture, true))
}

func TestStartedBadTrade(t *testing.T) {
	pos := decode(t, pawnDefendedFEN)

	require.True(t, mistakes.StartedBadTrade(pos, board.Move{From: board.C3, To: board.E5}, nil, false))
	require.False(t, mistakes.StartedBadTrade(pos, board.Move{From: board.C3, To: board.B2}, nil, false))
	// hanging a piece without a capture is HungMovedPiece's domain.
	require.False(t, mistakes.StartedBadTrade(pos, board.Move{From: board.C3, To: board.D4}, nil, false))

	// if recapturing isn't even the opponent's best reply, this no longer counts.
	notRecapture := []board.Move{{From: board.B8, To: board.B7}}
	require.False(t, mistakes.StartedBadTrade(pos, board.Move{From: board.C3, To: board.E5}, notRecapture, true))
}

func TestMissedFork(t *testing.T) {
	pos := decode(t, "k7/8/1q3r2/8/8/4N3/2K5/8 w - - 0 1")

	require.True(t, mistakes.MissedFork(pos, board.Move{From: board.E3, To: board.C4}, []board.Move{{From: board.E3, To: board.D5}}))
	require.False(t, mistakes.MissedFork(pos, board.Move{From: board.E3, To: board.D5}, []board.Move{{From: board.E3, To: board.D5}}))
	// the hinted move isn't a fork either.
	require.False(t, mistakes.MissedFork(pos, board.Move{From: board.E3, To: board.C4}, []board.Move{{From: board.C2, To: board.D2}}))
}

func TestHungOtherPiece(t *testing.T) {
	// a quiet king move exposes no white piece to a new attack: nothing becomes hanging.
	pos := decode(t, "1k6/8/8/4p3/8/2B5/8/1K6 w - - 0 1")
	require.False(t, mistakes.HungOtherPiece(pos, board.Move{From: board.B1, To: board.C1}, nil))
}

func TestLeftPieceHanging(t *testing.T) {
	// White's bishop already attacks the pawn on e5; a quiet White king move doesn't
	// change that. Black then plays a quiet king move that neither saves nor defends it.
	pos := decode(t, "1k6/8/8/4p3/8/2B5/8/1K6 w - - 0 1")
	afterWhite := pos.Apply(board.Move{From: board.B1, To: board.A2}).(*board.Position)

	require.True(t, mistakes.LeftPieceHanging(afterWhite, board.Move{From: board.B8, To: board.A8}, nil, false))
}

func TestHungFork(t *testing.T) {
	// White rooks on b6 and f6; a quiet White king move lets Black's knight jump from f4
	// to d5, forking both.
	pos := decode(t, "k7/8/1R3R2/8/5n2/8/2K5/8 w - - 0 1")
	reply := []board.Move{{From: board.F4, To: board.D5}}
	require.True(t, mistakes.HungFork(pos, board.Move{From: board.C2, To: board.D2}, reply, nil))
	require.False(t, mistakes.HungFork(pos, board.Move{From: board.C2, To: board.D2}, nil, nil))
}

func TestMissedSacrifice(t *testing.T) {
	pos := decode(t, pawnDefendedFEN)
	best := []board.Move{{From: board.C3, To: board.E5}} // a bad trade: started_bad_trade(Bxe5).
	require.True(t, mistakes.MissedSacrifice(pos, board.Move{From: board.C3, To: board.B2}, best))
	require.False(t, mistakes.MissedSacrifice(pos, board.Move{From: board.C3, To: board.E5}, best))
}

func TestHungMateN(t *testing.T) {
	require.True(t, mistakes.HungMateN(score.Mate(-1), score.Cp(0), 1))
	require.False(t, mistakes.HungMateN(score.Mate(-2), score.Mate(-4), 1))
}

func TestHungMateNPlus(t *testing.T) {
	// being mated 5 plies out is at least as deep as n=3, and the best line avoided mate.
	require.True(t, mistakes.HungMateNPlus(score.Mate(-5), score.Cp(50), 3))
	// distance 2 is shallower than n=3, so this generalization doesn't cover it.
	require.False(t, mistakes.HungMateNPlus(score.Mate(-2), score.Mate(-5), 3))
}

func TestMissedMateN(t *testing.T) {
	require.True(t, mistakes.MissedMateN(score.Cp(100), score.Mate(3), 3))
	require.False(t, mistakes.MissedMateN(score.Mate(3), score.Mate(3), 3))
}

func TestMissedMateNPlus(t *testing.T) {
	// a mate in 4 was on offer, at least as deep as n=3, while the position reached
	// isn't itself winning.
	require.True(t, mistakes.MissedMateNPlus(score.Cp(100), score.Mate(4), 3))
	// distance 2 is shallower than n=3, so this generalization doesn't cover it.
	require.False(t, mistakes.MissedMateNPlus(score.Cp(100), score.Mate(2), 3))
}
