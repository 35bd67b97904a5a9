package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/board/fen"
)

func mustDecode(t *testing.T, f string) *board.Position {
	t.Helper()
	pos, _, _, _, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}

func TestNewPosition(t *testing.T) {
	t.Run("rejects missing king", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
		}, 0, 0, false)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate placement", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E1, Color: board.White, Piece: board.Queen},
			{Square: board.E8, Color: board.Black, Piece: board.King},
		}, 0, 0, false)
		assert.Error(t, err)
	})

	t.Run("rejects adjacent kings", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E2, Color: board.Black, Piece: board.King},
		}, 0, 0, false)
		assert.Error(t, err)
	})

	t.Run("accepts valid position", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
			{Square: board.E8, Color: board.Black, Piece: board.King},
			{Square: board.A1, Color: board.White, Piece: board.Rook},
		}, board.WhiteQueenSideCastle, 0, false)
		require.NoError(t, err)
		assert.Equal(t, board.WhiteQueenSideCastle, pos.Castling())
	})
}

func TestPositionSquare(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	c, p, ok := pos.Square(board.A1)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Rook, p)

	_, _, ok = pos.Square(board.A4)
	assert.False(t, ok)
	assert.True(t, pos.IsEmpty(board.A4))
}

func TestApplyQuietMove(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	m := board.Move{From: board.E2, To: board.E4}
	next := pos.Apply(m).(*board.Position)

	assert.True(t, next.IsEmpty(board.E2))
	c, p, ok := next.Square(board.E4)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, p)

	ep, hasEP := next.EnPassant()
	require.True(t, hasEP)
	assert.Equal(t, board.E3, ep)

	// original position is untouched (pure functional Apply).
	assert.False(t, pos.IsEmpty(board.E2))
}

func TestApplyCapture(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/3p4/4P3/8/4K3 w - - 0 1")

	m := board.Move{From: board.E3, To: board.D4}
	assert.True(t, pos.IsCapture(m))

	next := pos.Apply(m).(*board.Position)
	assert.True(t, next.IsEmpty(board.E3))
	c, p, ok := next.Square(board.D4)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, p)
}

func TestApplyEnPassant(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")

	m := board.Move{From: board.E5, To: board.D6}
	assert.True(t, pos.IsEnPassant(m))
	assert.True(t, pos.IsCapture(m))

	next := pos.Apply(m).(*board.Position)
	assert.True(t, next.IsEmpty(board.D5)) // captured pawn removed
	_, p, ok := next.Square(board.D6)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, p)
}

func TestApplyPromotion(t *testing.T) {
	pos := mustDecode(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")

	m := board.Move{From: board.E7, To: board.E8, Promotion: board.Queen}
	next := pos.Apply(m).(*board.Position)

	_, p, ok := next.Square(board.E8)
	require.True(t, ok)
	assert.Equal(t, board.Queen, p)
}

func TestApplyCastling(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	next := pos.Apply(board.Move{From: board.E1, To: board.G1}).(*board.Position)
	_, p, ok := next.Square(board.G1)
	require.True(t, ok)
	assert.Equal(t, board.King, p)
	_, rp, ok := next.Square(board.F1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, rp)
	assert.True(t, next.IsEmpty(board.H1))
	assert.Equal(t, board.Castling(0), next.Castling())

	next2 := pos.Apply(board.Move{From: board.E1, To: board.C1}).(*board.Position)
	_, p2, ok := next2.Square(board.C1)
	require.True(t, ok)
	assert.Equal(t, board.King, p2)
	_, rp2, ok := next2.Square(board.D1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, rp2)
	assert.True(t, next2.IsEmpty(board.A1))
}

func TestApplyRevokesCastlingOnRookCapture(t *testing.T) {
	pos := mustDecode(t, "4k2r/8/8/8/8/8/8/Q3K2R w KQk - 0 1")

	next := pos.Apply(board.Move{From: board.A1, To: board.H8}).(*board.Position)
	assert.False(t, next.Castling().IsAllowed(board.BlackKingSideCastle))
	assert.True(t, next.Castling().IsAllowed(board.WhiteKingSideCastle))
}

func TestIsChecked(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.False(t, pos.IsChecked(board.White))

	pos2 := mustDecode(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	assert.True(t, pos2.IsChecked(board.White))
}

func TestPin(t *testing.T) {
	// White king e1, white rook e2, black rook e8: the rook on e2 is pinned along the e-file.
	pos := mustDecode(t, "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")

	ray := pos.Pin(board.White, board.E2)
	assert.NotEqual(t, board.AllSquares, ray)
	assert.True(t, ray.IsSet(board.E8))
	assert.True(t, ray.IsSet(board.E3))
	assert.False(t, ray.IsSet(board.D2))

	// A rook off the pin line is unrestricted.
	other := mustDecode(t, "4r2k/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.Equal(t, board.AllSquares, other.Pin(board.White, board.D1))
}

func TestAttackers(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/3n4/8/8/4K3 w - - 0 1")
	attackers := pos.Attackers(board.Black, board.E2)
	assert.True(t, attackers.IsSet(board.D4))
}
