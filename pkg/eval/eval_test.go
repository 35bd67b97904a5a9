package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
)

func TestNominalValue(t *testing.T) {
	tests := []struct {
		piece    board.Piece
		expected eval.Pawns
	}{
		{board.Pawn, 1},
		{board.Knight, 3},
		{board.Bishop, 3},
		{board.Rook, 5},
		{board.Queen, 9},
		{board.King, 1000},
		{board.NoPiece, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, eval.NominalValue(tt.piece))
	}
}
