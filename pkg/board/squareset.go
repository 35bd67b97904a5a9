package board

// AllSquares is the full bitboard, used by Position.Pin as the "no pin" sentinel: a piece
// free to move along any ray at all (spec §6.1).
const AllSquares Bitboard = ^Bitboard(0)

// ToSquares returns the set bits as a slice of squares in ascending index order. Deterministic
// iteration order is relied on by attackers.LVA for reproducible tie-breaks (spec §4.1, §9).
func (b Bitboard) ToSquares() []Square {
	var ret []Square
	for b != 0 {
		sq := b.LastPopSquare()
		ret = append(ret, sq)
		b ^= BitMask(sq)
	}
	return ret
}

// Only returns true iff b contains exactly sq and nothing else. Used by the mistake
// classifiers to test "the only hanging piece is the one that just moved" without
// allocating via ToSquares.
func (b Bitboard) Only(sq Square) bool {
	return b == BitMask(sq)
}

// IsSameRankOrFile returns true iff the two squares share a rank or a file.
func IsSameRankOrFile(a, b Square) bool {
	return a.Rank() == b.Rank() || a.File() == b.File()
}

// IsSameDiagonal returns true iff the two squares lie on a common diagonal.
func IsSameDiagonal(a, b Square) bool {
	dr := int(a.Rank()) - int(b.Rank())
	df := int(a.File()) - int(b.File())
	if dr < 0 {
		dr = -dr
	}
	if df < 0 {
		df = -df
	}
	return dr == df && dr != 0
}
