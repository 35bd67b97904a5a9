package board

// Oracle is the Chess Board Oracle the tactical kernel (pkg/attackers, pkg/exchange,
// pkg/tactics, pkg/mistakes) is written against, and nothing else — it is defined here,
// alongside its reference implementation *Position, rather than in pkg/oracle, so that
// Position.Apply can return it without an import cycle; pkg/oracle re-exports it under
// its spec-facing name.
//
// Apply is the pure-functional "push" alternative: it returns the position after a
// hypothetical move rather than mutating the receiver or requiring copy/push/pop.
type Oracle interface {
	King(c Color) (Square, bool)
	Attackers(c Color, sq Square) Bitboard
	AttackersMask(c Color, sq Square) Bitboard
	AttacksMask(sq Square) Bitboard
	OccupiedCo(c Color) Bitboard
	PieceTypeAt(sq Square) Piece
	ColorAt(sq Square) (Color, bool)
	Pin(c Color, sq Square) Bitboard
	IsCapture(m Move) bool
	IsEnPassant(m Move) bool
	Apply(m Move) Oracle
}

var _ Oracle = (*Position)(nil)
