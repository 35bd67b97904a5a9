package board

import (
	"fmt"
	"strings"
)

// Placement is a single piece placed on a square, used to build a Position.
type Placement struct {
	Square Square
	Color  Color
	Piece  Piece
}

// Position is an immutable chess position: piece placement, castling rights and the
// en passant target square. It is the reference implementation of the Board Oracle
// (pkg/oracle.Board): every exported method below is either an accessor or Apply, which
// returns a new Position rather than mutating the receiver. A Position is safe to share
// read-only across goroutines once constructed.
type Position struct {
	pieces  [NumColors][NumPiece]Bitboard // pieces[c][NoPiece] is the union of all of c's pieces.
	rotated RotatedBitboard               // combined occupancy of both colors.

	castling Castling

	enpassant    Square
	hasEnPassant bool
}

// NewPosition constructs a Position from an explicit piece placement, castling rights and
// en passant target square. It rejects placements with duplicate squares, a missing or
// duplicated king for either color, or kings placed adjacent to each other.
func NewPosition(placements []Placement, castling Castling, enpassant Square, hasEnPassant bool) (*Position, error) {
	pos := &Position{castling: castling, enpassant: enpassant, hasEnPassant: hasEnPassant}

	seen := EmptyBitboard
	for _, p := range placements {
		if !p.Square.IsValid() {
			return nil, fmt.Errorf("invalid square: %v", p.Square)
		}
		if !p.Piece.IsValid() {
			return nil, fmt.Errorf("invalid piece: %v", p.Piece)
		}
		if seen.IsSet(p.Square) {
			return nil, fmt.Errorf("duplicate placement at %v", p.Square)
		}
		seen |= BitMask(p.Square)
		pos.xor(p.Square, p.Color, p.Piece)
	}

	for c := ZeroColor; c < NumColors; c++ {
		switch pos.pieces[c][King].PopCount() {
		case 0:
			return nil, fmt.Errorf("missing %v king", c)
		case 1:
			// ok
		default:
			return nil, fmt.Errorf("multiple %v kings", c)
		}
	}

	wk := pos.pieces[White][King].LastPopSquare()
	bk := pos.pieces[Black][King].LastPopSquare()
	if KingAttackboard(wk).IsSet(bk) {
		return nil, fmt.Errorf("kings adjacent: %v, %v", wk, bk)
	}

	return pos, nil
}

// xor toggles the presence of a (color, piece) at sq in both the per-piece and the
// per-color union bitboards, as well as the combined rotated occupancy.
func (p *Position) xor(sq Square, c Color, piece Piece) {
	p.rotated = p.rotated.Xor(sq)
	p.pieces[c][NoPiece] ^= BitMask(sq)
	p.pieces[c][piece] ^= BitMask(sq)
}

func (p *Position) clone() *Position {
	cp := *p
	return &cp
}

// Castling returns the current castling rights.
func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the en passant target square, if any.
func (p *Position) EnPassant() (Square, bool) {
	return p.enpassant, p.hasEnPassant
}

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.rotated.Mask()
}

// OccupiedCo returns the union of squares occupied by the given color.
func (p *Position) OccupiedCo(c Color) Bitboard {
	return p.pieces[c][NoPiece]
}

// Color is a convenience alias for OccupiedCo, matching the idiom of naming the
// occupancy query after the side whose pieces it returns.
func (p *Position) Color(c Color) Bitboard {
	return p.OccupiedCo(c)
}

// Piece returns the bitboard of the given color's pieces of the given kind.
func (p *Position) Piece(c Color, piece Piece) Bitboard {
	return p.pieces[c][piece]
}

// Rotated returns the combined rotated occupancy, for direct slider-attack lookups.
func (p *Position) Rotated() RotatedBitboard {
	return p.rotated
}

// IsEmpty returns true iff no piece occupies sq.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.rotated.Mask().IsSet(sq)
}

// Square returns the occupant of sq, if any.
func (p *Position) Square(sq Square) (Color, Piece, bool) {
	if p.IsEmpty(sq) {
		return ZeroColor, NoPiece, false
	}
	for c := ZeroColor; c < NumColors; c++ {
		if !p.pieces[c][NoPiece].IsSet(sq) {
			continue
		}
		for piece := ZeroPiece; piece < NumPiece; piece++ {
			if p.pieces[c][piece].IsSet(sq) {
				return c, piece, true
			}
		}
	}
	return ZeroColor, NoPiece, false
}

// PieceTypeAt returns the piece kind at sq, or NoPiece if empty.
func (p *Position) PieceTypeAt(sq Square) Piece {
	_, piece, _ := p.Square(sq)
	return piece
}

// ColorAt returns the occupant's color at sq. The second return is false if sq is empty.
func (p *Position) ColorAt(sq Square) (Color, bool) {
	c, _, ok := p.Square(sq)
	return c, ok
}

// King returns the square of the given color's king.
func (p *Position) King(c Color) (Square, bool) {
	bb := p.pieces[c][King]
	if bb == EmptyBitboard {
		return ZeroSquare, false
	}
	return bb.LastPopSquare(), true
}

// Attackers returns the pseudo-legal attackers of sq belonging to color c, ignoring
// whether the attacking side is itself pinned or in check (spec §4.1, §6.1).
func (p *Position) Attackers(c Color, sq Square) Bitboard {
	var ret Bitboard

	ret |= KnightAttackboard(sq) & p.pieces[c][Knight]
	ret |= KingAttackboard(sq) & p.pieces[c][King]
	ret |= BishopAttackboard(p.rotated, sq) & (p.pieces[c][Bishop] | p.pieces[c][Queen])
	ret |= RookAttackboard(p.rotated, sq) & (p.pieces[c][Rook] | p.pieces[c][Queen])

	// A pawn of color c attacks sq iff sq is one of the squares c's pawns capture onto
	// from their own square; equivalently, sq is attacked from wherever a pawn of the
	// opposite direction, sitting on sq, would capture onto -- reversed.
	ret |= PawnCaptureboard(c.Opponent(), BitMask(sq)) & p.pieces[c][Pawn]

	return ret
}

// AttackersMask is an alias for Attackers, present to match the Board Oracle interface's
// naming of the bitmap-returning query distinctly from the square-set-returning one.
func (p *Position) AttackersMask(c Color, sq Square) Bitboard {
	return p.Attackers(c, sq)
}

// AttacksMask returns the squares attacked by whatever piece occupies sq, regardless of
// color. Returns the empty bitboard if sq is empty.
func (p *Position) AttacksMask(sq Square) Bitboard {
	c, piece, ok := p.Square(sq)
	if !ok {
		return EmptyBitboard
	}
	switch piece {
	case Pawn:
		return PawnCaptureboard(c, BitMask(sq))
	case Knight:
		return KnightAttackboard(sq)
	case Bishop:
		return BishopAttackboard(p.rotated, sq)
	case Rook:
		return RookAttackboard(p.rotated, sq)
	case Queen:
		return QueenAttackboard(p.rotated, sq)
	case King:
		return KingAttackboard(sq)
	default:
		return EmptyBitboard
	}
}

// IsAttacked returns true iff sq is attacked by the given color.
func (p *Position) IsAttacked(c Color, sq Square) bool {
	return p.Attackers(c, sq) != EmptyBitboard
}

// IsChecked returns true iff the given color's king is currently in check.
func (p *Position) IsChecked(c Color) bool {
	k, ok := p.King(c)
	if !ok {
		return false
	}
	return p.IsAttacked(c.Opponent(), k)
}

// Pin returns the ray of squares a piece of color c on sq may legally move along without
// exposing its own king to check, or AllSquares if sq holds no absolute pin (spec §6.1).
// The ray includes the pinning attacker's square (capturing it relieves the pin) and every
// empty square between the king and the attacker, but not the king's own square.
func (p *Position) Pin(c Color, sq Square) Bitboard {
	king, ok := p.King(c)
	if !ok {
		return AllSquares
	}

	sameLine := IsSameRankOrFile(sq, king)
	sameDiag := IsSameDiagonal(sq, king)
	if !sameLine && !sameDiag {
		return AllSquares
	}

	without := p.rotated.Xor(sq)

	var before, after, enemySliders Bitboard
	if sameLine {
		before = RookAttackboard(p.rotated, king)
		after = RookAttackboard(without, king)
		enemySliders = p.pieces[c.Opponent()][Rook] | p.pieces[c.Opponent()][Queen]
	} else {
		before = BishopAttackboard(p.rotated, king)
		after = BishopAttackboard(without, king)
		enemySliders = p.pieces[c.Opponent()][Bishop] | p.pieces[c.Opponent()][Queen]
	}

	revealed := after &^ before
	attacker := revealed & enemySliders
	if attacker == EmptyBitboard {
		return AllSquares
	}

	return rayInclusive(king, attacker.LastPopSquare())
}

// rayInclusive returns the squares strictly between from and to, plus to itself, assuming
// from and to are aligned on a rank, file or diagonal. from itself is excluded.
func rayInclusive(from, to Square) Bitboard {
	dr := sign(int(to.Rank()) - int(from.Rank()))
	df := sign(int(to.File()) - int(from.File()))

	var ret Bitboard
	r, f := int(from.Rank())+dr, int(from.File())+df
	for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
		sq := NewSquare(File(f), Rank(r))
		ret |= BitMask(sq)
		if sq == to {
			break
		}
		r += dr
		f += df
	}
	return ret
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsEnPassant returns true iff m is an en passant capture.
func (p *Position) IsEnPassant(m Move) bool {
	ep, ok := p.EnPassant()
	if !ok || m.To != ep {
		return false
	}
	_, piece, present := p.Square(m.From)
	return present && piece == Pawn && p.IsEmpty(m.To) && m.From.File() != m.To.File()
}

// IsCapture returns true iff m captures a piece, including en passant.
func (p *Position) IsCapture(m Move) bool {
	if !p.IsEmpty(m.To) {
		return true
	}
	return p.IsEnPassant(m)
}

// Apply returns the position after playing m, without validating m's legality beyond
// requiring that From holds a piece (spec §6.1, §7: callers supply plausible moves). It
// updates piece placement, handles en passant and castling-rook movement, and recomputes
// castling rights and the en passant target square. If From is empty, Apply returns an
// unchanged copy.
func (p *Position) Apply(m Move) Oracle {
	color, piece, ok := p.Square(m.From)
	if !ok {
		return p.clone()
	}

	isEP := p.IsEnPassant(m)
	capColor, capPiece, hasCapture := p.Square(m.To)

	next := p.clone()
	next.xor(m.From, color, piece)

	if isEP {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		next.xor(capSq, color.Opponent(), Pawn)
	} else if hasCapture {
		next.xor(m.To, capColor, capPiece)
	}

	placed := piece
	if piece == Pawn && BitMask(m.To)&PawnPromotionRank(color) != EmptyBitboard && m.Promotion.IsValid() {
		placed = m.Promotion
	}
	next.xor(m.To, color, placed)

	if piece == King {
		delta := int(m.To.File()) - int(m.From.File())
		if delta == 2 || delta == -2 {
			rank := m.From.Rank()
			var rookFrom, rookTo Square
			if delta < 0 {
				rookFrom = NewSquare(FileH, rank)
				rookTo = NewSquare(File(int(m.To.File())+1), rank)
			} else {
				rookFrom = NewSquare(FileA, rank)
				rookTo = NewSquare(File(int(m.To.File())-1), rank)
			}
			if _, rp, ok := next.Square(rookFrom); ok && rp == Rook {
				next.xor(rookFrom, color, Rook)
				next.xor(rookTo, color, Rook)
			}
		}
	}

	next.castling = nextCastling(p.castling, color, piece, m.From, capPiece, m.To, hasCapture && !isEP)

	next.hasEnPassant = false
	next.enpassant = ZeroSquare
	if piece == Pawn {
		dr := int(m.To.Rank()) - int(m.From.Rank())
		if dr == 2 || dr == -2 {
			mid := (int(m.From.Rank()) + int(m.To.Rank())) / 2
			next.enpassant = NewSquare(m.From.File(), Rank(mid))
			next.hasEnPassant = true
		}
	}

	return next
}

func nextCastling(c Castling, mover Color, moverPiece Piece, from Square, captured Piece, to Square, didCapture bool) Castling {
	if moverPiece == King {
		if mover == White {
			c = c.Without(WhiteKingSideCastle | WhiteQueenSideCastle)
		} else {
			c = c.Without(BlackKingSideCastle | BlackQueenSideCastle)
		}
	}
	if moverPiece == Rook {
		c = c.Without(rightForRookSquare(from))
	}
	if didCapture && captured == Rook {
		c = c.Without(rightForRookSquare(to))
	}
	return c
}

func rightForRookSquare(sq Square) Castling {
	switch sq {
	case NewSquare(FileH, Rank1):
		return WhiteKingSideCastle
	case NewSquare(FileA, Rank1):
		return WhiteQueenSideCastle
	case NewSquare(FileH, Rank8):
		return BlackKingSideCastle
	case NewSquare(FileA, Rank8):
		return BlackQueenSideCastle
	default:
		return 0
	}
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; ; f-- {
			sq := NewSquare(f, r)
			c, piece, ok := p.Square(sq)
			if !ok {
				sb.WriteRune('.')
			} else if c == White {
				sb.WriteString(strings.ToUpper(piece.String()))
			} else {
				sb.WriteString(piece.String())
			}
			if f == ZeroFile {
				break
			}
		}
		sb.WriteRune('\n')
		if r == ZeroRank {
			break
		}
	}
	return sb.String()
}
