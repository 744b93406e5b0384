package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Startpos is the standard initial position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Move is the 16-bit dragontoothmg move encoding (from, to, promotion).
type Move = dragontoothmg.Move

// Bitboards holds the per-piece occupancy of one side.
type Bitboards = dragontoothmg.Bitboards

// Board wraps a dragontoothmg board and tracks the en-passant file, which
// the underlying type keeps unexported.
type Board struct {
	inner     dragontoothmg.Board
	epFile    File
	epPresent bool
}

// FromFen parses a FEN string. The halfmove and fullmove fields may be omitted.
func FromFen(fen string) (b *Board, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("fen %q: expected 4 to 6 fields, got %d", fen, len(fields))
	}
	if strings.Count(fields[0], "/") != 7 {
		return nil, fmt.Errorf("fen %q: piece placement must have 8 ranks", fen)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}
	epFile, epPresent, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, fmt.Errorf("fen %q: %w", fen, err)
	}
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	// dragontoothmg panics on malformed placement strings.
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("fen %q: %v", fen, r)
		}
	}()
	b = &Board{
		inner:     dragontoothmg.ParseFen(strings.Join(fields, " ")),
		epFile:    epFile,
		epPresent: epPresent,
	}
	return b, nil
}

func parseEnPassant(field string) (File, bool, error) {
	if field == "-" {
		return 0, false, nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return 0, false, fmt.Errorf("en passant: %w", err)
	}
	if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
		return 0, false, errors.New("en passant square must be on the third or sixth rank")
	}
	return sq.File(), true, nil
}

// PieceOn returns the kind of piece on sq, if any.
func (b *Board) PieceOn(sq Square) (PieceType, bool) {
	if pt, ok := pieceTypeAt(sq, &b.inner.White); ok {
		return pt, true
	}
	return pieceTypeAt(sq, &b.inner.Black)
}

// ColorOn returns the owner of the piece on sq, if any.
func (b *Board) ColorOn(sq Square) (Color, bool) {
	mask := sq.Bitboard()
	switch {
	case b.inner.White.All&mask != 0:
		return White, true
	case b.inner.Black.All&mask != 0:
		return Black, true
	}
	return White, false
}

func (b *Board) SideToMove() Color {
	if b.inner.Wtomove {
		return White
	}
	return Black
}

// EnPassant returns the file of a pawn that can be captured en passant this ply.
func (b *Board) EnPassant() (File, bool) {
	return b.epFile, b.epPresent
}

// Bitboards returns the piece bitboards of the given side.
func (b *Board) Bitboards(c Color) Bitboards {
	if c == White {
		return b.inner.White
	}
	return b.inner.Black
}

func (b *Board) GenerateLegalMoves() []Move {
	return b.inner.GenerateLegalMoves()
}

// Apply plays m and returns a closure restoring the previous position.
func (b *Board) Apply(m Move) func() {
	prevFile, prevPresent := b.epFile, b.epPresent

	from, to := Square(m.From()), Square(m.To())
	pt, _ := b.PieceOn(from)
	if pt == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		b.epFile, b.epPresent = from.File(), true
	} else {
		b.epFile, b.epPresent = 0, false
	}

	unapply := b.inner.Apply(m)
	return func() {
		unapply()
		b.epFile, b.epPresent = prevFile, prevPresent
	}
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.inner.OurKingInCheck()
}

func (b *Board) Hash() uint64 {
	return b.inner.Hash()
}

func (b *Board) ToFen() string {
	return b.inner.ToFen()
}

// ParseMove resolves a UCI move string (e2e4, e7e8q) against the legal moves of b.
func ParseMove(b *Board, uci string) (Move, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	legalMoves := b.GenerateLegalMoves()
	for _, mv := range legalMoves {
		if mv.String() == uci {
			return mv, nil
		}
	}
	parsed, err := ParseUCI(uci)
	if err != nil {
		return 0, err
	}
	for _, mv := range legalMoves {
		if mv.From() == parsed.From() && mv.To() == parsed.To() && mv.Promote() == parsed.Promote() {
			return mv, nil
		}
	}
	return 0, fmt.Errorf("move %q is not legal in %s", uci, b.ToFen())
}

// ParseUCI decodes a UCI move string without checking it against any position.
func ParseUCI(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return 0, fmt.Errorf("move %q: invalid length", uci)
	}
	for _, coord := range []string{uci[0:2], uci[2:4]} {
		if _, err := ParseSquare(coord); err != nil {
			return 0, fmt.Errorf("move %q: %w", uci, err)
		}
	}
	if len(uci) == 5 && !strings.ContainsRune("qrbn", rune(uci[4])) {
		return 0, fmt.Errorf("move %q: invalid promotion piece", uci)
	}
	m, err := dragontoothmg.ParseMove(uci)
	if err != nil {
		return 0, fmt.Errorf("move %q: %w", uci, err)
	}
	return m, nil
}

func pieceTypeAt(sq Square, bitboards *Bitboards) (PieceType, bool) {
	mask := sq.Bitboard()
	switch {
	case bitboards.Pawns&mask != 0:
		return Pawn, true
	case bitboards.Knights&mask != 0:
		return Knight, true
	case bitboards.Bishops&mask != 0:
		return Bishop, true
	case bitboards.Rooks&mask != 0:
		return Rook, true
	case bitboards.Queens&mask != 0:
		return Queen, true
	case bitboards.Kings&mask != 0:
		return King, true
	}
	return NoPiece, false
}
