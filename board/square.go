package board

import (
	"errors"

	"github.com/dylhunn/dragontoothmg"
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colourless piece kind. Values match dragontoothmg.Piece.
type PieceType uint8

const (
	NoPiece PieceType = 0
	Pawn    = PieceType(dragontoothmg.Pawn)
	Knight  = PieceType(dragontoothmg.Knight)
	Bishop  = PieceType(dragontoothmg.Bishop)
	Rook    = PieceType(dragontoothmg.Rook)
	Queen   = PieceType(dragontoothmg.Queen)
	King    = PieceType(dragontoothmg.King)
)

type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RelativeTo maps a rank given from White's point of view to the same rank
// seen from c, so Rank6.RelativeTo(Black) is Rank3.
func (r Rank) RelativeTo(c Color) Rank {
	if c == Black {
		return Rank8 - r
	}
	return r
}

// Square indexes the board a1=0, b1=1, ..., h8=63.
type Square uint8

func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

func (sq Square) File() File { return File(sq & 7) }
func (sq Square) Rank() Rank { return Rank(sq >> 3) }

// Bitboard returns the single-bit mask of sq.
func (sq Square) Bitboard() uint64 { return uint64(1) << sq }

func (sq Square) String() string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid algebraic square length")
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errors.New("invalid algebraic square")
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}
