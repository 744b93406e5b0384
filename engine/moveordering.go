package engine

import (
	"golang.org/x/exp/slices"

	"goose-ordering/board"
)

// Position is the read-only view of a board that move scoring needs.
type Position interface {
	PieceOn(sq board.Square) (board.PieceType, bool)
	ColorOn(sq board.Square) (board.Color, bool)
	SideToMove() board.Color
	EnPassant() (board.File, bool)
}

/*
	Move scoring
	- Every capture gets captureOffset, so captures are always tried before quiet moves.
	- On top of that the victim decides the order (most valuable victim first). The capturing
	  piece is ignored, and so are ties between captures of the same victim.
	- En passant always takes a pawn, so it scores exactly like any other pawn capture.
*/
var captureOffset int16 = 8192

var victimValue = [7]int16{
	board.NoPiece: 0,
	board.Pawn:    0,
	board.Knight:  1024,
	board.Bishop:  1280,
	board.Rook:    2048,
	board.Queen:   4096,
	board.King:    0,
}

// ScoreMove returns the ordering priority of m in pos. m is assumed legal.
func ScoreMove(pos Position, m board.Move) int16 {
	from, to := board.Square(m.From()), board.Square(m.To())
	us := pos.SideToMove()

	if victim, occupied := pos.PieceOn(to); occupied {
		if color, ok := pos.ColorOn(to); ok && color != us {
			return captureOffset + victimValue[victim]
		}
		return 0
	}

	if file, ok := pos.EnPassant(); ok {
		epSquare := board.NewSquare(file, board.Rank6.RelativeTo(us))
		if to == epSquare {
			if mover, _ := pos.PieceOn(from); mover == board.Pawn {
				return captureOffset
			}
		}
	}
	return 0
}

// ScoredMove pairs a move with its ordering score.
type ScoredMove struct {
	move  board.Move
	score int16
}

func NewScoredMove(pos Position, m board.Move) ScoredMove {
	return ScoredMove{move: m, score: ScoreMove(pos, m)}
}

func (sm ScoredMove) Move() board.Move { return sm.move }
func (sm ScoredMove) Score() int16     { return sm.score }

// compareScore orders scored moves by score alone; the move never breaks a tie.
func compareScore(a, b ScoredMove) int {
	switch {
	case a.score < b.score:
		return -1
	case a.score > b.score:
		return 1
	}
	return 0
}

// MoveOrdering hands out the moves of one search node best-first. It is
// drained once and must not be shared between goroutines.
type MoveOrdering struct {
	moves []ScoredMove
}

// NewMoveOrdering scores every move once and sorts them by descending score.
// Moves with equal scores come out in no particular order.
func NewMoveOrdering(pos Position, moves []board.Move) *MoveOrdering {
	ordering := &MoveOrdering{moves: make([]ScoredMove, len(moves))}
	for i, m := range moves {
		ordering.moves[i] = NewScoredMove(pos, m)
	}
	slices.SortFunc(ordering.moves, func(a, b ScoredMove) int {
		return compareScore(b, a)
	})
	return ordering
}

// Len returns the number of moves not yet handed out.
func (o *MoveOrdering) Len() int { return len(o.moves) }

// Next pops the best remaining move. It reports false once the ordering is exhausted.
func (o *MoveOrdering) Next() (ScoredMove, bool) {
	if len(o.moves) == 0 {
		return ScoredMove{}, false
	}
	next := o.moves[0]
	o.moves = o.moves[1:]
	return next, true
}

// Drain hands the remaining moves to the caller and leaves the ordering empty.
func (o *MoveOrdering) Drain() []ScoredMove {
	moves := o.moves
	o.moves = nil
	return moves
}
