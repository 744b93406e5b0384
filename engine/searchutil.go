package engine

import (
	"fmt"
	"io"

	"goose-ordering/board"
)

// PVLine is the principal variation collected while unwinding the search.
type PVLine struct {
	Moves []board.Move
}

// Update replaces the line with move followed by the child's line.
func (pv *PVLine) Update(move board.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

func (pv *PVLine) Clone() PVLine {
	moves := make([]board.Move, len(pv.Moves))
	copy(moves, pv.Moves)
	return PVLine{Moves: moves}
}

// GetPVMove returns the first move of the line, or the zero move if empty.
func (pv *PVLine) GetPVMove() board.Move {
	if len(pv.Moves) == 0 {
		return 0
	}
	return pv.Moves[0]
}

func getPVLineString(pvLine PVLine) (theMoves string) {
	for _, move := range pvLine.Moves {
		theMoves += " "
		theMoves += move.String()
	}
	return theMoves
}

func getMateOrCPScore(score int) string {
	mateValue := int(MaxScore)
	mateThreshold := int(Checkmate)

	if score >= mateThreshold {
		pliesToMate := mateValue - score
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		mateInN := (pliesToMate + 1) / 2
		return fmt.Sprintf("mate %d", mateInN)
	} else if score <= -mateThreshold {
		pliesToMate := mateValue + score
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		mateInN := (pliesToMate + 1) / 2
		return fmt.Sprintf("mate %d", -mateInN)
	}

	return fmt.Sprintf("cp %d", score)
}

// DumpRootMoveOrdering writes the ordered legal moves of b as UCI info strings.
func DumpRootMoveOrdering(w io.Writer, b *board.Board) {
	ordering := NewMoveOrdering(b, b.GenerateLegalMoves())

	fmt.Fprintln(w, "info string move ordering", b.ToFen())
	for idx, entry := range ordering.Drain() {
		move := entry.Move()
		fmt.Fprintf(w, "info string #%d %s score=%d\n", idx+1, move.String(), entry.Score())
	}
}
