package engine

import (
	"math/bits"

	"goose-ordering/board"
)

// Piece base values, indexed by board.PieceType.
var pieceValue = [7]int32{
	board.King: 0, board.Pawn: 100, board.Knight: 316, board.Bishop: 331, board.Rook: 494, board.Queen: 993,
}

// Evaluation is a plain material count from the side to move's point of view.
func Evaluation(b *board.Board) int32 {
	white := material(b.Bitboards(board.White))
	black := material(b.Bitboards(board.Black))
	if b.SideToMove() == board.Black {
		return black - white
	}
	return white - black
}

func material(bb board.Bitboards) int32 {
	var score int32
	score += int32(bits.OnesCount64(bb.Pawns)) * pieceValue[board.Pawn]
	score += int32(bits.OnesCount64(bb.Knights)) * pieceValue[board.Knight]
	score += int32(bits.OnesCount64(bb.Bishops)) * pieceValue[board.Bishop]
	score += int32(bits.OnesCount64(bb.Rooks)) * pieceValue[board.Rook]
	score += int32(bits.OnesCount64(bb.Queens)) * pieceValue[board.Queen]
	return score
}
