package board

import (
	"testing"
)

func square(t *testing.T, coord string) Square {
	t.Helper()
	sq, err := ParseSquare(coord)
	if err != nil {
		t.Fatalf("parse square %q: %v", coord, err)
	}
	return sq
}

func TestFromFenRejectsMalformedInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8 w - -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
	} {
		if _, err := FromFen(fen); err == nil {
			t.Errorf("expected an error for %q", fen)
		}
	}
}

func TestFromFenWithoutMoveCounters(t *testing.T) {
	b, err := FromFen("k7/8/8/3pP3/8/8/8/7K w - d6")
	if err != nil {
		t.Fatal(err)
	}
	file, ok := b.EnPassant()
	if !ok || file != FileD {
		t.Fatalf("expected en passant on the d-file, got %v %v", file, ok)
	}
}

func TestPieceAndColorLookup(t *testing.T) {
	b, err := FromFen(Startpos)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		coord string
		piece PieceType
		color Color
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"e2", Pawn, White},
		{"d8", Queen, Black},
		{"g8", Knight, Black},
		{"h7", Pawn, Black},
	}
	for _, c := range cases {
		sq := square(t, c.coord)
		piece, ok := b.PieceOn(sq)
		if !ok || piece != c.piece {
			t.Errorf("%s: expected piece %d, got %d (occupied=%v)", c.coord, c.piece, piece, ok)
		}
		color, ok := b.ColorOn(sq)
		if !ok || color != c.color {
			t.Errorf("%s: expected %v, got %v (occupied=%v)", c.coord, c.color, color, ok)
		}
	}

	if _, ok := b.PieceOn(square(t, "e4")); ok {
		t.Error("e4 should be empty")
	}
	if _, ok := b.ColorOn(square(t, "e4")); ok {
		t.Error("e4 should have no colour")
	}
	if b.SideToMove() != White {
		t.Error("white should be to move")
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("start position has no en passant file")
	}
}

func TestApplyTracksEnPassant(t *testing.T) {
	b, err := FromFen(Startpos)
	if err != nil {
		t.Fatal(err)
	}

	double, err := ParseMove(b, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	undoDouble := b.Apply(double)
	if file, ok := b.EnPassant(); !ok || file != FileE {
		t.Fatalf("after e2e4 expected en passant on the e-file, got %v %v", file, ok)
	}
	if b.SideToMove() != Black {
		t.Fatal("black should be to move after e2e4")
	}

	single, err := ParseMove(b, "g8f6")
	if err != nil {
		t.Fatal(err)
	}
	undoSingle := b.Apply(single)
	if _, ok := b.EnPassant(); ok {
		t.Fatal("en passant file should be cleared after a knight move")
	}

	undoSingle()
	if file, ok := b.EnPassant(); !ok || file != FileE {
		t.Fatalf("undo should restore the e-file, got %v %v", file, ok)
	}
	undoDouble()
	if _, ok := b.EnPassant(); ok {
		t.Fatal("undo should clear the en passant file")
	}
	if b.ToFen() == "" || b.SideToMove() != White {
		t.Fatal("undo should restore the start position")
	}
}

func TestParseMoveRejectsIllegal(t *testing.T) {
	b, err := FromFen(Startpos)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseMove(b, "e2e5"); err == nil {
		t.Fatal("e2e5 is not legal in the start position")
	}
	if _, err := ParseMove(b, "zz"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRelativeRank(t *testing.T) {
	if Rank6.RelativeTo(White) != Rank6 {
		t.Fatal("sixth rank for white is rank 6")
	}
	if Rank6.RelativeTo(Black) != Rank3 {
		t.Fatal("sixth rank for black is rank 3")
	}
	if got := NewSquare(FileD, Rank6.RelativeTo(Black)).String(); got != "d3" {
		t.Fatalf("expected d3, got %s", got)
	}
	if got := NewSquare(FileH, Rank8); got != 63 {
		t.Fatalf("expected h8 = 63, got %d", got)
	}
}
