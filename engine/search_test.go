package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"goose-ordering/board"
)

func TestSearchFindsMateInOne(t *testing.T) {
	b := parseBoard(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	mate := parseMove(t, b, "a1a8")

	result := NewSearcher(nil).Search(b, Limits{Depth: 3})
	if result.BestMove != mate {
		bestMove := result.BestMove
		t.Fatalf("expected a1a8, got %s", bestMove.String())
	}
	if result.Score <= Checkmate {
		t.Fatalf("expected a mate score, got %d", result.Score)
	}
	if got := getMateOrCPScore(int(result.Score)); got != "mate 1" {
		t.Fatalf("expected mate 1, got %q", got)
	}
}

func TestSearchTakesHangingQueen(t *testing.T) {
	b := parseBoard(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	capture := parseMove(t, b, "e4d5")

	result := NewSearcher(nil).Search(b, Limits{Depth: 2})
	if result.BestMove != capture {
		bestMove := result.BestMove
		t.Fatalf("expected e4d5, got %s", bestMove.String())
	}
	if result.Score <= 0 {
		t.Fatalf("expected a winning score, got %d", result.Score)
	}
	if result.Nodes == 0 {
		t.Fatal("expected the node counter to move")
	}
}

func TestSearchStalemate(t *testing.T) {
	b := parseBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	result := NewSearcher(nil).Search(b, Limits{Depth: 3})
	if result.BestMove != 0 || result.Score != DrawScore {
		t.Fatalf("expected no move and a draw, got move %d score %d", result.BestMove, result.Score)
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := parseBoard(t, fen)
	before := b.ToFen()
	NewSearcher(nil).Search(b, Limits{Depth: 2})
	if after := b.ToFen(); after != before {
		t.Fatalf("search changed the board: %s -> %s", before, after)
	}
}

func TestSearchWritesInfoLines(t *testing.T) {
	var out bytes.Buffer
	b := parseBoard(t, board.Startpos)
	NewSearcher(&out).Search(b, Limits{Depth: 2})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one info line per depth, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "info depth 1 score cp") || !strings.Contains(lines[1], " pv ") {
		t.Fatalf("unexpected info output %q", out.String())
	}
}

func TestSearchRespectsMoveTime(t *testing.T) {
	b := parseBoard(t, board.Startpos)
	start := time.Now()
	result := NewSearcher(nil).Search(b, Limits{MoveTime: 50 * time.Millisecond})
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("search ignored its deadline, ran for %v", elapsed)
	}
	if result.Depth == 0 || result.BestMove == 0 {
		t.Fatalf("expected a completed iteration, got depth %d", result.Depth)
	}
}

func TestDumpRootMoveOrdering(t *testing.T) {
	var out bytes.Buffer
	b := parseBoard(t, "4k3/8/8/3r4/8/4N3/P7/4K3 w - - 0 1")
	DumpRootMoveOrdering(&out, b)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(b.GenerateLegalMoves())+1 {
		t.Fatalf("expected a header and one line per move, got %d lines", len(lines))
	}
	if lines[1] != "info string #1 e3d5 score=10240" {
		t.Fatalf("expected the rook capture first, got %q", lines[1])
	}
}

func TestEvaluationIsSideRelative(t *testing.T) {
	white := parseBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := parseBoard(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	if Evaluation(white) != pieceValue[board.Queen] {
		t.Fatalf("expected +%d for white, got %d", pieceValue[board.Queen], Evaluation(white))
	}
	if Evaluation(black) != -pieceValue[board.Queen] {
		t.Fatalf("expected -%d for black, got %d", pieceValue[board.Queen], Evaluation(black))
	}
}
