package engine

import (
	"fmt"
	"io"
	"time"

	"goose-ordering/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

const MaxDepth = 100

// Limits bounds one search. Depth 0 means MaxDepth; MoveTime 0 means no clock.
type Limits struct {
	Depth    int
	MoveTime time.Duration
}

type Result struct {
	BestMove board.Move
	Score    int32
	Depth    int
	Nodes    uint64
	PV       PVLine
	Stats    CutStatistics
}

// Searcher runs a negamax alpha-beta search that visits moves in the order
// given by MoveOrdering. A Searcher owns all of its state; run one per goroutine.
type Searcher struct {
	// Output receives UCI "info" lines; nil discards them.
	Output io.Writer

	nodesChecked uint64
	cutStats     CutStatistics
	timeHandler  TimeHandler
	stop         bool
}

func NewSearcher(output io.Writer) *Searcher {
	return &Searcher{Output: output}
}

func (s *Searcher) Search(b *board.Board, limits Limits) Result {
	depth := limits.Depth
	if depth <= 0 || depth > MaxDepth {
		depth = MaxDepth
	}

	s.nodesChecked = 0
	s.cutStats = CutStatistics{}
	s.stop = false
	s.timeHandler.initTimemanagement(limits.MoveTime)

	var result Result
	var pvLine PVLine
	for i := 1; i <= depth; i++ {
		pvLine.Clear()

		startTime := time.Now()
		score := s.alphabeta(b, -MaxScore, MaxScore, int8(i), 0, &pvLine)
		timeSpent := time.Since(startTime).Milliseconds()

		// An interrupted iteration is only used when nothing else was found.
		if s.stop && result.Depth > 0 {
			break
		}

		result.Score = score
		result.Depth = i
		result.PV = pvLine.Clone()
		result.BestMove = pvLine.GetPVMove()

		if timeSpent == 0 {
			timeSpent = 1
		}
		if s.Output != nil {
			fmt.Fprintln(s.Output,
				"info depth", i,
				"score", getMateOrCPScore(int(score)),
				"nodes", s.nodesChecked,
				"time", timeSpent,
				"nps", s.nodesChecked*1000/uint64(timeSpent),
				"pv"+getPVLineString(pvLine),
			)
		}

		if s.stop || len(pvLine.Moves) == 0 || score > Checkmate || score < -Checkmate {
			break
		}
	}
	result.Nodes = s.nodesChecked
	result.Stats = s.cutStats
	return result
}

func (s *Searcher) alphabeta(b *board.Board, alpha int32, beta int32, depth int8, ply int8, pvLine *PVLine) int32 {
	s.nodesChecked++
	if s.nodesChecked&2047 == 0 && s.timeHandler.TimeStatus() {
		s.stop = true
	}
	if s.stop {
		return 0
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.InCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	if depth <= 0 || ply >= MaxDepth {
		return s.quiescence(b, alpha, beta, ply, moves)
	}

	var childPVLine PVLine
	ordering := NewMoveOrdering(b, moves)
	for movesSearched := 0; ; movesSearched++ {
		entry, ok := ordering.Next()
		if !ok {
			break
		}
		move := entry.Move()

		unapply := b.Apply(move)
		score := -s.alphabeta(b, -beta, -alpha, depth-1, ply+1, &childPVLine)
		unapply()

		if s.stop {
			return 0
		}
		if score >= beta {
			s.cutStats.BetaCutoffs++
			if movesSearched == 0 {
				s.cutStats.FirstMoveCutoffs++
			}
			return beta
		}
		if score > alpha {
			alpha = score
			pvLine.Update(move, childPVLine)
		}
		childPVLine.Clear()
	}
	return alpha
}

// quiescence only follows captures. The ordering puts them ahead of every
// quiet move, so the loop stops at the first zero score.
func (s *Searcher) quiescence(b *board.Board, alpha int32, beta int32, ply int8, moves []board.Move) int32 {
	standPat := Evaluation(b)
	if standPat >= beta {
		s.cutStats.QStandPatCutoffs++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= MaxDepth {
		return alpha
	}

	ordering := NewMoveOrdering(b, moves)
	for {
		entry, ok := ordering.Next()
		if !ok || entry.Score() == 0 {
			break
		}

		unapply := b.Apply(entry.Move())
		s.nodesChecked++
		var score int32
		if replies := b.GenerateLegalMoves(); len(replies) == 0 {
			score = -s.terminalScore(b, ply+1)
		} else {
			score = -s.quiescence(b, -beta, -alpha, ply+1, replies)
		}
		unapply()

		if score >= beta {
			s.cutStats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (s *Searcher) terminalScore(b *board.Board, ply int8) int32 {
	if b.InCheck() {
		return -MaxScore + int32(ply)
	}
	return DrawScore
}
