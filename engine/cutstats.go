package engine

import (
	"fmt"
	"io"
)

// CutStatistics counts cutoffs during one search. FirstMoveCutoffs out of
// BetaCutoffs measures how often the ordering put the refutation first.
type CutStatistics struct {
	BetaCutoffs      uint64
	FirstMoveCutoffs uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

// FirstMoveRate is the share of beta cutoffs produced by the first move tried.
func (c CutStatistics) FirstMoveRate() float64 {
	if c.BetaCutoffs == 0 {
		return 0
	}
	return float64(c.FirstMoveCutoffs) / float64(c.BetaCutoffs)
}

func DumpCutStats(w io.Writer, cutStats CutStatistics) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", cutStats.BetaCutoffs)
	fmt.Fprintf(w, "info string   First move cutoffs: %d (%.1f%%)\n", cutStats.FirstMoveCutoffs, 100*cutStats.FirstMoveRate())
	fmt.Fprintf(w, "info string   QStandPat cutoffs: %d\n", cutStats.QStandPatCutoffs)
	fmt.Fprintf(w, "info string   QBeta cutoffs: %d\n", cutStats.QBetaCutoffs)
}
