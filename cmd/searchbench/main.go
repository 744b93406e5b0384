package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"goose-ordering/board"
	"goose-ordering/engine"
	"goose-ordering/suite"
)

type benchResult struct {
	entry   suite.Entry
	result  engine.Result
	elapsed time.Duration
}

func main() {
	// --- Flags ---
	suiteFlag := flag.String("suite", "", "YAML suite of positions (empty = startpos)")
	depthFlag := flag.Int("depth", 0, "override the depth of every suite entry")
	threadsFlag := flag.Int("threads", runtime.NumCPU(), "positions searched in parallel")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *threadsFlag <= 0 {
		log.Fatalf("threads must be positive, got %d", *threadsFlag)
	}

	entries := []suite.Entry{{Name: "startpos", FEN: board.Startpos, Depth: suite.DefaultDepth}}
	if *suiteFlag != "" {
		var err error
		entries, err = suite.Load(*suiteFlag)
		if err != nil {
			log.Fatalf("could not load suite: %v", err)
		}
	}
	if *depthFlag > 0 {
		for i := range entries {
			entries[i].Depth = *depthFlag
		}
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	log.Printf("searchbench: %d positions, %d threads", len(entries), *threadsFlag)
	startAll := time.Now()
	results, err := runSuite(context.Background(), entries, *threadsFlag)
	if err != nil {
		log.Fatalf("searchbench: %v", err)
	}
	totalElapsed := time.Since(startAll)

	var totalNodes uint64
	for _, r := range results {
		bestMove := r.result.BestMove
		totalNodes += r.result.Nodes
		fmt.Printf("%s depth=%d bestmove %s score=%d nodes=%d firstcut=%.1f%% time=%v\n",
			aurora.Bold(fmt.Sprintf("%-20s", r.entry.Name)), r.result.Depth, bestMove.String(), r.result.Score,
			r.result.Nodes, 100*r.result.Stats.FirstMoveRate(), r.elapsed)
	}
	fmt.Printf("total nodes: %d  total time: %v\n", totalNodes, totalElapsed)

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

// runSuite searches every entry on its own board with its own Searcher.
// Results come back in suite order.
func runSuite(ctx context.Context, entries []suite.Entry, threads int) ([]benchResult, error) {
	results := make([]benchResult, len(entries))
	bar := newBar(len(entries), "searching")
	defer bar.Finish()

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range entries {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < threads; w++ {
		g.Go(func() error {
			searcher := engine.NewSearcher(nil)
			for i := range jobs {
				entry := entries[i]
				pos, err := entry.Board()
				if err != nil {
					return fmt.Errorf("%s: %w", entry.Name, err)
				}
				start := time.Now()
				result := searcher.Search(pos, engine.Limits{Depth: entry.Depth})
				results[i] = benchResult{entry: entry, result: result, elapsed: time.Since(start)}
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
