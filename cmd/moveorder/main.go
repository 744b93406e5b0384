package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"

	"goose-ordering/board"
	"goose-ordering/engine"
)

func main() {
	fen := flag.String("fen", board.Startpos, "FEN string (defaults to initial position)")
	color := flag.Bool("color", true, "Highlight captures in colour")
	flag.Parse()

	pos, err := board.FromFen(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFen error: %v\n", err)
		os.Exit(2)
	}

	au := aurora.NewAurora(*color)
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		fmt.Println(au.Yellow("no legal moves"))
		return
	}

	fmt.Printf("%s to move, %d legal moves\n", au.Bold(pos.SideToMove().String()), len(moves))
	for idx, entry := range engine.NewMoveOrdering(pos, moves).Drain() {
		move := entry.Move()
		line := fmt.Sprintf("#%-3d %-6s %6d", idx+1, move.String(), entry.Score())
		if entry.Score() > 0 {
			fmt.Println(au.Green(line))
		} else {
			fmt.Println(line)
		}
	}
}
