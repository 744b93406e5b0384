package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"goose-ordering/board"
	"goose-ordering/engine"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	pos, _ := board.FromFen(board.Startpos) // the game board
	searcher := engine.NewSearcher(out)
	var printCutStats = false

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "moveordering":
			engine.DumpRootMoveOrdering(out, pos)
		case "cutstats":
			printCutStats = true
		case "uci":
			fmt.Fprintln(out, "id name GooseOrdering 0.1")
			fmt.Fprintln(out, "id author Goose")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			pos, _ = board.FromFen(board.Startpos)
		case "quit":
			return
		case "go":
			limits, err := parseGo(tokens[1:], pos.SideToMove())
			if err != nil {
				fmt.Fprintln(out, "info string Malformed go command:", err)
				continue
			}
			result := searcher.Search(pos, limits)
			if printCutStats {
				engine.DumpCutStats(out, result.Stats)
				printCutStats = false
			}
			bestMove := result.BestMove
			if bestMove == 0 {
				fmt.Fprintln(out, "bestmove 0000")
				continue
			}
			fmt.Fprintln(out, "bestmove", bestMove.String())
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			pos = next
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// Searches without any limit stop at this depth, since "stop" is not supported.
const defaultGoDepth = 6

/*
	- "depth N" and "movetime MS" are used as given.
	- Otherwise the side to move spends remaining/40 + increment.
	- With no limit at all the search stops at defaultGoDepth.
*/
func parseGo(tokens []string, side board.Color) (engine.Limits, error) {
	var limits engine.Limits
	var clock [2]int
	var inc [2]int
	for i := 0; i < len(tokens); i++ {
		option := strings.ToLower(tokens[i])
		switch option {
		case "infinite":
			continue
		case "depth", "movetime", "wtime", "btime", "winc", "binc", "movestogo":
			if i+1 >= len(tokens) {
				return limits, fmt.Errorf("option %s needs a value", option)
			}
			i++
			value, err := strconv.Atoi(tokens[i])
			if err != nil {
				return limits, fmt.Errorf("option %s: %w", option, err)
			}
			switch option {
			case "depth":
				limits.Depth = value
			case "movetime":
				limits.MoveTime = time.Duration(value) * time.Millisecond
			case "wtime":
				clock[board.White] = value
			case "btime":
				clock[board.Black] = value
			case "winc":
				inc[board.White] = value
			case "binc":
				inc[board.Black] = value
			}
		default:
			return limits, fmt.Errorf("unknown go subcommand %s", option)
		}
	}

	if limits.Depth > 0 || limits.MoveTime > 0 {
		return limits, nil
	}
	if clock[side] > 0 {
		limits.MoveTime = time.Duration(clock[side]/40+inc[side]) * time.Millisecond
		return limits, nil
	}
	limits.Depth = defaultGoDepth
	return limits, nil
}

func parsePosition(tokens []string) (*board.Board, error) {
	if len(tokens) == 0 {
		return nil, errors.New("malformed position command")
	}

	var fenstr string
	rest := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		fenstr = board.Startpos
	case "fen":
		var fields []string
		for len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			fields = append(fields, rest[0])
			rest = rest[1:]
		}
		fenstr = strings.Join(fields, " ")
	default:
		return nil, fmt.Errorf("invalid position subcommand %s", tokens[0])
	}

	pos, err := board.FromFen(fenstr)
	if err != nil {
		return nil, fmt.Errorf("invalid fen position: %w", err)
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return pos, nil
	}
	for _, moveStr := range rest[1:] {
		move, err := board.ParseMove(pos, moveStr)
		if err != nil {
			return nil, err
		}
		pos.Apply(move)
	}
	return pos, nil
}
