package suite

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"goose-ordering/board"
)

const DefaultDepth = 4

// Entry is one position of a search suite.
type Entry struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
}

// Board parses the entry's FEN into a fresh board.
func (e Entry) Board() (*board.Board, error) {
	return board.FromFen(e.FEN)
}

func Load(filename string) ([]Entry, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	entries, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return entries, nil
}

// Parse decodes a YAML list of suite entries. Depth defaults to DefaultDepth
// and unnamed entries are named after their index.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	for i := range entries {
		entry := &entries[i]
		entry.FEN = strings.TrimSpace(entry.FEN)
		if entry.FEN == "" {
			return nil, fmt.Errorf("entry %d: missing fen", i+1)
		}
		if _, err := board.FromFen(entry.FEN); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if entry.Depth <= 0 {
			entry.Depth = DefaultDepth
		}
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return entries, nil
}
