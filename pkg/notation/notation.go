// Package notation holds the small text-plumbing helpers the mistake classifiers and
// their callers need around moves and material swings: UCI move-list conversion and a
// running-total fold over a sequence of exchange values.
package notation

import (
	"fmt"
	"strings"

	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/eval"
)

// ParseUCIList parses a pre-split list of moves in pure algebraic coordinate notation ("e2e4", "a7a8q", ...) into a Move slice. It stops at the first
// malformed entry.
func ParseUCIList(moves []string) ([]board.Move, error) {
	out := make([]board.Move, 0, len(moves))
	for i, s := range moves {
		m, err := board.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// FormatUCIList renders moves back to pure algebraic coordinate notation.
func FormatUCIList(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// ParseUCILine is a convenience wrapper over ParseUCIList for a single space-separated
// string, as typically copied out of an engine's principal variation.
func ParseUCILine(line string) ([]board.Move, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	return ParseUCIList(strings.Fields(line))
}

// RunningTotal returns the cumulative sum of values: out[i] = values[0] + ... + values[i].
// Used to turn a sequence of per-step exchange values into a running material count, e.g.
// when narrating a capture sequence ply by ply.
func RunningTotal(values []eval.Pawns) []eval.Pawns {
	out := make([]eval.Pawns, len(values))
	var accum eval.Pawns
	for i, v := range values {
		accum += v
		out[i] = accum
	}
	return out
}
