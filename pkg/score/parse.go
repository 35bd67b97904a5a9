package score

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a score given as "cp<N>" (centipawns) or "mate<N>" (mate-in-N plies, N may
// be negative), the notation tacticscan accepts on the command line.
func Parse(s string) (Score, error) {
	switch {
	case strings.HasPrefix(s, "cp"):
		v, err := strconv.Atoi(strings.TrimPrefix(s, "cp"))
		if err != nil {
			return Score{}, fmt.Errorf("invalid centipawn score %q: %w", s, err)
		}
		return Cp(int32(v)), nil
	case strings.HasPrefix(s, "mate"):
		v, err := strconv.Atoi(strings.TrimPrefix(s, "mate"))
		if err != nil {
			return Score{}, fmt.Errorf("invalid mate score %q: %w", s, err)
		}
		return Mate(int32(v)), nil
	default:
		return Score{}, fmt.Errorf("invalid score %q: want cp<N> or mate<N>", s)
	}
}
