// tacticscan runs the mistake classifiers against a single position and move, printing a
// human-readable report. It is a debugging aid, not an engine: every score it needs (the
// position's own evaluation, the engine's best moves) is supplied by the caller.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tacticians-go/tactix/pkg/board"
	"github.com/tacticians-go/tactix/pkg/board/fen"
	"github.com/tacticians-go/tactix/pkg/exchange"
	"github.com/tacticians-go/tactix/pkg/mistakes"
	"github.com/tacticians-go/tactix/pkg/notation"
	"github.com/tacticians-go/tactix/pkg/score"
	"github.com/tacticians-go/tactix/pkg/tactics"
)

var version = build.NewVersion(0, 1, 0)

var (
	position  = flag.String("fen", fen.Initial, "Position to analyze")
	move      = flag.String("move", "", "Move played, in UCI notation, e.g. 'e2e4'")
	best      = flag.String("best", "", "Space-separated UCI list of engine-suggested best moves")
	bestOpp   = flag.String("best-opponent", "", "Space-separated UCI list of engine-suggested best opponent replies")
	pv        = flag.String("pv", "", "Space-separated UCI principal variation, used only by hung_fork")
	povScore  = flag.String("score", "", "Score reached, as 'cp<N>' or 'mate<N>' (white POV)")
	bestScore = flag.String("best-score", "", "Best available score, same notation as -score")
	mateN     = flag.Int("mate-n", 1, "n for the mate classifiers")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "tacticscan %v", version)

	pos, _, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "invalid fen %q: %v", *position, err)
	}

	if *move != "" {
		reportMove(ctx, pos, *move, *best, *bestOpp, *pv)
	}
	if *povScore != "" && *bestScore != "" {
		reportMate(ctx, *povScore, *bestScore, *mateN)
	}
}

func reportMove(ctx context.Context, pos *board.Position, moveStr, bestStr, bestOppStr, pvStr string) {
	m, err := board.ParseMove(moveStr)
	if err != nil {
		logw.Exitf(ctx, "invalid move %q: %v", moveStr, err)
	}
	bestMoves := parseMoveList(ctx, bestStr)
	bestOppMoves := parseMoveList(ctx, bestOppStr)
	pvMoves := parseMoveList(ctx, pvStr)

	fmt.Printf("move:            %v\n", m)
	fmt.Printf("is_capture:      %v\n", pos.IsCapture(m))
	fmt.Printf("is_hanging(to):  %v\n", tactics.IsHanging(pos, m.To))
	fmt.Printf("capture_eval:    %v\n", exchange.CaptureEval(pos, m))
	fmt.Println()

	fmt.Printf("hanging_piece_not_captured: %v\n", mistakes.HangingPieceNotCaptured(pos, m, bestMoves))
	fmt.Printf("hung_moved_piece:           %v\n", mistakes.HungMovedPiece(pos, m, bestOppMoves, bestOppStr != ""))
	fmt.Printf("started_bad_trade:          %v\n", mistakes.StartedBadTrade(pos, m, bestOppMoves, bestOppStr != ""))
	fmt.Printf("hung_other_piece:           %v\n", mistakes.HungOtherPiece(pos, m, bestMoves))
	fmt.Printf("left_piece_hanging:         %v\n", mistakes.LeftPieceHanging(pos, m, bestMoves, bestStr != ""))
	fmt.Printf("missed_fork:                %v\n", mistakes.MissedFork(pos, m, bestMoves))
	fmt.Printf("hung_fork:                  %v\n", mistakes.HungFork(pos, m, bestOppMoves, pvMoves))
	fmt.Printf("missed_sacrifice:           %v\n", mistakes.MissedSacrifice(pos, m, bestMoves))
}

func reportMate(ctx context.Context, povStr, bestStr string, n int) {
	pov, err := score.Parse(povStr)
	if err != nil {
		logw.Exitf(ctx, "invalid -score: %v", err)
	}
	best, err := score.Parse(bestStr)
	if err != nil {
		logw.Exitf(ctx, "invalid -best-score: %v", err)
	}

	fmt.Println()
	fmt.Printf("hung_mate_%d:        %v\n", n, mistakes.HungMateN(pov, best, int32(n)))
	fmt.Printf("hung_mate_%d_plus:   %v\n", n, mistakes.HungMateNPlus(pov, best, int32(n)))
	fmt.Printf("missed_mate_%d:      %v\n", n, mistakes.MissedMateN(pov, best, int32(n)))
	fmt.Printf("missed_mate_%d_plus: %v\n", n, mistakes.MissedMateNPlus(pov, best, int32(n)))
}

func parseMoveList(ctx context.Context, s string) []board.Move {
	if s == "" {
		return nil
	}
	moves, err := notation.ParseUCILine(s)
	if err != nil {
		logw.Exitf(ctx, "invalid move list %q: %v", s, err)
	}
	return moves
}
