/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Command chesscore is the CLI surface of spec.md §6: it loads a
// position (optionally from a FEN), then either reports a perft count
// or plays the position out move by move via the engine package's
// get_best_move/make_move, logging one line per ply until the game
// ends.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/engine"
	"github.com/frankkopp/chesscore/internal/config"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	variantName := flag.String("variant", "standard", "variant preset (standard|atomic|horde|antichess|kingofthehill|threecheck|fivecheck|racingkings)")
	fenFlag := flag.String("fen", "", "FEN to start from; empty means the variant's own starting position")
	depth := flag.Int("depth", 6, "max search depth per move")
	movetime := flag.Float64("movetime", 5.0, "search time budget per move, in seconds")
	threads := flag.Int("threads", runtime.NumCPU(), "number of Lazy SMP search threads")
	ttSizeMB := flag.Int("ttsize", engine.DefaultTtSizeMB, "transposition table size in MiB")
	perftDepth := flag.Int("perft", 0, "if >0, run perft to this depth from the loaded position and exit")
	profilePath := flag.String("profile", "", "if set, write CPU profile output to this directory")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *profilePath != "" {
		defer profile.Start(profile.ProfilePath(*profilePath)).Stop()
	}

	e := engine.New(*ttSizeMB, *threads)

	var err error
	if *fenFlag != "" {
		_, err = e.LoadFen(*fenFlag, *variantName)
	} else {
		_, err = e.NewGame(*variantName)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		start := time.Now()
		nodes, _ := e.Perft(*perftDepth)
		out.Printf("perft(%d) = %d nodes in %s\n", *perftDepth, nodes, time.Since(start))
		return
	}

	playOut(e, *depth, *movetime)
}

// playOut repeatedly asks for the best move and plays it, printing one
// line per ply, until make_move reports anything but Ok.
func playOut(e *engine.Engine, depth int, movetime float64) {
	for ply := 1; ; ply++ {
		mi, reached, err := e.GetBestMove(depth, movetime)
		if err != nil {
			out.Printf("%d. game over before a move could be made: %v\n", ply, err)
			return
		}
		result := e.MakeMove(mi)
		out.Printf("%d. %s (depth %d) [%s]\n", ply, result.MoveNotation, reached, result.Flag)
		if len(result.ExplodedSquares) > 0 {
			out.Printf("    exploded: %v\n", result.ExplodedSquares)
		}
		if result.Flag != engine.Ok {
			out.Printf("game over: %s, winner=%s\n", result.Flag, result.Winner)
			return
		}
	}
}
