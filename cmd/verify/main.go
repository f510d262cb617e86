// Command verify plays a recorded solution file back through pkg/voyage
// and reports whether every action applied cleanly, grounded on the
// original solver's verify binary: pure playback, no search or scoring.
// It stops at the first action ApplyAction rejects; it runs no invariant
// checks of its own beyond what ApplyAction enforces.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sintftl/voyage/internal/logger"
	"github.com/sintftl/voyage/pkg/solution"
	"github.com/sintftl/voyage/pkg/voyage"
)

func main() {
	logger.Init()
	runLog := log.With().Str("run_id", uuid.NewString()).Logger()

	file := flag.String("file", "", "path to the solution text file")
	verbose := flag.Bool("verbose", false, "print the full trajectory even on success")
	flag.Parse()

	if *file == "" {
		runLog.Fatal().Msg("-file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		runLog.Fatal().Err(err).Str("file", *file).Msg("could not open solution file")
	}
	defer f.Close()

	sol, err := solution.Parse(f)
	if err != nil {
		runLog.Fatal().Err(err).Msg("could not parse solution file")
	}

	runLog.Info().
		Str("file", *file).
		Int("players", sol.Players).
		Uint64("seed", sol.Seed).
		Msg("verifying solution")

	playerIDs := solution.PlayerIDs(sol.Players)
	state := voyage.NewGame(playerIDs, sol.Seed, voyage.LayoutStar)

	result := run(state, sol)

	if !result.ok() {
		fmt.Println(result.failureSummary())
	}
	if result.ok() || *verbose {
		printTrajectory(result.trail)
	}

	if !result.ok() {
		os.Exit(1)
	}
}

// step is one successfully-applied action and the state it produced.
type step struct {
	round  int
	line   int
	player voyage.PlayerID
	action voyage.Action
	after  *voyage.GameState
}

type failure struct {
	round  int
	line   int
	player voyage.PlayerID
	action voyage.Action
	err    error
}

type verification struct {
	trail   []step
	failure *failure
}

func (v verification) ok() bool { return v.failure == nil }

func (v verification) failureSummary() string {
	f := v.failure
	return fmt.Sprintf("FAILED at round %d, line %d: %s could not apply %T: %v",
		f.round, f.line, f.player, f.action, f.err)
}

// run replays every entry in order, stopping at the first rejected
// action: once ApplyAction refuses a move, the remaining recorded actions
// were computed against a state that never actually occurred.
func run(state *voyage.GameState, sol *solution.Solution) verification {
	var v verification
	for _, round := range sol.Rounds {
		for _, entry := range round.Entries {
			next, err := voyage.ApplyAction(state, entry.Player, entry.Action)
			if err != nil {
				v.failure = &failure{
					round: round.Number, line: entry.Line,
					player: entry.Player, action: entry.Action, err: err,
				}
				return v
			}
			state = next
			v.trail = append(v.trail, step{
				round: round.Number, line: entry.Line,
				player: entry.Player, action: entry.Action, after: state,
			})
		}
	}
	return v
}

func printTrajectory(trail []step) {
	for _, s := range trail {
		fmt.Printf("round %d line %d: %s applied %T -> phase=%s hull=%d boss=%d\n",
			s.round, s.line, s.player, s.action, s.after.Phase, s.after.HullIntegrity, s.after.BossLevel)
	}
}
