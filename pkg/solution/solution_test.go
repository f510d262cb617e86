package solution

import (
	"strings"
	"testing"

	"github.com/sintftl/voyage/pkg/voyage"
)

const sample = `
SEED 12345
PLAYERS 2
ROUND 1
  P1: Move 5
  P1: Bake
  P2: Pass
ROUND 2
  P1: Shoot
  P2: Ready
`

func TestParse_SampleSolution(t *testing.T) {
	sol, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sol.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", sol.Seed)
	}
	if sol.Players != 2 {
		t.Errorf("Players = %d, want 2", sol.Players)
	}
	if len(sol.Rounds) != 2 {
		t.Fatalf("Rounds = %d, want 2", len(sol.Rounds))
	}
	if len(sol.Rounds[0].Entries) != 3 {
		t.Fatalf("round 1 entries = %d, want 3", len(sol.Rounds[0].Entries))
	}

	mv, ok := sol.Rounds[0].Entries[0].Action.(voyage.MoveAction)
	if !ok || mv.ToRoom != 5 {
		t.Errorf("entry 0 = %+v, want Move{ToRoom: 5}", sol.Rounds[0].Entries[0].Action)
	}
	if sol.Rounds[0].Entries[0].Player != "P1" {
		t.Errorf("entry 0 player = %q, want P1", sol.Rounds[0].Entries[0].Player)
	}

	ready, ok := sol.Rounds[1].Entries[1].Action.(voyage.VoteReadyAction)
	if !ok || !ready.Ready {
		t.Errorf("Ready should alias VoteReady{Ready: true}, got %+v", sol.Rounds[1].Entries[1].Action)
	}
}

func TestParse_VerbTable(t *testing.T) {
	cases := []struct {
		line string
		want voyage.Action
	}{
		{"P1: Move 7", voyage.MoveAction{ToRoom: 7}},
		{"P1: Bake", voyage.BakeAction{}},
		{"P1: Shoot", voyage.ShootAction{}},
		{"P1: Extinguish", voyage.ExtinguishAction{}},
		{"P1: Repair", voyage.RepairAction{}},
		{"P1: Interact", voyage.InteractAction{}},
		{"P1: RaiseShields", voyage.RaiseShieldsAction{}},
		{"P1: EvasiveManeuvers", voyage.EvasiveManeuversAction{}},
		{"P1: Lookout", voyage.LookoutAction{}},
		{"P1: Pass", voyage.PassAction{}},
		{"P1: Ready", voyage.VoteReadyAction{Ready: true}},
		{"P1: PickUp Peppernut", voyage.PickUpAction{Item: voyage.ItemPeppernut}},
		{"P1: Drop 2", voyage.DropAction{Index: 2}},
		{"P1: Throw P2 1", voyage.ThrowAction{Target: "P2", Index: 1}},
		{"P1: Revive P2", voyage.ReviveAction{Target: "P2"}},
		{"P1: FirstAid P2", voyage.FirstAidAction{Target: "P2"}},
		{"P1: Chat good luck everyone", voyage.ChatAction{Message: "good luck everyone"}},
	}
	for _, c := range cases {
		text := "SEED 1\nPLAYERS 1\nROUND 1\n" + c.line + "\n"
		sol, err := Parse(strings.NewReader(text))
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.line, err)
		}
		got := sol.Rounds[0].Entries[0].Action
		if got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.line, got, c.want)
		}
	}
}

func TestParse_MissingSeedIsAnError(t *testing.T) {
	text := "PLAYERS 1\nROUND 1\nP1: Pass\n"
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected an error when SEED is missing")
	}
}

func TestParse_MissingPlayersIsAnError(t *testing.T) {
	text := "SEED 1\nROUND 1\nP1: Pass\n"
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected an error when PLAYERS is missing")
	}
}

func TestParse_UnknownVerbIsAnError(t *testing.T) {
	text := "SEED 1\nPLAYERS 1\nROUND 1\nP1: Teleport 9\n"
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected an error for an unknown verb")
	}
}

func TestParse_ActionLineBeforeRoundIsAnError(t *testing.T) {
	text := "SEED 1\nPLAYERS 1\nP1: Pass\nROUND 1\n"
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected an error for an action line before any ROUND header")
	}
}

func TestParse_SkipsBlankLinesAndComments(t *testing.T) {
	text := "# a solution file\nSEED 1\n\nPLAYERS 1\n# round 1 begins\nROUND 1\n  P1: Pass\n"
	sol, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sol.Rounds) != 1 || len(sol.Rounds[0].Entries) != 1 {
		t.Errorf("sol = %+v, want one round with one entry", sol)
	}
}

func TestPlayerIDs_GeneratesCanonicalSequence(t *testing.T) {
	ids := PlayerIDs(3)
	want := []voyage.PlayerID{"P1", "P2", "P3"}
	if len(ids) != len(want) {
		t.Fatalf("len = %d, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
