package voyage

import "testing"

func voteReady(t *testing.T, state *GameState, pid PlayerID) *GameState {
	t.Helper()
	next, err := ApplyAction(state, pid, VoteReadyAction{Ready: true})
	if err != nil {
		t.Fatalf("VoteReady(%s): %v", pid, err)
	}
	return next
}

// A single player's readiness must be re-asserted at each consensus gate:
// Lobby, MorningReport, and EnemyTelegraph all reset IsReady on entry, so
// three separate VoteReady calls are required to reach TacticalPlanning.
func TestPlanningLoop_SinglePlayerReachesTacticalPlanning(t *testing.T) {
	state := NewGame([]PlayerID{"P1"}, 12345, LayoutStar)

	state = voteReady(t, state, "P1")
	if state.Phase != PhaseMorningReport {
		t.Fatalf("after 1st VoteReady: phase = %s, want MorningReport", state.Phase)
	}

	state = voteReady(t, state, "P1")
	if state.Phase != PhaseEnemyTelegraph {
		t.Fatalf("after 2nd VoteReady: phase = %s, want EnemyTelegraph", state.Phase)
	}

	state = voteReady(t, state, "P1")
	if state.Phase != PhaseTacticalPlanning {
		t.Fatalf("after 3rd VoteReady: phase = %s, want TacticalPlanning", state.Phase)
	}
	p := state.Player("P1")
	if p.AP != MaxAP {
		t.Errorf("AP = %d, want %d", p.AP, MaxAP)
	}
	if p.IsReady {
		t.Error("player with AP remaining should not be auto-readied into TacticalPlanning")
	}
}

// Planning-loop invariant (§8): after Execution, phase == TacticalPlanning
// iff some non-Fainted player still has ap>0; queuing and draining a single
// Move leaves the lone player with ap=1 and back in TacticalPlanning.
func TestPlanningLoop_ExecutionReturnsToTacticalPlanningWhileAPRemains(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	hub, ok := state.Map.RoomWithSystem(SystemHallway)
	if !ok {
		t.Fatal("star layout should have a hallway hub room")
	}

	state, err := ApplyAction(state, "P1", MoveAction{ToRoom: hub})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if len(state.ProposalQueue) != 1 {
		t.Fatalf("proposal queue len = %d, want 1", len(state.ProposalQueue))
	}

	state = voteReady(t, state, "P1")
	if state.Phase != PhaseTacticalPlanning {
		t.Fatalf("phase = %s, want TacticalPlanning", state.Phase)
	}
	p := state.Player("P1")
	if p.AP != MaxAP-1 {
		t.Errorf("AP after one Move drains = %d, want %d", p.AP, MaxAP-1)
	}
	if p.RoomID != hub {
		t.Errorf("player room = %d, want hub %d", p.RoomID, hub)
	}
	if len(state.ProposalQueue) != 0 {
		t.Errorf("proposal queue should be empty after Execution drains it, got %d", len(state.ProposalQueue))
	}
}

// Consensus liveness (§8): once every non-Fainted player is ready, the
// phase advances within that same VoteReady call, even with 0 AP left.
func TestPlanningLoop_ZeroAPAutoReadyEntersExecution(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	p := state.Player("P1")
	p.AP = 0

	state = voteReady(t, state, "P1")
	if state.Phase != PhaseEnemyAction && state.Phase != PhaseMorningReport && state.Phase != PhaseGameOver && state.Phase != PhaseVictory {
		t.Fatalf("phase = %s, want Execution to have run to completion", state.Phase)
	}
}

func TestLeaveLobby_SeedsDeckAndEnemy(t *testing.T) {
	state := NewGame([]PlayerID{"P1"}, 1, LayoutStar)
	if state.Deck != nil {
		t.Fatal("deck should be empty before leaving Lobby")
	}
	state = voteReady(t, state, "P1")
	if len(state.Deck) != len(AllCardIDs())-1 {
		t.Errorf("deck len = %d, want %d (one drawn by MorningReport)", len(state.Deck), len(AllCardIDs())-1)
	}
	if state.Enemy == nil {
		t.Fatal("leaving Lobby should seed an Enemy")
	}
	if state.Enemy.Name != bossName(0) {
		t.Errorf("enemy name = %q, want %q", state.Enemy.Name, bossName(0))
	}
}

// respawnFainted only fires for a crew that is not wiped outright — a lone
// Fainted player alongside a surviving crewmate should respawn at the next
// MorningReport, whereas a full wipe instead ends the game (covered by
// TestApplyAction_AllFaintedEndsGame).
func TestMorningReport_RespawnsFaintedPlayer(t *testing.T) {
	state := reachTacticalPlanningMulti(t, "P1", "P2")
	state.Player("P2").Status |= StatusFainted
	state.Player("P2").HP = 0

	next, err := ApplyAction(state, "P1", PassAction{})
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if next.Phase != PhaseMorningReport {
		t.Fatalf("phase after P1 Pass with P2 Fainted = %s, want MorningReport", next.Phase)
	}
	p := next.Player("P2")
	if p.isFainted() {
		t.Error("P2 should have respawned by the next MorningReport")
	}
	if p.HP != MaxHP {
		t.Errorf("respawned HP = %d, want %d", p.HP, MaxHP)
	}
	dormitory, _ := next.Map.RoomWithSystem(SystemDormitory)
	if p.RoomID != dormitory {
		t.Errorf("respawned room = %d, want Dormitory %d", p.RoomID, dormitory)
	}
}

// reachTacticalPlanningMulti drives a fresh multi-player game to
// TacticalPlanning; every player must vote ready at each of the three
// consensus gates before the phase advances.
func reachTacticalPlanningMulti(t *testing.T, pids ...PlayerID) *GameState {
	t.Helper()
	state := NewGame(pids, 12345, LayoutStar)
	for i := 0; i < 3; i++ {
		for _, pid := range pids {
			state = voteReady(t, state, pid)
		}
	}
	if state.Phase != PhaseTacticalPlanning {
		t.Fatalf("reachTacticalPlanningMulti: phase = %s after 3 rounds of VoteReady, want TacticalPlanning", state.Phase)
	}
	return state
}

// reachTacticalPlanning drives a fresh single-player game to
// TacticalPlanning via three VoteReady calls, the minimum needed for the
// Lobby/MorningReport/EnemyTelegraph consensus gates.
func reachTacticalPlanning(t *testing.T, pid PlayerID) *GameState {
	t.Helper()
	state := NewGame([]PlayerID{pid}, 12345, LayoutStar)
	for i := 0; i < 3; i++ {
		state = voteReady(t, state, pid)
	}
	if state.Phase != PhaseTacticalPlanning {
		t.Fatalf("reachTacticalPlanning: phase = %s after 3 VoteReady calls, want TacticalPlanning", state.Phase)
	}
	return state
}
