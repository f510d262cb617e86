package voyage

import "testing"

func TestGameState_Clone_Independent(t *testing.T) {
	gs := NewGame([]PlayerID{"P1", "P2"}, 42, LayoutStar)
	c := gs.Clone()

	if c.Phase != gs.Phase || c.RngSeed != gs.RngSeed {
		t.Fatal("cloned scalars do not match original")
	}

	c.Player("P1").HP = 1
	if gs.Player("P1").HP == 1 {
		t.Error("mutating the clone's player should not affect the original")
	}

	gs.Player("P2").Inventory = append(gs.Player("P2").Inventory, ItemPeppernut)
	if len(c.Player("P2").Inventory) != 0 {
		t.Error("mutating the original's inventory should not affect the clone")
	}

	c.ChatLog = append(c.ChatLog, ChatMessage{Text: "hi"})
	if len(gs.ChatLog) != 0 {
		t.Error("appending to the clone's chat log should not affect the original")
	}
}

func TestGameState_Clone_ActiveSituationsAreDeepCopied(t *testing.T) {
	gs := NewGame([]PlayerID{"P1"}, 1, LayoutStar)
	insertActiveSituation(gs, &Card{ID: CardBlockade, PlayersSolving: 0})
	c := gs.Clone()

	c.ActiveSituations[0].PlayersSolving = 5
	if gs.ActiveSituations[0].PlayersSolving == 5 {
		t.Error("clone's active situation mutation leaked into the original")
	}
}

func TestGameState_AddPlayer_IgnoresDuplicateID(t *testing.T) {
	gs := NewGame([]PlayerID{"P1"}, 1, LayoutStar)
	gs.addPlayer("P1", "Someone Else")
	if len(gs.PlayerIDs()) != 1 {
		t.Errorf("PlayerIDs len = %d, want 1 (duplicate add should be a no-op)", len(gs.PlayerIDs()))
	}
	if gs.Player("P1").Name == "Someone Else" {
		t.Error("duplicate addPlayer should not overwrite the existing player")
	}
}

func TestGameState_AllFainted(t *testing.T) {
	gs := NewGame([]PlayerID{"P1", "P2"}, 1, LayoutStar)
	if gs.allFainted() {
		t.Fatal("fresh crew should not be all Fainted")
	}
	gs.Player("P1").Status |= StatusFainted
	if gs.allFainted() {
		t.Fatal("one Fainted out of two should not be all Fainted")
	}
	gs.Player("P2").Status |= StatusFainted
	if !gs.allFainted() {
		t.Error("both Fainted should report all Fainted")
	}
}

func TestPlayer_AmmoCapWithWheelbarrow(t *testing.T) {
	p := &Player{}
	if p.ammoCap() != AmmoCapBase {
		t.Errorf("ammoCap without a Wheelbarrow = %d, want %d", p.ammoCap(), AmmoCapBase)
	}
	p.Inventory = append(p.Inventory, ItemWheelbarrow)
	if p.ammoCap() != AmmoCapWheel {
		t.Errorf("ammoCap with a Wheelbarrow = %d, want %d", p.ammoCap(), AmmoCapWheel)
	}
}

func TestPlayer_AmmoCount(t *testing.T) {
	p := &Player{Inventory: []ItemType{ItemPeppernut, ItemExtinguisher, ItemPeppernut}}
	if p.ammoCount() != 2 {
		t.Errorf("ammoCount = %d, want 2", p.ammoCount())
	}
}

func TestPlayerStatus_FaintedFlag(t *testing.T) {
	p := &Player{}
	if p.isFainted() {
		t.Fatal("a fresh player should not be Fainted")
	}
	p.Status |= StatusFainted
	if !p.isFainted() {
		t.Error("player with the Fainted flag set should report Fainted")
	}
	p.Status |= StatusSilenced
	if !p.isFainted() {
		t.Error("Fainted flag should survive ORing in an unrelated flag")
	}
}
