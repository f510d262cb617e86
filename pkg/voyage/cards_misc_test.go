package voyage

import "testing"

func TestAfternoonNap_TheReaderIsLexicographicallyFirstPlayerID(t *testing.T) {
	state := reachTacticalPlanningMulti(t, "Zelda", "Abner", "Mallory")
	if got := theReader(state); got != "Abner" {
		t.Errorf("theReader = %q, want %q", got, "Abner")
	}
}

func TestAfternoonNap_BlocksReaderFromGameActionsButAllowsMeta(t *testing.T) {
	state := reachTacticalPlanningMulti(t, "Abner", "Zelda")
	insertActiveSituation(state, &Card{ID: CardAfternoonNap, CardType: CardType{Kind: CardTypeSituation}})
	hub, _ := state.Map.RoomWithSystem(SystemHallway)

	if _, err := ApplyAction(state, "Abner", MoveAction{ToRoom: hub}); err == nil {
		t.Error("the Reader should not be able to Move (a Game action) while napping")
	}
	if _, err := ApplyAction(state, "Abner", ChatAction{Message: "zzz"}); err != nil {
		t.Errorf("the Reader should still be able to Chat while napping: %v", err)
	}
	if _, err := ApplyAction(state, "Zelda", PassAction{}); err != nil {
		t.Errorf("a non-Reader should be unaffected by Afternoon Nap: %v", err)
	}
}

func TestSeagullAttack_ValidateAction_BlocksMoveWhileCarryingPeppernut(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardSeagullAttack, CardType: CardType{Kind: CardTypeSituation}})
	state.Player("P1").Inventory = append(state.Player("P1").Inventory, ItemPeppernut)
	hub, _ := state.Map.RoomWithSystem(SystemHallway)

	if _, err := ApplyAction(state, "P1", MoveAction{ToRoom: hub}); err == nil {
		t.Error("validate_action should reject a Move while holding a Peppernut under Seagull Attack")
	}
}

func TestSeagullAttack_CheckResolution_AlsoBlocksAtExecutionTime(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	state.Player("P1").Inventory = append(state.Player("P1").Inventory, ItemPeppernut)
	hub, _ := state.Map.RoomWithSystem(SystemHallway)

	behavior := GetBehavior(CardSeagullAttack)
	if err := behavior.CheckResolution(state, "P1", MoveAction{ToRoom: hub}); err == nil {
		t.Error("check_resolution should independently reject a Move while holding a Peppernut")
	}
}

func TestSeagullAttack_DoesNotBlockMoveWithoutPeppernut(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardSeagullAttack, CardType: CardType{Kind: CardTypeSituation}})
	hub, _ := state.Map.RoomWithSystem(SystemHallway)

	if _, err := ApplyAction(state, "P1", MoveAction{ToRoom: hub}); err != nil {
		t.Errorf("Move without a Peppernut should be unaffected by Seagull Attack: %v", err)
	}
}

func TestFogBank_ModifyTelegraphHidesTheRealTarget(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	cannons, _ := state.Map.RoomWithSystem(SystemCannons)
	attack := &EnemyAttack{TargetRoom: &cannons, Effect: AttackFireball}

	GetBehavior(CardFogBank).ModifyTelegraph(state, attack)

	if attack.Effect != AttackHidden || attack.TargetRoom != nil || attack.TargetSystem != nil {
		t.Errorf("after masking, attack = %+v, want Hidden with no target", attack)
	}
}

func TestFogBank_ResolveTelegraphRevealsAFreshRoll(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	attack := &EnemyAttack{Effect: AttackHidden}
	seedBefore := state.RngSeed

	GetBehavior(CardFogBank).ResolveTelegraph(state, attack)

	if state.RngSeed == seedBefore {
		t.Error("resolving the fog should consume RNG rolls")
	}
	if attack.Effect != AttackMiss && attack.Effect != AttackFireball && attack.Effect != AttackLeak {
		t.Errorf("revealed effect = %v, want Miss, Fireball or Leak", attack.Effect)
	}
}

func TestJammedCannon_BlocksShoot(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardJammedCannon, CardType: CardType{Kind: CardTypeSituation}})
	cannons, _ := state.Map.RoomWithSystem(SystemCannons)
	state.Player("P1").RoomID = cannons
	state.Player("P1").Inventory = append(state.Player("P1").Inventory, ItemPeppernut)

	if _, err := ApplyAction(state, "P1", ShootAction{}); err == nil {
		t.Error("Shoot should be rejected while the cannon is jammed")
	}
}

func TestBigLeak_OnRoundEndAddsWaterToCargo(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	cargo, _ := state.Map.RoomWithSystem(SystemCargo)
	before := countHazard(state.Map.Room(cargo).Hazards, HazardWater)

	GetBehavior(CardBigLeak).OnRoundEnd(state)

	if got := countHazard(state.Map.Room(cargo).Hazards, HazardWater); got != before+1 {
		t.Errorf("Water hazards in Cargo = %d, want %d", got, before+1)
	}
}

func TestBigLeak_ValidateAction_RequiresBeingInCargoToFix(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardBigLeak, CardType: CardType{Kind: CardTypeSituation}})
	hub, _ := state.Map.RoomWithSystem(SystemHallway)
	state.Player("P1").RoomID = hub

	if _, err := ApplyAction(state, "P1", InteractAction{}); err == nil {
		t.Error("Interact should be rejected outside Cargo while the Big Leak is active")
	}
}

func TestAttackWave_DoublesEnemyAttackCount(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	if GetBehavior(CardAttackWave).GetEnemyAttackCount(state) != 2 {
		t.Error("Attack Wave should report 2 enemy attacks")
	}
}

func TestRudderless_AddsHazardModifier(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardRudderless, CardType: CardType{Kind: CardTypeSituation}})
	if got := hazardModifierSum(state); got != 1 {
		t.Errorf("hazardModifierSum with Rudderless = %d, want 1", got)
	}
}

func TestRudderless_RequiresBridgeToFix(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardRudderless, CardType: CardType{Kind: CardTypeSituation}})
	hub, _ := state.Map.RoomWithSystem(SystemHallway)
	state.Player("P1").RoomID = hub

	if _, err := ApplyAction(state, "P1", InteractAction{}); err == nil {
		t.Error("Interact outside Bridge should be rejected while Rudderless")
	}
}

func TestMutiny_CountsDownAndDealsHullDamageAtZero(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardMutiny, CardType: CardType{Kind: CardTypeTimebomb, RoundsLeft: 1}})
	hullBefore := state.HullIntegrity

	GetBehavior(CardMutiny).OnRoundEnd(state)

	if state.HullIntegrity != hullBefore-10 {
		t.Errorf("hull after mutiny fires = %d, want %d", state.HullIntegrity, hullBefore-10)
	}
	if state.ActiveSituation(CardMutiny) != nil {
		t.Error("Mutiny should remove itself once it fires")
	}
}

func TestMutiny_DoesNotFireWithRoundsRemaining(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardMutiny, CardType: CardType{Kind: CardTypeTimebomb, RoundsLeft: 3}})
	hullBefore := state.HullIntegrity

	GetBehavior(CardMutiny).OnRoundEnd(state)

	if state.HullIntegrity != hullBefore {
		t.Errorf("hull after one round of Mutiny ticking down = %d, want unchanged %d", state.HullIntegrity, hullBefore)
	}
	card := state.ActiveSituation(CardMutiny)
	if card == nil || card.CardType.RoundsLeft != 2 {
		t.Errorf("Mutiny RoundsLeft = %+v, want 2", card)
	}
}

func TestStaticNoise_RejectsLetteredChatButAllowsEmoji(t *testing.T) {
	state := reachTacticalPlanning(t, "P1")
	insertActiveSituation(state, &Card{ID: CardStaticNoise, CardType: CardType{Kind: CardTypeSituation}})

	if _, err := ApplyAction(state, "P1", ChatAction{Message: "hello"}); err == nil {
		t.Error("lettered Chat should be rejected under Static Noise")
	}
	if _, err := ApplyAction(state, "P1", ChatAction{Message: "\U0001F44D"}); err != nil {
		t.Errorf("emoji-only Chat should be allowed under Static Noise: %v", err)
	}
}
