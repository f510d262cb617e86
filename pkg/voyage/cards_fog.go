package voyage

// fogBankCard masks the telegraph as Hidden, then reveals the real
// attack (by re-rolling) once EnemyAction resolves.
type fogBankCard struct{ NoOpBehavior }

func (fogBankCard) GetStruct() Card {
	return Card{
		ID:          CardFogBank,
		Title:       "Fog Bank",
		Description: "Thick fog hides the enemy's next move until it lands.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemBow), APCost: 1, RequiredPlayers: 1},
	}
}

func (fogBankCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(fogBankCard{}.GetStruct(), state, pid)
}

func (fogBankCard) ModifyTelegraph(_ *GameState, attack *EnemyAttack) {
	attack.TargetRoom = nil
	attack.TargetSystem = nil
	attack.Effect = AttackHidden
}

func (fogBankCard) ResolveTelegraph(state *GameState, attack *EnemyAttack) {
	roll := state.roll2D6()
	sysType, hit := systemForRoll(roll)
	if !hit {
		attack.Effect = AttackMiss
		attack.TargetRoom = nil
		attack.TargetSystem = nil
		return
	}
	room, ok := state.Map.RoomWithSystem(sysType)
	attack.TargetSystem = &sysType
	if ok {
		attack.TargetRoom = &room
	}
	if state.rollIntn(2) == 0 {
		attack.Effect = AttackFireball
	} else {
		attack.Effect = AttackLeak
	}
}
