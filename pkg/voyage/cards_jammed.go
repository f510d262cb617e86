package voyage

// jammedCannonCard disables Shoot entirely until solved.
type jammedCannonCard struct{ NoOpBehavior }

func (jammedCannonCard) GetStruct() Card {
	return Card{
		ID:          CardJammedCannon,
		Title:       "Jammed Cannon",
		Description: "Cannons are disabled.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemCannons), APCost: 1, ItemCost: item(ItemPeppernut), RequiredPlayers: 1},
	}
}

func (jammedCannonCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(jammedCannonCard{}.GetStruct(), state, pid)
}

func (jammedCannonCard) ValidateAction(_ *GameState, _ PlayerID, action Action) error {
	if _, ok := action.(ShootAction); ok {
		return invalidActionf("cannon jammed! cannot shoot")
	}
	return nil
}
