package voyage

// bigLeakCard floods Cargo with a fresh Water token every round end
// until someone fixes it in person.
type bigLeakCard struct{ NoOpBehavior }

func (bigLeakCard) GetStruct() Card {
	return Card{
		ID:          CardBigLeak,
		Title:       "The Big Leak",
		Description: "Flooding. End of round: 1 Water in Cargo.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemCargo), APCost: 1, RequiredPlayers: 2},
	}
}

func (bigLeakCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(bigLeakCard{}.GetStruct(), state, pid)
}

func (bigLeakCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		cargo, hasCargo := state.Map.RoomWithSystem(SystemCargo)
		if p == nil || !hasCargo || p.RoomID != cargo {
			return invalidActionf("the Big Leak is in Cargo")
		}
	}
	return nil
}

func (bigLeakCard) OnRoundEnd(state *GameState) {
	if room, ok := state.Map.RoomWithSystem(SystemCargo); ok {
		addHazard(state, room, HazardWater)
	}
}
