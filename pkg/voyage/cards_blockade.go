package voyage

// blockadeCard: an enemy hull blocks the Cannons room's hatch in both
// directions.
type blockadeCard struct{ NoOpBehavior }

func (blockadeCard) GetStruct() Card {
	return Card{
		ID:          CardBlockade,
		Title:       "Blockade",
		Description: "Something is jamming the Cannons hatch. Nobody gets in or out.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemCannons), APCost: 1, RequiredPlayers: 2},
	}
}

func (blockadeCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(blockadeCard{}.GetStruct(), state, pid)
}

func (blockadeCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	mv, ok := action.(MoveAction)
	if !ok {
		return nil
	}
	cannons, hasCannons := state.Map.RoomWithSystem(SystemCannons)
	if !hasCannons {
		return nil
	}
	p := state.Player(pid)
	if p == nil {
		return nil
	}
	if p.RoomID == cannons || mv.ToRoom == cannons {
		return invalidActionf("the Blockade seals the Cannons hatch")
	}
	return nil
}
