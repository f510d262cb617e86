package voyage

// afternoonNapCard ("The Reader" gets nothing done). Resolved Open
// Question (SPEC_FULL.md §9): the Reader is the lexicographically-first
// PlayerID, recomputed on every call rather than cached on draw.
type afternoonNapCard struct{ NoOpBehavior }

func (afternoonNapCard) GetStruct() Card {
	return Card{
		ID:          CardAfternoonNap,
		Title:       "Afternoon Nap",
		Description: "One crew member nods off and won't be disturbed.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{APCost: 1, RequiredPlayers: 1},
	}
}

func (afternoonNapCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(afternoonNapCard{}.GetStruct(), state, pid)
}

func theReader(state *GameState) PlayerID {
	ids := state.PlayerIDs()
	if len(ids) == 0 {
		return ""
	}
	reader := ids[0]
	for _, id := range ids[1:] {
		if id < reader {
			reader = id
		}
	}
	return reader
}

func (afternoonNapCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if pid != theReader(state) {
		return nil
	}
	switch action.Kind() {
	case KindChat, KindVoteReady, KindPass, KindUndo:
		return nil
	default:
		return invalidActionf("the Reader is napping and cannot act")
	}
}
