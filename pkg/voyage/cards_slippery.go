package voyage

// slipperyDeckCard: the deck is slick underfoot. Moving is free;
// everything else costs one extra AP.
type slipperyDeckCard struct{ NoOpBehavior }

func (slipperyDeckCard) GetStruct() Card {
	return Card{
		ID:          CardSlipperyDeck,
		Title:       "Slippery Deck",
		Description: "The deck is slick. Move is free; other actions cost +1 AP.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemEngine), APCost: 1, RequiredPlayers: 1},
	}
}

func (slipperyDeckCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(slipperyDeckCard{}.GetStruct(), state, pid)
}

func (slipperyDeckCard) ModifyActionCost(_ *GameState, _ PlayerID, action Action, cost int) int {
	if action.Kind() == KindMove {
		return 0
	}
	if cost == 0 {
		return 0
	}
	return cost + 1
}

func (slipperyDeckCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		engine, hasEngine := state.Map.RoomWithSystem(SystemEngine)
		if p == nil || !hasEngine || p.RoomID != engine {
			return invalidActionf("must be in Engine to fix the Slippery Deck")
		}
	}
	return nil
}
