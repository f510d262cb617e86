package voyage

// listingCard: the ship is listing hard to one side. Moving is free;
// everything else costs double AP.
type listingCard struct{ NoOpBehavior }

func (listingCard) GetStruct() Card {
	return Card{
		ID:          CardListing,
		Title:       "Listing",
		Description: "The ship lists hard. Move is free; other actions cost double.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemEngine), APCost: 1, RequiredPlayers: 1},
	}
}

func (listingCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(listingCard{}.GetStruct(), state, pid)
}

func (listingCard) ModifyActionCost(_ *GameState, _ PlayerID, action Action, cost int) int {
	if action.Kind() == KindMove {
		return 0
	}
	return cost * 2
}

func (listingCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		engine, hasEngine := state.Map.RoomWithSystem(SystemEngine)
		if p == nil || !hasEngine || p.RoomID != engine {
			return invalidActionf("must be in Engine to correct the Listing")
		}
	}
	return nil
}
