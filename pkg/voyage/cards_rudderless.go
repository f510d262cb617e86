package voyage

// rudderlessCard: with no rudder, every hit lands harder.
type rudderlessCard struct{ NoOpBehavior }

func (rudderlessCard) GetStruct() Card {
	return Card{
		ID:          CardRudderless,
		Title:       "Rudderless",
		Description: "Hard hits. Enemy damage tokens +1.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemBridge), APCost: 1, RequiredPlayers: 2},
	}
}

func (rudderlessCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(rudderlessCard{}.GetStruct(), state, pid)
}

func (rudderlessCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		bridge, hasBridge := state.Map.RoomWithSystem(SystemBridge)
		if p == nil || !hasBridge || p.RoomID != bridge {
			return invalidActionf("must be in Bridge to fix the Rudder")
		}
	}
	return nil
}

func (rudderlessCard) GetHazardModifier(*GameState) int { return 1 }
