package voyage

// mutinyCard is a Timebomb: if not solved within 3 rounds the crew
// mutinies for 10 hull damage.
type mutinyCard struct{ NoOpBehavior }

func (mutinyCard) GetStruct() Card {
	return Card{
		ID:          CardMutiny,
		Title:       "Mutiny?",
		Description: "If not solved, the crew mutinies for 10 hull damage.",
		CardType:    CardType{Kind: CardTypeTimebomb, RoundsLeft: 3},
		Solution:    &CardSolution{TargetSystem: sys(SystemBridge), APCost: 1, RequiredPlayers: 2},
	}
}

func (mutinyCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(mutinyCard{}.GetStruct(), state, pid)
}

func (mutinyCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		bridge, hasBridge := state.Map.RoomWithSystem(SystemBridge)
		if p == nil || !hasBridge || p.RoomID != bridge {
			return invalidActionf("must be in Bridge to stop the Mutiny")
		}
	}
	return nil
}

func (mutinyCard) OnRoundEnd(state *GameState) {
	card := state.ActiveSituation(CardMutiny)
	if card == nil || card.CardType.RoundsLeft <= 0 {
		return
	}
	card.CardType.RoundsLeft--
	if card.CardType.RoundsLeft == 0 {
		state.HullIntegrity = clampHull(state.HullIntegrity - 10)
		removeActiveSituation(state, CardMutiny)
	}
}
