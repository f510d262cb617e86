package voyage

// seagullAttackCard blocks Move while the actor holds a Peppernut — a
// tasty gull magnet. Resolved Open Question (SPEC_FULL.md §9): both
// validate_action (fail-early at planning) and check_resolution
// (fail-late at execution) delegate to the same check.
type seagullAttackCard struct{ NoOpBehavior }

func (seagullAttackCard) GetStruct() Card {
	return Card{
		ID:          CardSeagullAttack,
		Title:       "Seagull Attack",
		Description: "Gulls circle anyone carrying Peppernuts. Don't move.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{APCost: 1, RequiredPlayers: 1},
	}
}

func (seagullAttackCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(seagullAttackCard{}.GetStruct(), state, pid)
}

func seagullCheck(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(MoveAction); !ok {
		return nil
	}
	p := state.Player(pid)
	if p != nil && p.ammoCount() > 0 {
		return invalidActionf("gulls are circling — can't move while carrying Peppernuts")
	}
	return nil
}

func (seagullAttackCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	return seagullCheck(state, pid, action)
}

func (seagullAttackCard) CheckResolution(state *GameState, pid PlayerID, action Action) error {
	return seagullCheck(state, pid, action)
}
