package voyage

// attackWaveCard doubles the enemy's attack count for the round.
type attackWaveCard struct{ NoOpBehavior }

func (attackWaveCard) GetStruct() Card {
	return Card{
		ID:          CardAttackWave,
		Title:       "Attack Wave",
		Description: "Enemy attacks twice this round!",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{APCost: 1, RequiredPlayers: 1},
	}
}

func (attackWaveCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(attackWaveCard{}.GetStruct(), state, pid)
}

func (attackWaveCard) GetEnemyAttackCount(*GameState) int { return 2 }
