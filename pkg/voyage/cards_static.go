package voyage

import "unicode"

// staticNoiseCard: radio interference restricts Chat to emoji-only and
// requires the Bridge to fix.
type staticNoiseCard struct{ NoOpBehavior }

func (staticNoiseCard) GetStruct() Card {
	return Card{
		ID:          CardStaticNoise,
		Title:       "Static Noise",
		Description: "Radio interference. Chat restricted to emoji only.",
		CardType:    CardType{Kind: CardTypeSituation},
		Solution:    &CardSolution{TargetSystem: sys(SystemBridge), APCost: 1, RequiredPlayers: 1},
	}
}

func (staticNoiseCard) CanSolve(state *GameState, pid PlayerID) bool {
	return defaultCanSolve(staticNoiseCard{}.GetStruct(), state, pid)
}

func (staticNoiseCard) ValidateAction(state *GameState, pid PlayerID, action Action) error {
	if _, ok := action.(InteractAction); ok {
		p := state.Player(pid)
		bridge, hasBridge := state.Map.RoomWithSystem(SystemBridge)
		if p == nil || !hasBridge || p.RoomID != bridge {
			return invalidActionf("must be in Bridge to fix Static Noise")
		}
	}
	if chat, ok := action.(ChatAction); ok {
		for _, r := range chat.Message {
			if unicode.IsLetter(r) {
				return actionError(ErrSilenced, "Static Noise allows only emoji in Chat")
			}
		}
	}
	return nil
}
