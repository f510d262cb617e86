package voyage

// maybeAdvance runs the phase state machine forward as far as consensus
// and automatic transitions allow, stopping at the first phase still
// waiting on player input (or a terminal phase). Grounded structurally
// on pkg/diplomacy/phase.go's NextPhase/AdvanceState shape, generalized
// to this spec's richer phase graph (§4.1).
func maybeAdvance(state *GameState) {
	for {
		switch state.Phase {
		case PhaseLobby:
			if !checkConsensus(state) {
				return
			}
			leaveLobby(state)
			enterMorningReport(state)
		case PhaseMorningReport:
			if !checkConsensus(state) {
				return
			}
			enterEnemyTelegraph(state)
		case PhaseEnemyTelegraph:
			if !checkConsensus(state) {
				return
			}
			enterTacticalPlanning(state)
		case PhaseTacticalPlanning:
			if !checkConsensus(state) {
				return
			}
			enterExecution(state)
		default:
			return
		}
	}
}

// checkConsensus reports whether every non-Fainted player is ready.
func checkConsensus(state *GameState) bool {
	for _, p := range state.Players() {
		if !p.isFainted() && !p.IsReady {
			return false
		}
	}
	return true
}

// leaveLobby freezes the deck and boss the instant the crew leaves
// Lobby, per §4.1's "Leaving Lobby freezes map layout and seeds deck
// and boss." Map layout freezing itself is enforced by rejecting
// SetMapLayout outside Lobby (handled in meta_actions.go).
func leaveLobby(state *GameState) {
	state.Deck = shuffledDeck(state)
	state.Enemy = newEnemy(0)
}

func shuffledDeck(state *GameState) []CardID {
	ids := AllCardIDs()
	rng := seeded(state.RngSeed)
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	state.RngSeed = drawSeed(rng)
	return ids
}

// enterMorningReport runs the MorningReport entry effects: respawn,
// draw, on_round_start, and AP/readiness reset (§4.1).
func enterMorningReport(state *GameState) {
	state.Phase = PhaseMorningReport
	respawnFainted(state)
	drawCard(state)
	for _, c := range activeBehaviorsInOrder(state) {
		GetBehavior(c.ID).OnRoundStart(state)
	}
	ap := MaxAP
	if state.IsResting {
		ap = RestAP
		state.IsResting = false
	}
	for _, p := range state.Players() {
		if !p.isFainted() {
			p.AP = ap
		}
		p.IsReady = false
	}
}

// respawnFainted implements §4.5's "a Fainted player at the START of
// MorningReport respawns in Dormitory with hp=3 and ap=MAX_AP."
func respawnFainted(state *GameState) {
	dormitory, ok := state.Map.RoomWithSystem(SystemDormitory)
	for _, p := range state.Players() {
		if !p.isFainted() {
			continue
		}
		p.Status &^= StatusFainted
		p.HP = MaxHP
		p.AP = MaxAP
		if ok {
			p.RoomID = dormitory
		}
	}
}

// drawCard pops the top of the deck and fires its activation per
// §4.4's CardType lifecycle: Flash cards fire-and-discard, everything
// else joins active_situations.
func drawCard(state *GameState) {
	if len(state.Deck) == 0 {
		return
	}
	id := state.Deck[0]
	state.Deck = state.Deck[1:]
	behavior := GetBehavior(id)
	if behavior == nil {
		return
	}
	card := behavior.GetStruct()
	if card.CardType.Kind == CardTypeFlash {
		behavior.OnActivate(state)
		state.Discard = append(state.Discard, id)
		return
	}
	live := card
	insertActiveSituation(state, &live)
	behavior.OnActivate(state)
}

// enterEnemyTelegraph rolls the enemy's next attack and lets active
// situations mask it (e.g. Fog Bank hiding the target).
func enterEnemyTelegraph(state *GameState) {
	state.Phase = PhaseEnemyTelegraph
	attack := generateTelegraph(state)
	applyTelegraphModifiers(state, attack)
	if state.Enemy != nil {
		state.Enemy.NextAttack = attack
	}
	for _, p := range state.Players() {
		p.IsReady = false
	}
}

// enterTacticalPlanning resets readiness, auto-marking 0-AP players
// ready per §4.1.
func enterTacticalPlanning(state *GameState) {
	state.Phase = PhaseTacticalPlanning
	for _, p := range state.Players() {
		if p.isFainted() {
			continue
		}
		p.IsReady = p.AP <= 0
	}
}

// enterExecution drains the proposal queue for real, then either loops
// back to TacticalPlanning (AP remains) or proceeds to EnemyAction.
func enterExecution(state *GameState) {
	state.Phase = PhaseExecution
	if err := replayQueue(state, false); err != nil {
		state.LatestEvent = err.Error()
	}
	state.ProposalQueue = nil
	if anyAPRemaining(state) {
		enterTacticalPlanning(state)
		return
	}
	enterEnemyAction(state)
}

func anyAPRemaining(state *GameState) bool {
	for _, p := range state.Players() {
		if !p.isFainted() && p.AP > 0 {
			return true
		}
	}
	return false
}

// enterEnemyAction runs the fixed EnemyAction pipeline of §4.5 in
// order, then either ends the game or advances to the next round's
// MorningReport.
func enterEnemyAction(state *GameState) {
	state.Phase = PhaseEnemyAction
	if state.Enemy != nil && state.Enemy.NextAttack != nil {
		applyTelegraphResolution(state, state.Enemy.NextAttack)
	}
	resolveEnemyAttack(state)
	resolveHazards(state)
	for _, c := range activeBehaviorsInOrder(state) {
		GetBehavior(c.ID).OnRoundEnd(state)
	}
	checkBossProgression(state)
	if state.Phase == PhaseVictory {
		return
	}
	if state.allFainted() || state.HullIntegrity <= 0 {
		state.Phase = PhaseGameOver
		return
	}
	state.TurnCount++
	enterMorningReport(state)
}
