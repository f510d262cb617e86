package voyage

// ApplyAction is the single public mutation entry point (§5). It never
// mutates the input state: every path returns a freshly cloned state
// or an error, so callers may hold independent GameState values and
// drive them from separate goroutines without coordination. Grounded
// on pkg/diplomacy's overall package-as-library shape, generalized
// here to own its own phase orchestration rather than delegate it to
// an external service layer.
func ApplyAction(state *GameState, pid PlayerID, action Action) (*GameState, error) {
	if state == nil {
		return nil, invalidActionf("nil state")
	}
	if state.Phase == PhaseVictory || state.Phase == PhaseGameOver {
		return nil, actionError(ErrGameOver, "the voyage has ended")
	}
	if IsMeta(action) {
		return applyMetaAction(state, pid, action)
	}
	return applyGameAction(state, pid, action)
}

// applyGameAction routes the 16 Game actions. Pass and Undo mutate the
// real committed state directly; every other Game action is validated
// against the projected state and appended to the proposal queue for
// Execution to drain later (§4.2, §4.3).
func applyGameAction(state *GameState, pid PlayerID, action Action) (*GameState, error) {
	if state.Phase != PhaseTacticalPlanning {
		return nil, invalidActionf("%s is only valid during TacticalPlanning", action.Kind())
	}
	p := state.Player(pid)
	if p == nil {
		return nil, actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	if p.isFainted() {
		return nil, invalidActionf("Fainted players cannot act")
	}
	if err := validateAgainstCards(state, pid, action); err != nil {
		return nil, err
	}

	switch act := action.(type) {
	case PassAction:
		return applyPass(state, pid)
	case UndoAction:
		return undoAction(state, act.ActionID)
	default:
		next, err := enqueueAction(state, pid, action)
		if err != nil {
			return nil, err
		}
		maybeAdvance(next)
		return next, nil
	}
}

// applyPass implements "Pass: sets ap=0, is_ready=true. Fails with 0 AP."
func applyPass(state *GameState, pid PlayerID) (*GameState, error) {
	p := state.Player(pid)
	if p.AP <= 0 {
		return nil, invalidActionf("Pass requires AP > 0")
	}
	next := state.Clone()
	np := next.Player(pid)
	np.AP = 0
	np.IsReady = true
	maybeAdvance(next)
	return next, nil
}
