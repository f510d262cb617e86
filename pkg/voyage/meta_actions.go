package voyage

// applyMetaAction handles the six Meta actions (§4.3), which mutate
// state immediately regardless of phase except where a specific action
// restricts itself to Lobby.
func applyMetaAction(state *GameState, pid PlayerID, action Action) (*GameState, error) {
	if err := validateAgainstCards(state, pid, action); err != nil {
		return nil, err
	}
	switch act := action.(type) {
	case JoinAction:
		if state.Phase != PhaseLobby {
			return nil, invalidActionf("Join is only valid in Lobby")
		}
		next := state.Clone()
		next.addPlayer(act.PlayerID, string(act.PlayerID))
		return next, nil

	case SetNameAction:
		next := state.Clone()
		p := next.Player(pid)
		if p == nil {
			return nil, actionError(ErrPlayerNotFound, "unknown player %q", pid)
		}
		p.Name = act.Name
		return next, nil

	case SetMapLayoutAction:
		if state.Phase != PhaseLobby {
			return nil, invalidActionf("SetMapLayout is only valid in Lobby")
		}
		next := state.Clone()
		next.Map = GenerateMap(act.Layout)
		next.Layout = act.Layout
		for _, p := range next.Players() {
			p.IsReady = false
		}
		return next, nil

	case FullSyncAction:
		if act.State == nil {
			return nil, invalidActionf("FullSync requires a state")
		}
		return act.State.Clone(), nil

	case VoteReadyAction:
		next := state.Clone()
		p := next.Player(pid)
		if p == nil {
			return nil, actionError(ErrPlayerNotFound, "unknown player %q", pid)
		}
		if !p.isFainted() {
			p.IsReady = act.Ready
		}
		maybeAdvance(next)
		return next, nil

	case ChatAction:
		next := state.Clone()
		next.ChatLog = append(next.ChatLog, ChatMessage{PlayerID: pid, Text: act.Message})
		return next, nil

	default:
		return nil, invalidActionf("unknown meta action %q", action.Kind())
	}
}

// validateAgainstCards runs every active situation's ValidateAction
// hook against an action before it is applied, regardless of whether
// the action is Meta or Game (e.g. The Reader's Afternoon Nap gates
// which Meta actions a silenced crew may still submit).
func validateAgainstCards(state *GameState, pid PlayerID, action Action) error {
	for _, c := range activeBehaviorsInOrder(state) {
		if err := GetBehavior(c.ID).ValidateAction(state, pid, action); err != nil {
			return err
		}
	}
	return nil
}
