package voyage

// moveHandler relocates the actor to an adjacent room. Grounded
// directly on the original source's MoveHandler (handlers/move_action.rs).
type moveHandler struct{ toRoom RoomID }

func (moveHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (h moveHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	if p == nil {
		return actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	room := state.Map.Room(p.RoomID)
	if room == nil {
		return actionError(ErrRoomNotFound, "player is in an unknown room")
	}
	for _, nb := range room.Neighbors {
		if nb == h.toRoom {
			return nil
		}
	}
	return actionError(ErrInvalidMove, "room %d is not adjacent to %d", h.toRoom, p.RoomID)
}

func (h moveHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	state.Player(pid).RoomID = h.toRoom
	return nil
}
