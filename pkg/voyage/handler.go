package voyage

// actionHandler is the per-Game-action component described by §4.3:
// a fixed base cost, a pre-enqueue validator, and an executor that
// must behave identically whether simulation is true or false except
// for masking nondeterministic outcomes. Grounded on the original
// source's ActionHandler trait (handlers/mod.rs).
//
// Pass and Undo are not routed through this interface: both mutate the
// proposal queue itself rather than projected game state, so they are
// handled directly by the queue/phase orchestration.
type actionHandler interface {
	baseCost(state *GameState, pid PlayerID) int
	validate(state *GameState, pid PlayerID) error
	execute(state *GameState, pid PlayerID, simulation bool) error
}

// getHandler dispatches a Game action to its handler, carrying the
// action's own parameters (to_room, target, item_index, ...) into the
// handler value the way the original source's Box<dyn ActionHandler>
// construction does per match arm.
func getHandler(a Action) actionHandler {
	switch act := a.(type) {
	case MoveAction:
		return moveHandler{toRoom: act.ToRoom}
	case BakeAction:
		return bakeHandler{}
	case ShootAction:
		return shootHandler{}
	case RaiseShieldsAction:
		return raiseShieldsHandler{}
	case EvasiveManeuversAction:
		return evasiveManeuversHandler{}
	case LookoutAction:
		return lookoutHandler{}
	case FirstAidAction:
		return firstAidHandler{target: act.Target}
	case ReviveAction:
		return reviveHandler{target: act.Target}
	case PickUpAction:
		return pickUpHandler{item: act.Item}
	case DropAction:
		return dropHandler{index: act.Index}
	case ThrowAction:
		return throwHandler{target: act.Target, index: act.Index}
	case ExtinguishAction:
		return extinguishHandler{}
	case RepairAction:
		return repairHandler{}
	case InteractAction:
		return interactHandler{}
	default:
		return noOpHandler{}
	}
}

// noOpHandler covers Pass/Undo/Meta actions reaching this path by
// mistake; the real handling for those lives in the queue/phase layer.
type noOpHandler struct{}

func (noOpHandler) baseCost(*GameState, PlayerID) int          { return 0 }
func (noOpHandler) validate(*GameState, PlayerID) error        { return nil }
func (noOpHandler) execute(*GameState, PlayerID, bool) error   { return nil }

// finalActionCost folds modify_action_cost across active situations in
// ascending CardID order on top of a handler's base_cost, per §4.3.
func finalActionCost(state *GameState, pid PlayerID, a Action) int {
	cost := getHandler(a).baseCost(state, pid)
	for _, c := range activeBehaviorsInOrder(state) {
		cost = GetBehavior(c.ID).ModifyActionCost(state, pid, a, cost)
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}
