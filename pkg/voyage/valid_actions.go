package voyage

// GetValidActions enumerates every currently-legal Game action for a
// player against the projected state (§4.6): every reachable Move, every
// parameterized action over its valid targets, and every no-arg action
// with a successful validate. Used by the external solver and by UI
// hinting.
func GetValidActions(state *GameState, pid PlayerID) []Action {
	if state.Phase != PhaseTacticalPlanning {
		return nil
	}
	proj, err := projectState(state)
	if err != nil {
		return nil
	}
	p := proj.Player(pid)
	if p == nil || p.isFainted() {
		return nil
	}

	var out []Action
	try := func(a Action) {
		if validateGameAction(proj, pid, a) == nil {
			out = append(out, a)
		}
	}

	for _, roomID := range proj.Map.RoomsWithinAP(p.RoomID, p.AP) {
		if roomID == p.RoomID {
			continue
		}
		try(MoveAction{ToRoom: roomID})
	}

	try(BakeAction{})
	try(ShootAction{})
	try(RaiseShieldsAction{})
	try(EvasiveManeuversAction{})
	try(LookoutAction{})
	try(ExtinguishAction{})
	try(RepairAction{})
	try(InteractAction{})
	try(PassAction{})

	for _, other := range proj.Players() {
		if other.ID == pid {
			continue
		}
		try(FirstAidAction{Target: other.ID})
		try(ReviveAction{Target: other.ID})
		for i := range p.Inventory {
			try(ThrowAction{Target: other.ID, Index: i})
		}
	}

	for _, it := range allItemTypes {
		try(PickUpAction{Item: it})
	}
	for i := range p.Inventory {
		try(DropAction{Index: i})
	}

	for _, pa := range state.ProposalQueue {
		try(UndoAction{ActionID: pa.ID})
	}

	return out
}

var allItemTypes = []ItemType{ItemPeppernut, ItemExtinguisher, ItemWheelbarrow, ItemKeychain, ItemMitre}
