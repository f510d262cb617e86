package voyage

// extinguishHandler removes one Fire token from the current room.
type extinguishHandler struct{}

func (extinguishHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (extinguishHandler) validate(state *GameState, pid PlayerID) error {
	room, err := playerRoom(state, pid)
	if err != nil {
		return err
	}
	if !hasHazard(room.Hazards, HazardFire) {
		return invalidActionf("no Fire here to extinguish")
	}
	return nil
}

func (h extinguishHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	room := state.Map.Room(p.RoomID)
	room.Hazards = removeOneHazard(room.Hazards, HazardFire)
	return nil
}

// repairHandler removes one Water token from the current room. In
// Cargo, with no Water present, it instead repairs the hull (blocked
// if Fire is present).
type repairHandler struct{}

func (repairHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (repairHandler) validate(state *GameState, pid PlayerID) error {
	room, err := playerRoom(state, pid)
	if err != nil {
		return err
	}
	if hasHazard(room.Hazards, HazardWater) {
		return nil
	}
	if room.System != nil && *room.System == SystemCargo {
		if hasHazard(room.Hazards, HazardFire) {
			return invalidActionf("cannot repair the hull while Cargo is on Fire")
		}
		return nil
	}
	return invalidActionf("no Water here to repair")
}

func (h repairHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	room := state.Map.Room(p.RoomID)
	if hasHazard(room.Hazards, HazardWater) {
		room.Hazards = removeOneHazard(room.Hazards, HazardWater)
		return nil
	}
	state.HullIntegrity = clampHull(state.HullIntegrity + 1)
	return nil
}

// reviveHandler brings a Fainted crewmate back up in Dormitory.
type reviveHandler struct{ target PlayerID }

func (reviveHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (h reviveHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	t := state.Player(h.target)
	if p == nil || t == nil {
		return actionError(ErrPlayerNotFound, "unknown player")
	}
	if !t.isFainted() {
		return invalidActionf("Revive target is not Fainted")
	}
	if t.RoomID != p.RoomID {
		return invalidActionf("Revive target must be in the same room")
	}
	dormitory, ok := state.Map.RoomWithSystem(SystemDormitory)
	if !ok || p.RoomID != dormitory {
		return invalidActionf("Revive requires Dormitory")
	}
	return nil
}

func (h reviveHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	t := state.Player(h.target)
	t.HP = 1
	t.Status &^= StatusFainted
	return nil
}

// interactHandler solves the first matching active situation in the
// current room, per §4.3. The action's own queue-level base cost (1,
// the default) pays for attempting the interaction; the card's own
// CardSolution.APCost is a separate, per-solve resource spent directly
// here, since it models the cost of the specific puzzle rather than
// the cost of moving/acting in general.
type interactHandler struct{}

func (interactHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (interactHandler) validate(state *GameState, pid PlayerID) error {
	c := findSolvableCard(state, pid)
	if c == nil {
		return invalidActionf("nothing to Interact with here")
	}
	p := state.Player(pid)
	if c.Solution.APCost > 0 && p.AP < c.Solution.APCost {
		return invalidActionf("solving %s needs %d AP", c.Title, c.Solution.APCost)
	}
	if c.Solution.ItemCost != nil && !p.hasTool(*c.Solution.ItemCost) && !(*c.Solution.ItemCost == ItemPeppernut && p.ammoCount() > 0) {
		return invalidActionf("solving %s needs a %s", c.Title, *c.Solution.ItemCost)
	}
	return nil
}

func (h interactHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	c := findSolvableCard(state, pid)

	p.AP -= c.Solution.APCost
	if p.AP < 0 {
		p.AP = 0
	}
	if c.Solution.ItemCost != nil {
		p.Inventory = removeOneItem(p.Inventory, *c.Solution.ItemCost)
	}
	c.PlayersSolving++

	required := c.Solution.RequiredPlayers
	if required < 1 {
		required = 1
	}
	if c.PlayersSolving >= required {
		GetBehavior(c.ID).OnSolved(state)
		removeActiveSituation(state, c.ID)
	}
	return nil
}

// findSolvableCard returns the first active situation (ascending
// CardID) the acting player can currently solve, or nil.
func findSolvableCard(state *GameState, pid PlayerID) *Card {
	for _, c := range activeBehaviorsInOrder(state) {
		if c.Solution == nil {
			continue
		}
		if GetBehavior(c.ID).CanSolve(state, pid) {
			return c
		}
	}
	return nil
}

func playerRoom(state *GameState, pid PlayerID) (*Room, error) {
	p := state.Player(pid)
	if p == nil {
		return nil, actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	room := state.Map.Room(p.RoomID)
	if room == nil {
		return nil, actionError(ErrRoomNotFound, "player is in an unknown room")
	}
	return room, nil
}

func hasHazard(hazards []HazardType, want HazardType) bool {
	for _, h := range hazards {
		if h == want {
			return true
		}
	}
	return false
}

func removeOneHazard(hazards []HazardType, want HazardType) []HazardType {
	for i, h := range hazards {
		if h == want {
			return append(hazards[:i], hazards[i+1:]...)
		}
	}
	return hazards
}
