package voyage

// pickUpHandler moves one item instance from the current room into the
// actor's inventory, subject to the ammo/tool capacity rules of §4.3.
type pickUpHandler struct{ item ItemType }

func (pickUpHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (h pickUpHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	if p == nil {
		return actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	room := state.Map.Room(p.RoomID)
	if room == nil {
		return actionError(ErrRoomNotFound, "player is in an unknown room")
	}
	if !hasItem(room.Items, h.item) {
		return invalidActionf("no %s here to pick up", h.item)
	}
	return checkInventoryCapacity(p, h.item)
}

func (h pickUpHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	room := state.Map.Room(p.RoomID)
	room.Items = removeOneItem(room.Items, h.item)
	p.Inventory = append(p.Inventory, h.item)
	return nil
}

// checkInventoryCapacity enforces the default 1-ammo cap (5 with a
// Wheelbarrow) and the 1-per-tool cap for every non-ammo item.
func checkInventoryCapacity(p *Player, item ItemType) error {
	if item == ItemPeppernut {
		if p.ammoCount() >= p.ammoCap() {
			return actionError(ErrInventoryFull, "ammo capacity reached")
		}
		return nil
	}
	if p.hasTool(item) {
		return actionError(ErrInventoryFull, "already carrying a %s", item)
	}
	return nil
}

// dropHandler removes an item from the actor's inventory into the
// current room. Free (base cost 0) per §4.3.
type dropHandler struct{ index int }

func (dropHandler) baseCost(*GameState, PlayerID) int { return 0 }

func (h dropHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	if p == nil {
		return actionError(ErrPlayerNotFound, "unknown player %q", pid)
	}
	if h.index < 0 || h.index >= len(p.Inventory) {
		return invalidActionf("no item at inventory index %d", h.index)
	}
	return nil
}

func (h dropHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	room := state.Map.Room(p.RoomID)
	item := p.Inventory[h.index]
	p.Inventory = append(p.Inventory[:h.index], p.Inventory[h.index+1:]...)
	if room != nil {
		room.Items = append(room.Items, item)
	}
	return nil
}

// throwHandler passes a throwable item (Peppernut only) to a crewmate
// in the same or a neighboring room.
type throwHandler struct {
	target PlayerID
	index  int
}

func (throwHandler) baseCost(*GameState, PlayerID) int { return 1 }

func (h throwHandler) validate(state *GameState, pid PlayerID) error {
	p := state.Player(pid)
	t := state.Player(h.target)
	if p == nil || t == nil {
		return actionError(ErrPlayerNotFound, "unknown player")
	}
	if h.index < 0 || h.index >= len(p.Inventory) {
		return invalidActionf("no item at inventory index %d", h.index)
	}
	item := p.Inventory[h.index]
	if item != ItemPeppernut {
		return invalidActionf("%s cannot be thrown", item)
	}
	if t.RoomID != p.RoomID && state.Map.Distance(p.RoomID, t.RoomID) != 1 {
		return invalidActionf("Throw target must be in the same or a neighboring room")
	}
	return checkInventoryCapacity(t, item)
}

func (h throwHandler) execute(state *GameState, pid PlayerID, _ bool) error {
	if err := h.validate(state, pid); err != nil {
		return err
	}
	p := state.Player(pid)
	t := state.Player(h.target)
	item := p.Inventory[h.index]
	p.Inventory = append(p.Inventory[:h.index], p.Inventory[h.index+1:]...)
	t.Inventory = append(t.Inventory, item)
	return nil
}

func hasItem(items []ItemType, want ItemType) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

func removeOneItem(items []ItemType, want ItemType) []ItemType {
	for i, it := range items {
		if it == want {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
