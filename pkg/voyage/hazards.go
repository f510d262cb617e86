package voyage

// resolveHazards runs the per-room Fire/Water resolution sweep of §4.5,
// in ascending RoomId order, regardless of is_resting. It is distinct
// from the enemy-attack hazard placement in enemy.go: this function
// only processes hazards already sitting in rooms, including ones the
// enemy attack (or a card's on_round_end) just placed this round.
func resolveHazards(state *GameState) {
	for _, room := range state.Map.Rooms() {
		resolveRoomFire(state, room)
		resolveRoomWater(state, room)
	}
}

func resolveRoomFire(state *GameState, room *Room) {
	fireCount := countHazard(room.Hazards, HazardFire)
	if fireCount == 0 {
		return
	}
	for _, p := range state.Players() {
		if p.RoomID == room.ID && !p.isFainted() {
			damagePlayer(p, 1)
		}
	}
	room.SystemHealth -= fireCount
	if room.SystemHealth < 0 {
		room.SystemHealth = 0
	}
	room.IsBroken = room.IsBroken || room.SystemHealth <= 0

	k := fireSpreadExponent(room)
	if fireCount < k {
		return
	}
	for _, nbID := range room.Neighbors {
		if state.rollChance(k) {
			nb := state.Map.Room(nbID)
			if nb != nil {
				nb.Hazards = append(nb.Hazards, HazardFire)
			}
		}
	}
}

// fireSpreadExponent is both the minimum fire count required before a
// room can spread at all, and the exponent in the 1/2^k per-neighbor
// spread chance: Cargo is volatile (k=1, one fire is enough); every
// other room is standard (k=2, two fires are required).
func fireSpreadExponent(room *Room) int {
	if room.System != nil && *room.System == SystemCargo {
		return 1
	}
	return 2
}

func resolveRoomWater(_ *GameState, room *Room) {
	if countHazard(room.Hazards, HazardWater) == 0 {
		return
	}
	if room.System != nil && *room.System == SystemStorage {
		return
	}
	var kept []ItemType
	for _, it := range room.Items {
		if it != ItemPeppernut {
			kept = append(kept, it)
		}
	}
	room.Items = kept
}

func countHazard(hazards []HazardType, want HazardType) int {
	n := 0
	for _, h := range hazards {
		if h == want {
			n++
		}
	}
	return n
}

// damagePlayer applies hp damage, capping at 0 and marking Fainted.
func damagePlayer(p *Player, amount int) {
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.Status |= StatusFainted
	}
}
