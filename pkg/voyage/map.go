package voyage

// RoomID identifies a room within a GameMap.
type RoomID int

// SystemType names a role a room performs. Each appears in at most one
// room per layout.
type SystemType int

const (
	SystemBow SystemType = iota
	SystemDormitory
	SystemCargo
	SystemEngine
	SystemKitchen
	SystemCannons
	SystemBridge
	SystemSickbay
	SystemStorage
	SystemHallway
)

func (s SystemType) String() string {
	switch s {
	case SystemBow:
		return "Bow"
	case SystemDormitory:
		return "Dormitory"
	case SystemCargo:
		return "Cargo"
	case SystemEngine:
		return "Engine"
	case SystemKitchen:
		return "Kitchen"
	case SystemCannons:
		return "Cannons"
	case SystemBridge:
		return "Bridge"
	case SystemSickbay:
		return "Sickbay"
	case SystemStorage:
		return "Storage"
	case SystemHallway:
		return "Hallway"
	default:
		return "Unknown"
	}
}

// ItemType enumerates the items that can occupy a room or an inventory slot.
type ItemType int

const (
	ItemPeppernut ItemType = iota
	ItemExtinguisher
	ItemWheelbarrow
	ItemKeychain
	ItemMitre
)

func (i ItemType) String() string {
	switch i {
	case ItemPeppernut:
		return "Peppernut"
	case ItemExtinguisher:
		return "Extinguisher"
	case ItemWheelbarrow:
		return "Wheelbarrow"
	case ItemKeychain:
		return "Keychain"
	case ItemMitre:
		return "Mitre"
	default:
		return "Unknown"
	}
}

// HazardType is a token occupying a room.
type HazardType int

const (
	HazardFire HazardType = iota
	HazardWater
)

func (h HazardType) String() string {
	if h == HazardFire {
		return "Fire"
	}
	return "Water"
}

// Layout selects one of the two frozen map topologies.
type Layout int

const (
	LayoutStar Layout = iota
	LayoutTorus
)

// SystemHealth is the starting (and max) health of a room's system.
const SystemHealth = 3

// Room is one node of the fixed ship graph.
type Room struct {
	ID           RoomID
	Name         string
	System       *SystemType // nil if the room has no system
	Neighbors    []RoomID    // ordered
	Hazards      []HazardType
	Items        []ItemType
	SystemHealth int
	IsBroken     bool
}

func (r *Room) clone() Room {
	c := Room{
		ID:           r.ID,
		Name:         r.Name,
		SystemHealth: r.SystemHealth,
		IsBroken:     r.IsBroken,
	}
	if r.System != nil {
		s := *r.System
		c.System = &s
	}
	c.Neighbors = append([]RoomID(nil), r.Neighbors...)
	c.Hazards = append([]HazardType(nil), r.Hazards...)
	c.Items = append([]ItemType(nil), r.Items...)
	return c
}

func sys(s SystemType) *SystemType { return &s }

// GameMap is a dense-indexed room graph, following the teacher's
// DiplomacyMap idiom of pairing an ID->index map with array storage so
// that repeated lookups during resolution never hash a string key.
type GameMap struct {
	Layout Layout
	rooms  []*Room      // ordered by RoomID, index == RoomID
	index  map[RoomID]int
	dist   [][]int // all-pairs BFS distance cache, -1 if unreachable
}

// Room returns the room for id, or nil if it does not exist.
func (m *GameMap) Room(id RoomID) *Room {
	idx, ok := m.index[id]
	if !ok {
		return nil
	}
	return m.rooms[idx]
}

// Rooms returns all rooms in ascending RoomID order.
func (m *GameMap) Rooms() []*Room {
	return m.rooms
}

// RoomWithSystem returns the RoomID of the room carrying the given
// system, if any exists in this layout.
func (m *GameMap) RoomWithSystem(s SystemType) (RoomID, bool) {
	for _, r := range m.rooms {
		if r.System != nil && *r.System == s {
			return r.ID, true
		}
	}
	return 0, false
}

// Distance returns the BFS hop distance between two rooms, or -1 if
// unreachable (never happens on a connected map).
func (m *GameMap) Distance(from, to RoomID) int {
	fi, ok1 := m.index[from]
	ti, ok2 := m.index[to]
	if !ok1 || !ok2 {
		return -1
	}
	return m.dist[fi][ti]
}

func (m *GameMap) clone() *GameMap {
	c := &GameMap{Layout: m.Layout, index: make(map[RoomID]int, len(m.index))}
	c.rooms = make([]*Room, len(m.rooms))
	for i, r := range m.rooms {
		room := r.clone()
		c.rooms[i] = &room
	}
	for k, v := range m.index {
		c.index[k] = v
	}
	// Distance cache is immutable for the lifetime of a frozen map; share it.
	c.dist = m.dist
	return c
}

func newMap(layout Layout, rooms []*Room) *GameMap {
	m := &GameMap{Layout: layout, rooms: rooms, index: make(map[RoomID]int, len(rooms))}
	for i, r := range rooms {
		m.index[r.ID] = i
	}
	m.dist = allPairsDistances(m)
	return m
}

// GenerateMap builds a frozen GameMap for the given layout. Room
// numbering, system assignment, and default item placement are taken
// from the original source's map_gen.rs, which spec.md itself leaves
// unspecified at this level of detail.
func GenerateMap(layout Layout) *GameMap {
	switch layout {
	case LayoutTorus:
		return generateTorus()
	default:
		return generateStar()
	}
}

func generateStar() *GameMap {
	names := []string{"Central Hallway", "Bow", "Dormitory", "Cargo", "Engine", "Kitchen", "Cannons", "Bridge", "Sickbay", "Storage"}
	systems := []*SystemType{sys(SystemHallway), sys(SystemBow), sys(SystemDormitory), sys(SystemCargo), sys(SystemEngine), sys(SystemKitchen), sys(SystemCannons), sys(SystemBridge), sys(SystemSickbay), sys(SystemStorage)}
	rooms := make([]*Room, len(names))
	for i, name := range names {
		rooms[i] = &Room{ID: RoomID(i), Name: name, System: systems[i], SystemHealth: SystemHealth}
	}
	// Hub (0) connects to every spoke; each spoke connects only to the hub.
	for i := 1; i < len(rooms); i++ {
		rooms[0].Neighbors = append(rooms[0].Neighbors, RoomID(i))
		rooms[i].Neighbors = []RoomID{0}
	}
	applyDefaultItems(rooms)
	return newMap(LayoutStar, rooms)
}

func generateTorus() *GameMap {
	names := []string{"Bow", "Dormitory", "Corridor A", "Cargo", "Engine", "Kitchen", "Corridor B", "Cannons", "Bridge", "Sickbay", "Storage", "Corridor C"}
	systemFor := map[int]*SystemType{
		0: sys(SystemBow), 1: sys(SystemDormitory), 3: sys(SystemCargo), 4: sys(SystemEngine),
		5: sys(SystemKitchen), 7: sys(SystemCannons), 8: sys(SystemBridge), 9: sys(SystemSickbay), 10: sys(SystemStorage),
	}
	n := len(names)
	rooms := make([]*Room, n)
	for i, name := range names {
		rooms[i] = &Room{ID: RoomID(i), Name: name, System: systemFor[i], SystemHealth: SystemHealth}
	}
	for i := range rooms {
		prev := RoomID((i - 1 + n) % n)
		next := RoomID((i + 1) % n)
		rooms[i].Neighbors = []RoomID{prev, next}
	}
	applyDefaultItems(rooms)
	return newMap(LayoutTorus, rooms)
}

// applyDefaultItems seeds the rooms with their starting equipment,
// per map_gen.rs's RoomDef::new default-item table.
func applyDefaultItems(rooms []*Room) {
	for _, r := range rooms {
		if r.System == nil {
			continue
		}
		switch *r.System {
		case SystemStorage:
			for i := 0; i < 5; i++ {
				r.Items = append(r.Items, ItemPeppernut)
			}
		case SystemCargo:
			r.Items = append(r.Items, ItemWheelbarrow)
		case SystemEngine:
			r.Items = append(r.Items, ItemExtinguisher)
		}
	}
}

// allPairsDistances computes a BFS distance matrix once at map
// generation time, mirroring the original source's MapDistances cache.
func allPairsDistances(m *GameMap) [][]int {
	n := len(m.rooms)
	dist := make([][]int, n)
	for i, r := range m.rooms {
		d := make([]int, n)
		for j := range d {
			d[j] = -1
		}
		d[i] = 0
		queue := []RoomID{r.ID}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			curIdx := m.index[cur]
			for _, nb := range m.rooms[curIdx].Neighbors {
				nbIdx := m.index[nb]
				if d[nbIdx] == -1 {
					d[nbIdx] = d[curIdx] + 1
					queue = append(queue, nb)
				}
			}
		}
		dist[i] = d
	}
	return dist
}

// RoomsWithinAP returns every RoomID reachable from start using at
// most apBudget Move actions (each Move costs 1 AP before card
// modifiers are applied — callers needing exact costs should use
// valid-action enumeration instead).
func (m *GameMap) RoomsWithinAP(start RoomID, apBudget int) []RoomID {
	startIdx, ok := m.index[start]
	if !ok || apBudget < 0 {
		return nil
	}
	var out []RoomID
	for i, d := range m.dist[startIdx] {
		if d >= 0 && d <= apBudget {
			out = append(out, m.rooms[i].ID)
		}
	}
	return out
}
