package voyage

import "encoding/json"

// This file gives GameMap and GameState custom JSON codecs because both
// types hold their deterministic-iteration-order collections behind
// unexported slice+index pairs (see DESIGN NOTES, "Ordered maps"). The
// wire shape is still a plain JSON object with field-name keys and
// array-valued ordered collections, satisfying the §6 serialization
// contract (stable encoding, a hash of which is a valid state signature).

type roomWire struct {
	ID           RoomID       `json:"id"`
	Name         string       `json:"name"`
	System       *SystemType  `json:"system,omitempty"`
	Neighbors    []RoomID     `json:"neighbors"`
	Hazards      []HazardType `json:"hazards"`
	Items        []ItemType   `json:"items"`
	SystemHealth int          `json:"system_health"`
	IsBroken     bool         `json:"is_broken"`
}

type mapWire struct {
	Layout Layout     `json:"layout"`
	Rooms  []roomWire `json:"rooms"`
}

func (m *GameMap) MarshalJSON() ([]byte, error) {
	w := mapWire{Layout: m.Layout}
	for _, r := range m.rooms {
		w.Rooms = append(w.Rooms, roomWire{
			ID: r.ID, Name: r.Name, System: r.System, Neighbors: r.Neighbors,
			Hazards: r.Hazards, Items: r.Items, SystemHealth: r.SystemHealth, IsBroken: r.IsBroken,
		})
	}
	return json.Marshal(w)
}

func (m *GameMap) UnmarshalJSON(data []byte) error {
	var w mapWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	rooms := make([]*Room, len(w.Rooms))
	for i, rw := range w.Rooms {
		rooms[i] = &Room{
			ID: rw.ID, Name: rw.Name, System: rw.System, Neighbors: rw.Neighbors,
			Hazards: rw.Hazards, Items: rw.Items, SystemHealth: rw.SystemHealth, IsBroken: rw.IsBroken,
		}
	}
	*m = *newMap(w.Layout, rooms)
	return nil
}

type proposedActionWire struct {
	ID       string          `json:"id"`
	PlayerID PlayerID        `json:"player_id"`
	Action   json.RawMessage `json:"action"`
}

func (p ProposedAction) MarshalJSON() ([]byte, error) {
	actionJSON, err := MarshalAction(p.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(proposedActionWire{ID: p.ID, PlayerID: p.PlayerID, Action: actionJSON})
}

func (p *ProposedAction) UnmarshalJSON(data []byte) error {
	var w proposedActionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	action, err := UnmarshalAction(w.Action)
	if err != nil {
		return err
	}
	p.ID = w.ID
	p.PlayerID = w.PlayerID
	p.Action = action
	return nil
}

type stateWire struct {
	Phase            Phase         `json:"phase"`
	TurnCount        int           `json:"turn_count"`
	HullIntegrity    int           `json:"hull_integrity"`
	ShieldsActive    bool          `json:"shields_active"`
	EvasionActive    bool          `json:"evasion_active"`
	IsResting        bool          `json:"is_resting"`
	BossLevel        int           `json:"boss_level"`
	Enemy            *Enemy        `json:"enemy,omitempty"`
	Map              *GameMap      `json:"map"`
	Layout           Layout        `json:"layout"`
	Players          []*Player     `json:"players"`
	Deck             []CardID      `json:"deck"`
	Discard          []CardID      `json:"discard"`
	ActiveSituations []*Card       `json:"active_situations"`
	LatestEvent      string        `json:"latest_event,omitempty"`
	ProposalQueue    []ProposedAction `json:"proposal_queue"`
	RngSeed          uint64        `json:"rng_seed"`
	ChatLog          []ChatMessage `json:"chat_log"`
}

func (s *GameState) MarshalJSON() ([]byte, error) {
	w := stateWire{
		Phase: s.Phase, TurnCount: s.TurnCount, HullIntegrity: s.HullIntegrity,
		ShieldsActive: s.ShieldsActive, EvasionActive: s.EvasionActive, IsResting: s.IsResting,
		BossLevel: s.BossLevel, Enemy: s.Enemy, Map: s.Map, Layout: s.Layout,
		Players: s.Players(), Deck: s.Deck, Discard: s.Discard,
		ActiveSituations: s.ActiveSituations, LatestEvent: s.LatestEvent,
		ProposalQueue: s.ProposalQueue, RngSeed: s.RngSeed, ChatLog: s.ChatLog,
	}
	return json.Marshal(w)
}

func (s *GameState) UnmarshalJSON(data []byte) error {
	var w stateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Phase = w.Phase
	s.TurnCount = w.TurnCount
	s.HullIntegrity = w.HullIntegrity
	s.ShieldsActive = w.ShieldsActive
	s.EvasionActive = w.EvasionActive
	s.IsResting = w.IsResting
	s.BossLevel = w.BossLevel
	s.Enemy = w.Enemy
	s.Map = w.Map
	s.Layout = w.Layout
	s.Deck = w.Deck
	s.Discard = w.Discard
	s.ActiveSituations = w.ActiveSituations
	s.LatestEvent = w.LatestEvent
	s.ProposalQueue = w.ProposalQueue
	s.RngSeed = w.RngSeed
	s.ChatLog = w.ChatLog

	s.playerOrder = nil
	s.players = make(map[PlayerID]*Player, len(w.Players))
	for _, p := range w.Players {
		s.playerOrder = append(s.playerOrder, p.ID)
		s.players[p.ID] = p
	}
	return nil
}
