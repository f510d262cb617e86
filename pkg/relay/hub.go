// Package relay implements the §6 websocket wire protocol: a Hub that
// tracks, per room, the connections subscribed to it and fans out Event
// messages already numbered by the store, and tells a connection to
// SyncRequest a fresh snapshot when its stream has a gap.
package relay

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message kinds, §6.
const (
	KindJoin        = "Join"
	KindEvent       = "Event"
	KindSyncRequest = "SyncRequest"
	KindWelcome     = "Welcome"
	KindError       = "Error"
)

// Envelope is the wire shape shared by every direction: {"type": "...",
// "payload": {...}}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinPayload is the client->server Join payload.
type JoinPayload struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

// EventPayload carries one Action's wire form tagged with its
// position in the room's proposal/event stream.
type EventPayload struct {
	SequenceID uint64          `json:"sequence_id"`
	Data       json.RawMessage `json:"data"`
}

// WelcomePayload is the server->client Join acknowledgement.
type WelcomePayload struct {
	RoomID string `json:"room_id"`
}

// ErrorPayload carries a human-readable rejection reason.
type ErrorPayload struct {
	Msg string `json:"msg"`
}

// Conn wraps one websocket connection with the room/player it joined.
type Conn struct {
	conn     *websocket.Conn
	playerID string
	roomID   string
	send     chan []byte
}

// NewConn wraps a raw websocket connection before it has joined a room.
func NewConn(c *websocket.Conn) *Conn {
	return &Conn{conn: c, send: make(chan []byte, 32)}
}

// Conn exposes the underlying websocket connection for the read/write
// pump goroutines the caller runs (symmetric with the teacher's
// ws_handler.go read/write loop split).
func (c *Conn) Conn() *websocket.Conn { return c.conn }

// Send returns the outbound buffered channel a write-pump goroutine
// should drain.
func (c *Conn) Send() <-chan []byte { return c.send }

// Hub fans Event broadcasts out to every connection subscribed to a
// room. Sequence numbering is NOT the Hub's job: internal/store owns
// the single counter shared by the room_events log and the live Event
// stream, so a client's gap detection lines up with what a FullSync
// would replay. The Hub only fans out bytes it is handed.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Conn]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Conn]bool),
	}
}

// Join registers c under roomID and sends it a Welcome.
func (h *Hub) Join(c *Conn, roomID, playerID string) {
	h.mu.Lock()
	c.roomID = roomID
	c.playerID = playerID
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Conn]bool)
	}
	h.rooms[roomID][c] = true
	h.mu.Unlock()

	h.sendTo(c, KindWelcome, WelcomePayload{RoomID: roomID})
}

// Leave removes c from its room and closes its send channel.
func (h *Hub) Leave(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[c.roomID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	close(c.send)
}

// BroadcastEvent wraps an already-sequenced EventPayload (sequence_id
// assigned by internal/store) in an Event envelope and fans it out to
// every connection in roomID.
func (h *Hub) BroadcastEvent(roomID string, seq uint64, data json.RawMessage) {
	h.mu.RLock()
	conns := h.rooms[roomID]
	h.mu.RUnlock()

	payload := EventPayload{SequenceID: seq, Data: data}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to marshal event payload")
		return
	}
	env, err := json.Marshal(Envelope{Type: KindEvent, Payload: raw})
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to marshal event envelope")
		return
	}

	for c := range conns {
		select {
		case c.send <- env:
		default:
			log.Warn().Str("playerId", c.playerID).Str("roomId", roomID).Msg("dropping event, send buffer full; client must SyncRequest")
		}
	}
}

// RequestSync tells a single connection its stream has a gap and it
// must ask for a fresh snapshot.
func (h *Hub) RequestSync(c *Conn) {
	h.sendTo(c, KindSyncRequest, nil)
}

// SendFullSync answers a single connection's SyncRequest with a
// FullSync Action envelope, addressed only to that connection rather
// than broadcast to the whole room.
func (h *Hub) SendFullSync(c *Conn, seq uint64, data json.RawMessage) {
	h.sendTo(c, KindEvent, EventPayload{SequenceID: seq, Data: data})
}

// SendError tells a single connection its last submission was rejected.
func (h *Hub) SendError(c *Conn, msg string) {
	h.sendTo(c, KindError, ErrorPayload{Msg: msg})
}

func (h *Hub) sendTo(c *Conn, kind string, payload any) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Error().Err(err).Str("kind", kind).Msg("failed to marshal payload")
			return
		}
		raw = b
	}
	env, err := json.Marshal(Envelope{Type: kind, Payload: raw})
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to marshal envelope")
		return
	}
	select {
	case c.send <- env:
	default:
		log.Warn().Str("playerId", c.playerID).Msg("dropping direct message, send buffer full")
	}
}

// RoomSize returns how many connections are currently joined to roomID.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

