package model

import (
	"encoding/json"
	"time"
)

// Account represents a registered lobby account, authenticated via
// Google OAuth (internal/auth) and identified thereafter by a JWT
// naming its PlayerID.
type Account struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	ProviderID  string    `json:"provider_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room represents one voyage: a single playthrough of the game core
// from Lobby to Victory/GameOver, identified independently of any
// account so guests can join with just a PlayerID.
type Room struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CreatorID  string     `json:"creator_id"`
	Status     string     `json:"status"` // lobby, active, finished
	Layout     string     `json:"layout"` // "Star" or "Torus"
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Outcome    string     `json:"outcome,omitempty"` // "victory", "game_over"
}

// RoomPlayer represents one player's membership in a room.
type RoomPlayer struct {
	RoomID   string    `json:"room_id"`
	PlayerID string    `json:"player_id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// RoomEvent is one row of the append-only event log a room's actions
// are persisted to (table room_events): the Action envelope a player
// submitted plus the sequence number the relay assigned it, enough to
// replay a room from scratch by feeding each Action back through
// voyage.ApplyAction in order.
type RoomEvent struct {
	ID         string          `json:"id"`
	RoomID     string          `json:"room_id"`
	Sequence   uint64          `json:"sequence"`
	PlayerID   string          `json:"player_id"`
	ActionJSON json.RawMessage `json:"action"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RoomSnapshot is a point-in-time GameState capture taken every
// snapshotInterval events (see RoomService.SubmitAction), stored alongside the event log so replay-on-reconnect
// doesn't have to start from sequence zero for a long-running room.
type RoomSnapshot struct {
	RoomID     string          `json:"room_id"`
	Sequence   uint64          `json:"sequence"`
	StateJSON  json.RawMessage `json:"state"`
	TakenAt    time.Time       `json:"taken_at"`
}
