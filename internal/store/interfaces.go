// Package store defines the persistence boundary the core (pkg/voyage)
// explicitly has none of: an append-only event log and room metadata in
// Postgres, plus a live-state/sequence cache in Redis, so the relay can
// rehydrate a room after a restart and replay Event messages on reconnect.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sintftl/voyage/internal/model"
)

// AccountRepository defines lobby account data operations.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*model.Account, error)
	FindByProviderID(ctx context.Context, provider, providerID string) (*model.Account, error)
	Upsert(ctx context.Context, provider, providerID, displayName, avatarURL string) (*model.Account, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}

// RoomRepository defines room and room-membership data operations.
type RoomRepository interface {
	Create(ctx context.Context, name, creatorID, layout string) (*model.Room, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	ListOpen(ctx context.Context) ([]model.Room, error)
	ListByPlayer(ctx context.Context, playerID string) ([]model.Room, error)
	AddPlayer(ctx context.Context, roomID, playerID, name string) error
	ListPlayers(ctx context.Context, roomID string) ([]model.RoomPlayer, error)
	PlayerCount(ctx context.Context, roomID string) (int, error)
	SetStarted(ctx context.Context, roomID string) error
	SetFinished(ctx context.Context, roomID, outcome string) error
	Delete(ctx context.Context, roomID string) error
}

// EventRepository defines the append-only room_events log plus periodic
// full-state snapshots used to bound replay-on-reconnect cost.
type EventRepository interface {
	AppendEvent(ctx context.Context, roomID, playerID string, sequence uint64, actionJSON json.RawMessage) (*model.RoomEvent, error)
	EventsSince(ctx context.Context, roomID string, sequence uint64) ([]model.RoomEvent, error)
	SaveSnapshot(ctx context.Context, roomID string, sequence uint64, stateJSON json.RawMessage) error
	LatestSnapshot(ctx context.Context, roomID string) (*model.RoomSnapshot, error)
}

// StateCache defines the live per-room GameState cache and sequence
// counter (Redis), keyed exactly like the teacher's stateKey/timerKey
// helpers.
type StateCache interface {
	SetState(ctx context.Context, roomID string, state json.RawMessage) error
	GetState(ctx context.Context, roomID string) (json.RawMessage, error)
	NextSequence(ctx context.Context, roomID string) (uint64, error)
	CurrentSequence(ctx context.Context, roomID string) (uint64, error)
	DeleteRoom(ctx context.Context, roomID string) error
	SetIdleDeadline(ctx context.Context, roomID string, ttl time.Duration) error
}
