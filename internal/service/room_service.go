package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sintftl/voyage/internal/model"
	"github.com/sintftl/voyage/internal/store"
	"github.com/sintftl/voyage/pkg/voyage"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
	ErrNotCreator   = errors.New("only the creator may do this")
	ErrAlreadyOver  = errors.New("room has already finished")
)

// snapshotInterval is how many events accumulate between full-state
// snapshots: frequent enough that a reconnect never replays more than a
// round or two of actions, cheap enough not to hit Postgres every action.
const snapshotInterval = 20

// RoomService owns the lifecycle of a voyage.GameState: it is the only
// caller of voyage.ApplyAction, persists the resulting state, and
// broadcasts the Action envelope to the relay. It holds no game rules
// of its own — every rule lives in pkg/voyage per §5's "core owns its
// own orchestration" design.
type RoomService struct {
	rooms       store.RoomRepository
	events      store.EventRepository
	cache       store.StateCache
	bc          Broadcaster
	maxSize     int
	idleTimeout time.Duration
}

// NewRoomService creates a RoomService. idleTimeout bounds how long a
// room's live state survives in the cache between submitted actions
// before saveState lets its TTL lapse (internal/config's ROOM_IDLE_TIMEOUT).
func NewRoomService(rooms store.RoomRepository, events store.EventRepository, cache store.StateCache, bc Broadcaster, maxRoomPlayers int, idleTimeout time.Duration) *RoomService {
	if bc == nil {
		bc = NoopBroadcaster{}
	}
	return &RoomService{rooms: rooms, events: events, cache: cache, bc: bc, maxSize: maxRoomPlayers, idleTimeout: idleTimeout}
}

// CreateRoom inserts a room row and seeds its live cache with a fresh
// Lobby-phase GameState containing only the creator.
func (s *RoomService) CreateRoom(ctx context.Context, name, creatorID, layoutName string, seed uint64) (*model.Room, error) {
	layout := voyage.LayoutStar
	if layoutName == "Torus" {
		layout = voyage.LayoutTorus
	}

	room, err := s.rooms.Create(ctx, name, creatorID, layoutName)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	if err := s.rooms.AddPlayer(ctx, room.ID, creatorID, creatorID); err != nil {
		return nil, fmt.Errorf("add creator to room: %w", err)
	}

	state := voyage.NewGame([]voyage.PlayerID{voyage.PlayerID(creatorID)}, seed, layout)
	if _, err := s.saveState(ctx, room.ID, state); err != nil {
		return nil, err
	}
	return room, nil
}

// JoinRoom applies a Join action and persists the result.
func (s *RoomService) JoinRoom(ctx context.Context, roomID, playerID, name string) (*voyage.GameState, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	count, err := s.rooms.PlayerCount(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count players: %w", err)
	}
	if count >= s.maxSize {
		return nil, ErrRoomFull
	}

	next, err := s.SubmitAction(ctx, roomID, voyage.PlayerID(playerID), voyage.JoinAction{PlayerID: voyage.PlayerID(playerID)})
	if err != nil {
		return nil, err
	}
	if err := s.rooms.AddPlayer(ctx, roomID, playerID, name); err != nil {
		return nil, fmt.Errorf("add room player: %w", err)
	}
	return next, nil
}

// SubmitAction is the single path every player action — Meta or Game —
// takes from the relay to the core and back. It loads the live state,
// calls voyage.ApplyAction, persists the new state and event, bumps the
// room's sequence counter, and broadcasts the resulting Event envelope.
func (s *RoomService) SubmitAction(ctx context.Context, roomID string, pid voyage.PlayerID, action voyage.Action) (*voyage.GameState, error) {
	state, err := s.loadState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrRoomNotFound
	}

	next, err := voyage.ApplyAction(state, pid, action)
	if err != nil {
		return nil, err
	}

	stateJSON, err := s.saveState(ctx, roomID, next)
	if err != nil {
		return nil, err
	}

	seq, err := s.cache.NextSequence(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}
	actionJSON, err := voyage.MarshalAction(action)
	if err != nil {
		return nil, fmt.Errorf("marshal action: %w", err)
	}
	if _, err := s.events.AppendEvent(ctx, roomID, string(pid), seq, actionJSON); err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}

	if seq%snapshotInterval == 0 {
		if err := s.events.SaveSnapshot(ctx, roomID, seq, stateJSON); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}

	if next.Phase == voyage.PhaseVictory || next.Phase == voyage.PhaseGameOver {
		outcome := "game_over"
		if next.Phase == voyage.PhaseVictory {
			outcome = "victory"
		}
		if err := s.rooms.SetFinished(ctx, roomID, outcome); err != nil {
			return nil, fmt.Errorf("set room finished: %w", err)
		}
	} else if state.Phase == voyage.PhaseLobby && next.Phase != voyage.PhaseLobby {
		if err := s.rooms.SetStarted(ctx, roomID); err != nil {
			return nil, fmt.Errorf("set room started: %w", err)
		}
	}

	s.bc.BroadcastRoomEvent(roomID, seq, actionJSON)

	return next, nil
}

// GetState returns the live GameState for a room, rehydrating from the
// Postgres event log if it has fallen out of the Redis cache.
func (s *RoomService) GetState(ctx context.Context, roomID string) (*voyage.GameState, error) {
	state, err := s.loadState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrRoomNotFound
	}
	return state, nil
}

// GetRoom returns room metadata.
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListOpenRooms lists rooms still accepting players.
func (s *RoomService) ListOpenRooms(ctx context.Context) ([]model.Room, error) {
	return s.rooms.ListOpen(ctx)
}

// DeleteRoom removes a room; only its creator may do this.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID, requesterID string) error {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if room.CreatorID != requesterID {
		return ErrNotCreator
	}
	if err := s.rooms.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return s.cache.DeleteRoom(ctx, roomID)
}

// CurrentSequence returns the room's current event sequence counter,
// the number a FullSync reply should be tagged with.
func (s *RoomService) CurrentSequence(ctx context.Context, roomID string) (uint64, error) {
	return s.cache.CurrentSequence(ctx, roomID)
}

// ValidActions exposes voyage.GetValidActions for the hinting/solver
// client mentioned in §4.6.
func (s *RoomService) ValidActions(ctx context.Context, roomID string, pid voyage.PlayerID) ([]voyage.Action, error) {
	state, err := s.loadState(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrRoomNotFound
	}
	return voyage.GetValidActions(state, pid), nil
}

func (s *RoomService) loadState(ctx context.Context, roomID string) (*voyage.GameState, error) {
	raw, err := s.cache.GetState(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get cached state: %w", err)
	}
	if raw == nil {
		return s.rehydrate(ctx, roomID)
	}
	var state voyage.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("unmarshal cached state: %w", err)
	}
	return &state, nil
}

// rehydrate rebuilds a room's state from its latest Postgres snapshot
// (or from scratch) plus every event logged after it — the replay path
// a relay uses after a restart, per SPEC_FULL.md's internal/store design.
func (s *RoomService) rehydrate(ctx context.Context, roomID string) (*voyage.GameState, error) {
	snapshot, err := s.events.LatestSnapshot(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	var state *voyage.GameState
	var fromSeq uint64
	if snapshot != nil {
		state = &voyage.GameState{}
		if err := json.Unmarshal(snapshot.StateJSON, state); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot: %w", err)
		}
		fromSeq = snapshot.Sequence
	} else {
		players, err := s.rooms.ListPlayers(ctx, roomID)
		if err != nil {
			return nil, fmt.Errorf("list room players: %w", err)
		}
		if len(players) == 0 {
			return nil, nil
		}
		ids := make([]voyage.PlayerID, len(players))
		for i, p := range players {
			ids[i] = voyage.PlayerID(p.PlayerID)
		}
		state = voyage.NewGame(ids, 0, voyage.LayoutStar)
	}

	events, err := s.events.EventsSince(ctx, roomID, fromSeq)
	if err != nil {
		return nil, fmt.Errorf("events since: %w", err)
	}
	for _, e := range events {
		action, err := voyage.UnmarshalAction(e.ActionJSON)
		if err != nil {
			return nil, fmt.Errorf("unmarshal replayed action: %w", err)
		}
		next, err := voyage.ApplyAction(state, voyage.PlayerID(e.PlayerID), action)
		if err != nil {
			return nil, fmt.Errorf("replay event %d: %w", e.Sequence, err)
		}
		state = next
	}

	if _, err := s.saveState(ctx, roomID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// saveState writes state into the live cache and refreshes its idle
// deadline, returning the marshaled JSON so callers that also need it
// (SubmitAction's periodic snapshot) don't re-marshal the same state.
func (s *RoomService) saveState(ctx context.Context, roomID string, state *voyage.GameState) (json.RawMessage, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	if err := s.cache.SetState(ctx, roomID, raw); err != nil {
		return nil, fmt.Errorf("set cached state: %w", err)
	}
	if err := s.cache.SetIdleDeadline(ctx, roomID, s.idleTimeout); err != nil {
		return nil, fmt.Errorf("set idle deadline: %w", err)
	}
	return raw, nil
}
