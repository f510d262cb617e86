package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sintftl/voyage/internal/model"
)

type mockRoomRepo struct {
	rooms   map[string]*model.Room
	players map[string][]model.RoomPlayer
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room), players: make(map[string][]model.RoomPlayer)}
}

func (m *mockRoomRepo) Create(_ context.Context, name, creatorID, layout string) (*model.Room, error) {
	r := &model.Room{
		ID:        fmt.Sprintf("room-%d", len(m.rooms)+1),
		Name:      name,
		CreatorID: creatorID,
		Status:    "lobby",
		Layout:    layout,
		CreatedAt: time.Now(),
	}
	m.rooms[r.ID] = r
	return r, nil
}

func (m *mockRoomRepo) FindByID(_ context.Context, id string) (*model.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *mockRoomRepo) ListOpen(_ context.Context) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if r.Status == "lobby" {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRoomRepo) ListByPlayer(_ context.Context, playerID string) ([]model.Room, error) {
	var result []model.Room
	for roomID, players := range m.players {
		for _, p := range players {
			if p.PlayerID == playerID {
				result = append(result, *m.rooms[roomID])
				break
			}
		}
	}
	return result, nil
}

func (m *mockRoomRepo) AddPlayer(_ context.Context, roomID, playerID, name string) error {
	for _, p := range m.players[roomID] {
		if p.PlayerID == playerID {
			return nil
		}
	}
	m.players[roomID] = append(m.players[roomID], model.RoomPlayer{RoomID: roomID, PlayerID: playerID, Name: name, JoinedAt: time.Now()})
	return nil
}

func (m *mockRoomRepo) ListPlayers(_ context.Context, roomID string) ([]model.RoomPlayer, error) {
	return m.players[roomID], nil
}

func (m *mockRoomRepo) PlayerCount(_ context.Context, roomID string) (int, error) {
	return len(m.players[roomID]), nil
}

func (m *mockRoomRepo) SetStarted(_ context.Context, roomID string) error {
	if r, ok := m.rooms[roomID]; ok {
		r.Status = "active"
	}
	return nil
}

func (m *mockRoomRepo) SetFinished(_ context.Context, roomID, outcome string) error {
	if r, ok := m.rooms[roomID]; ok {
		r.Status = "finished"
		r.Outcome = outcome
	}
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, roomID string) error {
	delete(m.rooms, roomID)
	delete(m.players, roomID)
	return nil
}

type mockEventRepo struct {
	events    map[string][]model.RoomEvent
	snapshots map[string]*model.RoomSnapshot
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string][]model.RoomEvent), snapshots: make(map[string]*model.RoomSnapshot)}
}

func (m *mockEventRepo) AppendEvent(_ context.Context, roomID, playerID string, sequence uint64, actionJSON json.RawMessage) (*model.RoomEvent, error) {
	e := model.RoomEvent{
		ID:         fmt.Sprintf("event-%d", len(m.events[roomID])+1),
		RoomID:     roomID,
		Sequence:   sequence,
		PlayerID:   playerID,
		ActionJSON: actionJSON,
		CreatedAt:  time.Now(),
	}
	m.events[roomID] = append(m.events[roomID], e)
	return &e, nil
}

func (m *mockEventRepo) EventsSince(_ context.Context, roomID string, sequence uint64) ([]model.RoomEvent, error) {
	var out []model.RoomEvent
	for _, e := range m.events[roomID] {
		if e.Sequence > sequence {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) SaveSnapshot(_ context.Context, roomID string, sequence uint64, stateJSON json.RawMessage) error {
	m.snapshots[roomID] = &model.RoomSnapshot{RoomID: roomID, Sequence: sequence, StateJSON: stateJSON, TakenAt: time.Now()}
	return nil
}

func (m *mockEventRepo) LatestSnapshot(_ context.Context, roomID string) (*model.RoomSnapshot, error) {
	return m.snapshots[roomID], nil
}

type mockStateCache struct {
	state        map[string]json.RawMessage
	seq          map[string]uint64
	idleDeadline map[string]time.Duration
}

func newMockStateCache() *mockStateCache {
	return &mockStateCache{
		state:        make(map[string]json.RawMessage),
		seq:          make(map[string]uint64),
		idleDeadline: make(map[string]time.Duration),
	}
}

func (m *mockStateCache) SetState(_ context.Context, roomID string, state json.RawMessage) error {
	m.state[roomID] = append(json.RawMessage(nil), state...)
	return nil
}

func (m *mockStateCache) GetState(_ context.Context, roomID string) (json.RawMessage, error) {
	return m.state[roomID], nil
}

func (m *mockStateCache) NextSequence(_ context.Context, roomID string) (uint64, error) {
	m.seq[roomID]++
	return m.seq[roomID], nil
}

func (m *mockStateCache) CurrentSequence(_ context.Context, roomID string) (uint64, error) {
	return m.seq[roomID], nil
}

func (m *mockStateCache) DeleteRoom(_ context.Context, roomID string) error {
	delete(m.state, roomID)
	delete(m.seq, roomID)
	return nil
}

func (m *mockStateCache) SetIdleDeadline(_ context.Context, roomID string, ttl time.Duration) error {
	m.idleDeadline[roomID] = ttl
	return nil
}

type mockBroadcaster struct {
	events [][]byte
}

func (m *mockBroadcaster) BroadcastRoomEvent(_ string, _ uint64, data []byte) {
	m.events = append(m.events, data)
}
