package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sintftl/voyage/internal/model"
)

// EventRepo handles the append-only room_events log and periodic
// full-state snapshots (room_snapshots).
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates an EventRepo.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// AppendEvent inserts one Action envelope at the given sequence position.
func (r *EventRepo) AppendEvent(ctx context.Context, roomID, playerID string, sequence uint64, actionJSON json.RawMessage) (*model.RoomEvent, error) {
	var e model.RoomEvent
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO room_events (room_id, sequence, player_id, action)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, room_id, sequence, player_id, action, created_at`,
		roomID, sequence, playerID, []byte(actionJSON),
	).Scan(&e.ID, &e.RoomID, &e.Sequence, &e.PlayerID, &e.ActionJSON, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("append room event: %w", err)
	}
	return &e, nil
}

// EventsSince returns every event strictly after the given sequence number,
// in ascending order — the tail a SyncRequest-triggered FullSync can skip
// replaying if it instead ships the latest snapshot.
func (r *EventRepo) EventsSince(ctx context.Context, roomID string, sequence uint64) ([]model.RoomEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, room_id, sequence, player_id, action, created_at
		 FROM room_events WHERE room_id = $1 AND sequence > $2
		 ORDER BY sequence`, roomID, sequence)
	if err != nil {
		return nil, fmt.Errorf("events since: %w", err)
	}
	defer rows.Close()

	var events []model.RoomEvent
	for rows.Next() {
		var e model.RoomEvent
		if err := rows.Scan(&e.ID, &e.RoomID, &e.Sequence, &e.PlayerID, &e.ActionJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// SaveSnapshot stores a point-in-time GameState capture, replacing any
// earlier snapshot for the room.
func (r *EventRepo) SaveSnapshot(ctx context.Context, roomID string, sequence uint64, stateJSON json.RawMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO room_snapshots (room_id, sequence, state, taken_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (room_id) DO UPDATE SET sequence = EXCLUDED.sequence, state = EXCLUDED.state, taken_at = now()`,
		roomID, sequence, []byte(stateJSON),
	)
	if err != nil {
		return fmt.Errorf("save room snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot for a room, if any.
func (r *EventRepo) LatestSnapshot(ctx context.Context, roomID string) (*model.RoomSnapshot, error) {
	var s model.RoomSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT room_id, sequence, state, taken_at FROM room_snapshots WHERE room_id = $1`, roomID,
	).Scan(&s.RoomID, &s.Sequence, &s.StateJSON, &s.TakenAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest room snapshot: %w", err)
	}
	return &s, nil
}
