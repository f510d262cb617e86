package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sintftl/voyage/internal/model"
)

// RoomRepo handles room and room_players database operations.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo creates a RoomRepo.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room in "lobby" status.
func (r *RoomRepo) Create(ctx context.Context, name, creatorID, layout string) (*model.Room, error) {
	var room model.Room
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rooms (name, creator_id, status, layout)
		 VALUES ($1, $2, 'lobby', $3)
		 RETURNING id, name, creator_id, status, layout, created_at`,
		name, creatorID, layout,
	).Scan(&room.ID, &room.Name, &room.CreatorID, &room.Status, &room.Layout, &room.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return &room, nil
}

// FindByID returns a room by ID.
func (r *RoomRepo) FindByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	var outcome sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, creator_id, status, layout, created_at, started_at, finished_at, COALESCE(outcome, '')
		 FROM rooms WHERE id = $1`, id,
	).Scan(&room.ID, &room.Name, &room.CreatorID, &room.Status, &room.Layout, &room.CreatedAt, &room.StartedAt, &room.FinishedAt, &outcome)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	room.Outcome = outcome.String
	return &room, nil
}

// ListOpen returns rooms still in "lobby" status.
func (r *RoomRepo) ListOpen(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, creator_id, status, layout, created_at
		 FROM rooms WHERE status = 'lobby' ORDER BY created_at DESC LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("list open rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.CreatorID, &room.Status, &room.Layout, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// ListByPlayer returns all rooms a player has joined, most recent first.
func (r *RoomRepo) ListByPlayer(ctx context.Context, playerID string) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT r.id, r.name, r.creator_id, r.status, r.layout, r.created_at
		 FROM rooms r JOIN room_players rp ON r.id = rp.room_id
		 WHERE rp.player_id = $1
		 ORDER BY r.created_at DESC LIMIT 50`, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.CreatorID, &room.Status, &room.Layout, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// AddPlayer inserts a room_players row. Idempotent: rejoining is a no-op.
func (r *RoomRepo) AddPlayer(ctx context.Context, roomID, playerID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO room_players (room_id, player_id, name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (room_id, player_id) DO UPDATE SET name = EXCLUDED.name`,
		roomID, playerID, name,
	)
	if err != nil {
		return fmt.Errorf("add room player: %w", err)
	}
	return nil
}

// ListPlayers returns every player who has joined a room.
func (r *RoomRepo) ListPlayers(ctx context.Context, roomID string) ([]model.RoomPlayer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT room_id, player_id, name, joined_at FROM room_players WHERE room_id = $1 ORDER BY joined_at`, roomID)
	if err != nil {
		return nil, fmt.Errorf("list room players: %w", err)
	}
	defer rows.Close()

	var players []model.RoomPlayer
	for rows.Next() {
		var p model.RoomPlayer
		if err := rows.Scan(&p.RoomID, &p.PlayerID, &p.Name, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan room player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// PlayerCount returns how many players have joined a room.
func (r *RoomRepo) PlayerCount(ctx context.Context, roomID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM room_players WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count room players: %w", err)
	}
	return count, nil
}

// SetStarted marks a room as active, freezing its layout per §4.1.
func (r *RoomRepo) SetStarted(ctx context.Context, roomID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = 'active', started_at = now() WHERE id = $1`, roomID)
	if err != nil {
		return fmt.Errorf("set room started: %w", err)
	}
	return nil
}

// SetFinished marks a room as finished with a terminal outcome ("victory" or "game_over").
func (r *RoomRepo) SetFinished(ctx context.Context, roomID, outcome string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = 'finished', finished_at = now(), outcome = $2 WHERE id = $1`, roomID, outcome)
	if err != nil {
		return fmt.Errorf("set room finished: %w", err)
	}
	return nil
}

// Delete removes a room and cascades to its players/events via FK constraints.
func (r *RoomRepo) Delete(ctx context.Context, roomID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
