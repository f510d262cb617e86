package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key patterns for Redis room state, mirroring the teacher's
// game:<id>:state / game:<id>:timer naming.
func stateKey(roomID string) string { return "room:" + roomID + ":state" }
func seqKey(roomID string) string   { return "room:" + roomID + ":seq" }

// SetState stores the live GameState JSON blob for a room.
func (c *Client) SetState(ctx context.Context, roomID string, state json.RawMessage) error {
	return c.rdb.Set(ctx, stateKey(roomID), []byte(state), 0).Err()
}

// GetState retrieves the live GameState JSON blob, or nil if absent.
func (c *Client) GetState(ctx context.Context, roomID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, stateKey(roomID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room state: %w", err)
	}
	return json.RawMessage(data), nil
}

// NextSequence atomically increments and returns the room's event
// sequence counter — the number the relay's Hub is handed to tag the
// Event it is about to broadcast.
func (c *Client) NextSequence(ctx context.Context, roomID string) (uint64, error) {
	n, err := c.rdb.Incr(ctx, seqKey(roomID)).Result()
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return uint64(n), nil
}

// CurrentSequence returns the room's sequence counter without advancing it.
func (c *Client) CurrentSequence(ctx context.Context, roomID string) (uint64, error) {
	n, err := c.rdb.Get(ctx, seqKey(roomID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("current sequence: %w", err)
	}
	return uint64(n), nil
}

// DeleteRoom removes all live cache entries for a room (on game end).
func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	return c.rdb.Del(ctx, stateKey(roomID), seqKey(roomID)).Err()
}

// SetIdleDeadline refreshes the TTL on a room's live state so an
// inactive room is evicted from the cache after ROOM_IDLE_TIMEOUT
// (internal/config) with no submitted action, while the Postgres event
// log and snapshot remain available to rehydrate it on next access.
func (c *Client) SetIdleDeadline(ctx context.Context, roomID string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, stateKey(roomID), ttl).Err()
}
