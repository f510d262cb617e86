package service

// Broadcaster sends a real-time, already-sequenced event to every
// client connected to roomID. Implemented by internal/handler's
// adapter around pkg/relay's Hub.
type Broadcaster interface {
	BroadcastRoomEvent(roomID string, sequence uint64, data []byte)
}

// NoopBroadcaster is a no-op implementation for testing or when the
// relay is disabled.
type NoopBroadcaster struct{}

// BroadcastRoomEvent implements Broadcaster.
func (NoopBroadcaster) BroadcastRoomEvent(string, uint64, []byte) {}
