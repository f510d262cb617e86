package handler

import "github.com/sintftl/voyage/pkg/relay"

// relayBroadcaster adapts pkg/relay's Hub to service.Broadcaster.
type relayBroadcaster struct {
	hub *relay.Hub
}

// NewRelayBroadcaster wraps hub so RoomService can publish Events
// through it without depending on pkg/relay directly.
func NewRelayBroadcaster(hub *relay.Hub) *relayBroadcaster {
	return &relayBroadcaster{hub: hub}
}

func (b *relayBroadcaster) BroadcastRoomEvent(roomID string, sequence uint64, data []byte) {
	b.hub.BroadcastEvent(roomID, sequence, data)
}
