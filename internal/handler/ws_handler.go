package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sintftl/voyage/internal/auth"
	"github.com/sintftl/voyage/internal/service"
	"github.com/sintftl/voyage/pkg/relay"
	"github.com/sintftl/voyage/pkg/voyage"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // Must be less than pongWait
	maxMsgSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS handled by middleware; tighten in production
	},
}

// WSHandler upgrades HTTP connections to the §6 wire protocol and
// drives them through a pkg/relay.Hub and the RoomService that owns
// the room's GameState.
type WSHandler struct {
	hub    *relay.Hub
	jwtMgr *auth.JWTManager
	rooms  *service.RoomService
}

// NewWSHandler creates a WSHandler.
func NewWSHandler(hub *relay.Hub, jwtMgr *auth.JWTManager, rooms *service.RoomService) *WSHandler {
	return &WSHandler{hub: hub, jwtMgr: jwtMgr, rooms: rooms}
}

// ServeWS handles GET /api/v1/ws — upgrades to WebSocket.
// Auth via ?token= query parameter (WebSocket can't send headers).
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, `{"error":"missing token parameter"}`, http.StatusUnauthorized)
		return
	}

	claims, err := h.jwtMgr.ValidateToken(tokenStr)
	if err != nil {
		http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
		return
	}

	roomID := r.URL.Query().Get("room_id")
	if roomID == "" {
		http.Error(w, `{"error":"missing room_id parameter"}`, http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	c := relay.NewConn(conn)
	h.hub.Join(c, roomID, claims.PlayerID)

	go h.writePump(c)
	go h.readPump(c, roomID, claims.PlayerID)

	log.Info().Str("playerId", claims.PlayerID).Str("roomId", roomID).Msg("WebSocket client connected")
}

// readPump reads client->server envelopes: Event (submit an action) and
// SyncRequest (ask for a FullSync).
func (h *WSHandler) readPump(c *relay.Conn, roomID, playerID string) {
	defer func() {
		h.hub.Leave(c)
		c.Conn().Close()
		log.Info().Str("playerId", playerID).Str("roomId", roomID).Msg("WebSocket client disconnected")
	}()

	c.Conn().SetReadLimit(maxMsgSize)
	c.Conn().SetReadDeadline(time.Now().Add(pongWait))
	c.Conn().SetPongHandler(func(string) error {
		c.Conn().SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn().ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("playerId", playerID).Msg("WebSocket unexpected close")
			}
			return
		}

		var env relay.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			h.hub.SendError(c, "malformed envelope")
			continue
		}

		switch env.Type {
		case relay.KindEvent:
			h.handleEvent(c, roomID, playerID, env.Payload)
		case relay.KindSyncRequest:
			h.handleSyncRequest(c, roomID, playerID)
		default:
			h.hub.SendError(c, "unrecognized message type: "+env.Type)
		}
	}
}

func (h *WSHandler) handleEvent(c *relay.Conn, roomID, playerID string, payload json.RawMessage) {
	var ev relay.EventPayload
	if err := json.Unmarshal(payload, &ev); err != nil {
		h.hub.SendError(c, "malformed event payload")
		return
	}

	action, err := voyage.UnmarshalAction(ev.Data)
	if err != nil {
		h.hub.SendError(c, "invalid action: "+err.Error())
		return
	}

	if _, err := h.rooms.SubmitAction(context.Background(), roomID, voyage.PlayerID(playerID), action); err != nil {
		h.hub.SendError(c, err.Error())
	}
}

func (h *WSHandler) handleSyncRequest(c *relay.Conn, roomID, playerID string) {
	state, err := h.rooms.GetState(context.Background(), roomID)
	if err != nil {
		h.hub.SendError(c, "failed to load room state")
		return
	}

	seq, err := h.rooms.CurrentSequence(context.Background(), roomID)
	if err != nil {
		h.hub.SendError(c, "failed to load room sequence")
		return
	}

	action := voyage.FullSyncAction{State: state}
	data, err := voyage.MarshalAction(action)
	if err != nil {
		h.hub.SendError(c, "failed to encode full sync")
		return
	}
	h.hub.SendFullSync(c, seq, data)
}

// writePump writes messages to the WebSocket connection.
func (h *WSHandler) writePump(c *relay.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn().Close()
	}()

	for {
		select {
		case message, ok := <-c.Send():
			c.Conn().SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn().WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn().NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn().SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn().WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
