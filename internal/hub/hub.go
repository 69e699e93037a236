package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"liveTrading/internal/enums"
	socketModels "liveTrading/internal/models/socket"
)

// Conn is the slice of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// TokenVerifier resolves an opaque bearer token to a user id.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Session binds a live connection to its authentication and room state. The
// zero UserID means the connection has not authenticated yet. All mutable
// state is owned by the hub and guarded by its mutex.
type Session struct {
	ID     string
	Conn   Conn
	userID string
	rooms  map[string]struct{}
}

// Hub is the process-wide registry of real-time sessions. It tracks at most
// one live connection per authenticated user (a newer authentication
// supersedes the older entry) and the per-room subscription sets, and owns
// all chat and trading-call fan-out.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session
	presence map[string]string
	rooms    map[string]map[string]*Session
	verifier TokenVerifier
	logger   *zap.Logger
}

func NewHub(verifier TokenVerifier, logger *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		presence: make(map[string]string),
		rooms:    make(map[string]map[string]*Session),
		verifier: verifier,
		logger:   logger,
	}
}

// Connect registers a fresh unauthenticated session for the connection.
func (h *Hub) Connect(conn Conn) *Session {
	session := &Session{
		ID:    uuid.NewString(),
		Conn:  conn,
		rooms: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.sessions[session.ID] = session
	h.mu.Unlock()

	h.logger.Info("new connection", zap.String("connection_id", session.ID))
	return session
}

// Authenticate resolves the token and binds the resulting user id to the
// session. A failed verification is reported to the sender only and leaves
// the session connected but unauthenticated.
func (h *Hub) Authenticate(ctx context.Context, sessionID, token string) {
	// Token verification may hit the credential store; keep it off the lock.
	userID, err := h.verifier.Verify(ctx, token)

	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	if err != nil {
		h.logger.Info("authentication failed",
			zap.String("connection_id", sessionID), zap.Error(err))
		h.writeLocked(session, socketModels.ServerEvent{
			Event:   enums.SOCKET_EVENT_AUTHENTICATED,
			Payload: socketModels.AuthenticatedPayload{Success: false, Error: err.Error()},
		})
		return
	}

	// Re-authenticating as someone else releases the previous identity.
	if session.userID != "" && session.userID != userID && h.presence[session.userID] == sessionID {
		delete(h.presence, session.userID)
	}

	session.userID = userID
	h.presence[userID] = sessionID

	h.writeLocked(session, socketModels.ServerEvent{
		Event:   enums.SOCKET_EVENT_AUTHENTICATED,
		Payload: socketModels.AuthenticatedPayload{Success: true},
	})
	h.broadcastOnlineUsersLocked()
}

// JoinRoom adds the session to the room's subscription set and announces the
// join to every member, the joiner included. Joining twice keeps a single
// membership but announces again. Unauthenticated sessions may join; their
// presence events simply carry no user id.
func (h *Hub) JoinRoom(sessionID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*Session)
		h.rooms[roomID] = members
	}
	members[sessionID] = session
	session.rooms[roomID] = struct{}{}

	h.broadcastRoomLocked(roomID, socketModels.ServerEvent{
		Event: enums.SOCKET_EVENT_USER_JOINED,
		Payload: socketModels.PresencePayload{
			UserID:    session.userID,
			Timestamp: time.Now(),
		},
	})
}

// LeaveRoom removes the session from the room and announces the leave to the
// remaining members.
func (h *Hub) LeaveRoom(sessionID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	h.removeFromRoomLocked(session, roomID)

	h.broadcastRoomLocked(roomID, socketModels.ServerEvent{
		Event: enums.SOCKET_EVENT_USER_LEFT,
		Payload: socketModels.PresencePayload{
			UserID:    session.userID,
			Timestamp: time.Now(),
		},
	})
}

// Disconnect tears the session down: every room membership is dropped without
// leave announcements, and the presence entry is released only when it still
// points at this connection, so a superseding login is left untouched.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	for roomID := range session.rooms {
		h.removeFromRoomLocked(session, roomID)
	}
	delete(h.sessions, sessionID)

	if session.userID != "" && h.presence[session.userID] == sessionID {
		delete(h.presence, session.userID)
		h.broadcastOnlineUsersLocked()
	}

	h.logger.Info("connection closed", zap.String("connection_id", sessionID))
}

// RelayChatMessage fans a chat message out to every member of the room,
// sender included. The message is not persisted here; chat history is written
// through the REST path only.
func (h *Hub) RelayChatMessage(sessionID, roomID, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	if session.userID == "" {
		h.writeLocked(session, socketModels.ServerEvent{
			Event:   enums.SOCKET_EVENT_ERROR,
			Payload: socketModels.ErrorPayload{Message: "please login first"},
		})
		return
	}

	h.broadcastRoomLocked(roomID, socketModels.ServerEvent{
		Event: enums.SOCKET_EVENT_NEW_MESSAGE,
		Payload: socketModels.NewMessagePayload{
			UserID:    session.userID,
			RoomID:    roomID,
			Message:   text,
			Timestamp: time.Now(),
		},
	})
}

// RelayTradingCall fans a trading call out to every connected session,
// regardless of room membership. Calls are deliberately global while chat is
// room-scoped; the two paths must not be unified.
func (h *Hub) RelayTradingCall(sessionID string, call socketModels.TradingCallPayload) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	if session.userID == "" {
		h.writeLocked(session, socketModels.ServerEvent{
			Event:   enums.SOCKET_EVENT_ERROR,
			Payload: socketModels.ErrorPayload{Message: "unauthorized action"},
		})
		return
	}

	h.broadcastAllLocked(socketModels.ServerEvent{
		Event: enums.SOCKET_EVENT_NEW_TRADING_CALL,
		Payload: socketModels.NewTradingCallPayload{
			UserID:    session.userID,
			StockCode: call.StockCode,
			Action:    call.Action,
			Price:     call.Price,
			Reason:    call.Reason,
			Timestamp: time.Now(),
		},
	})
}

// SendError delivers a local-only error notice to one session. Malformed
// client input never affects anyone but the sender.
func (h *Hub) SendError(sessionID, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	h.writeLocked(session, socketModels.ServerEvent{
		Event:   enums.SOCKET_EVENT_ERROR,
		Payload: socketModels.ErrorPayload{Message: message},
	})
}

// OnlineUsers reports the number of distinct authenticated users currently
// connected.
func (h *Hub) OnlineUsers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.presence)
}

// InRoom reports whether the session is currently subscribed to the room.
func (h *Hub) InRoom(sessionID, roomID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[roomID]
	if !ok {
		return false
	}
	_, ok = members[sessionID]
	return ok
}

// Shutdown closes every connection and clears the registries.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, session := range h.sessions {
		if err := session.Conn.Close(); err != nil {
			h.logger.Warn("error closing connection",
				zap.String("connection_id", id), zap.Error(err))
		}
		delete(h.sessions, id)
	}
	h.presence = make(map[string]string)
	h.rooms = make(map[string]map[string]*Session)
}

func (h *Hub) removeFromRoomLocked(session *Session, roomID string) {
	if members, ok := h.rooms[roomID]; ok {
		delete(members, session.ID)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	delete(session.rooms, roomID)
}

func (h *Hub) broadcastRoomLocked(roomID string, event socketModels.ServerEvent) {
	presenceChanged := false
	for _, member := range h.rooms[roomID] {
		if h.writeLocked(member, event) {
			presenceChanged = true
		}
	}
	if presenceChanged {
		h.broadcastOnlineUsersLocked()
	}
}

func (h *Hub) broadcastAllLocked(event socketModels.ServerEvent) {
	presenceChanged := false
	for _, session := range h.sessions {
		if h.writeLocked(session, event) {
			presenceChanged = true
		}
	}
	if presenceChanged {
		h.broadcastOnlineUsersLocked()
	}
}

// broadcastOnlineUsersLocked tells every connection the distinct
// authenticated-user count. Write failures here only evict; the next
// broadcast carries the corrected count.
func (h *Hub) broadcastOnlineUsersLocked() {
	event := socketModels.ServerEvent{
		Event:   enums.SOCKET_EVENT_ONLINE_USERS,
		Payload: len(h.presence),
	}
	for _, session := range h.sessions {
		h.writeLocked(session, event)
	}
}

// writeLocked writes the event to one session and evicts the session on
// failure. It reports whether the eviction released a presence entry.
func (h *Hub) writeLocked(session *Session, event socketModels.ServerEvent) bool {
	err := session.Conn.WriteJSON(event)
	if err == nil {
		return false
	}
	h.logger.Warn("error writing to connection",
		zap.String("connection_id", session.ID), zap.Error(err))

	if err := session.Conn.Close(); err != nil {
		h.logger.Warn("error closing connection",
			zap.String("connection_id", session.ID), zap.Error(err))
	}

	for roomID := range session.rooms {
		h.removeFromRoomLocked(session, roomID)
	}
	delete(h.sessions, session.ID)

	if session.userID != "" && h.presence[session.userID] == session.ID {
		delete(h.presence, session.userID)
		return true
	}
	return false
}
