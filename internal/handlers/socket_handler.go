package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"liveTrading/internal/enums"
	"liveTrading/internal/hub"
	socketModels "liveTrading/internal/models/socket"
)

// SocketHandler upgrades connections and pumps inbound events into the hub.
// All session state lives in the hub; this handler only reads and dispatches.
type SocketHandler struct {
	upgrader websocket.Upgrader
	hub      *hub.Hub
}

func NewSocketHandler(h *hub.Hub) *SocketHandler {
	return &SocketHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleSocketRoute serves /ws. The connection starts unauthenticated; the
// client authenticates over the socket itself, so no token is required here.
func (sh *SocketHandler) HandleSocketRoute(ctx *gin.Context) {
	ws, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Error("failed to upgrade connection", zap.Error(err))
		return
	}

	session := sh.hub.Connect(ws)
	defer sh.hub.Disconnect(session.ID)

	sh.readLoop(ctx.Request.Context(), session, ws)
}

func (sh *SocketHandler) readLoop(ctx context.Context, session *hub.Session, ws *websocket.Conn) {
	for {
		var event socketModels.SocketEvent
		if err := ws.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Warn("error reading from connection",
					zap.String("connection_id", session.ID), zap.Error(err))
			}
			return
		}
		sh.dispatch(ctx, session, event)
	}
}

func (sh *SocketHandler) dispatch(ctx context.Context, session *hub.Session, event socketModels.SocketEvent) {
	switch event.Event {
	case enums.SOCKET_EVENT_AUTHENTICATE:
		var payload socketModels.AuthenticatePayload
		if !sh.decode(session, event.Payload, &payload) {
			return
		}
		sh.hub.Authenticate(ctx, session.ID, payload.Token)

	case enums.SOCKET_EVENT_JOIN_ROOM:
		var payload socketModels.RoomPayload
		if !sh.decode(session, event.Payload, &payload) {
			return
		}
		sh.hub.JoinRoom(session.ID, payload.RoomID)

	case enums.SOCKET_EVENT_LEAVE_ROOM:
		var payload socketModels.RoomPayload
		if !sh.decode(session, event.Payload, &payload) {
			return
		}
		sh.hub.LeaveRoom(session.ID, payload.RoomID)

	case enums.SOCKET_EVENT_CHAT_MESSAGE:
		var payload socketModels.ChatMessagePayload
		if !sh.decode(session, event.Payload, &payload) {
			return
		}
		sh.hub.RelayChatMessage(session.ID, payload.RoomID, payload.Message)

	case enums.SOCKET_EVENT_TRADING_CALL:
		var payload socketModels.TradingCallPayload
		if !sh.decode(session, event.Payload, &payload) {
			return
		}
		sh.hub.RelayTradingCall(session.ID, payload)

	default:
		zap.L().Debug("unknown socket event",
			zap.String("connection_id", session.ID), zap.String("event", event.Event))
		sh.hub.SendError(session.ID, "unknown event")
	}
}

func (sh *SocketHandler) decode(session *hub.Session, raw json.RawMessage, payload any) bool {
	if err := json.Unmarshal(raw, payload); err != nil {
		sh.hub.SendError(session.ID, "invalid payload")
		return false
	}
	return true
}
