package models

import (
	"encoding/json"
	"time"
)

// SocketEvent is the inbound envelope read off a client connection. The
// payload stays raw until the event name selects the concrete type.
type SocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// ServerEvent is the outbound envelope written to client connections.
type ServerEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type AuthenticatePayload struct {
	Token string `json:"token"`
}

type RoomPayload struct {
	RoomID string `json:"roomId"`
}

type ChatMessagePayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

type TradingCallPayload struct {
	StockCode string  `json:"stockCode"`
	Action    string  `json:"action"`
	Price     float64 `json:"price"`
	Reason    string  `json:"reason"`
}

type AuthenticatedPayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type NewMessagePayload struct {
	UserID    string    `json:"userId"`
	RoomID    string    `json:"roomId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type NewTradingCallPayload struct {
	UserID    string    `json:"userId"`
	StockCode string    `json:"stockCode"`
	Action    string    `json:"action"`
	Price     float64   `json:"price"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// PresencePayload announces a join or leave. UserID is omitted when the
// member has not authenticated yet.
type PresencePayload struct {
	UserID    string    `json:"userId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
