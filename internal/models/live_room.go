package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/enums"
)

type RoomChatSettings struct {
	Enabled          bool `bson:"enabled" json:"enabled"`
	SlowMode         bool `bson:"slow_mode" json:"slow_mode"`
	SlowModeInterval int  `bson:"slow_mode_interval" json:"slow_mode_interval"`
}

type RoomTradingSettings struct {
	Enabled     bool `bson:"enabled" json:"enabled"`
	AutoApprove bool `bson:"auto_approve" json:"auto_approve"`
}

type RoomSettings struct {
	Chat    RoomChatSettings    `bson:"chat" json:"chat"`
	Trading RoomTradingSettings `bson:"trading" json:"trading"`
}

type RoomStatistics struct {
	TotalViewers      int64 `bson:"total_viewers" json:"total_viewers"`
	PeakViewers       int64 `bson:"peak_viewers" json:"peak_viewers"`
	TotalMessages     int64 `bson:"total_messages" json:"total_messages"`
	TotalTradingCalls int64 `bson:"total_trading_calls" json:"total_trading_calls"`
}

// LiveRoom is a streamer's broadcast channel together with its chat and
// trading-call activity.
type LiveRoom struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Streamer    primitive.ObjectID `bson:"streamer" json:"streamer"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	StreamKey   string             `bson:"stream_key" json:"-"`
	Viewers     int64              `bson:"viewers" json:"viewers"`
	StartTime   *time.Time         `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime     *time.Time         `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Settings    RoomSettings       `bson:"settings" json:"settings"`
	Tags        []string           `bson:"tags" json:"tags"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Statistics  RoomStatistics     `bson:"statistics" json:"statistics"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

func DefaultRoomSettings() RoomSettings {
	return RoomSettings{
		Chat: RoomChatSettings{
			Enabled:          true,
			SlowMode:         false,
			SlowModeInterval: 5,
		},
		Trading: RoomTradingSettings{
			Enabled:     true,
			AutoApprove: false,
		},
	}
}

func (room *LiveRoom) IsOwnedBy(userID primitive.ObjectID) bool {
	return room.Streamer == userID
}

func (room *LiveRoom) IsLive() bool {
	return room.Status == enums.ROOM_STATUS_LIVE
}
