package enums

// User roles.
const (
	ROLE_USER     = "user"
	ROLE_STREAMER = "streamer"
	ROLE_ADMIN    = "admin"
)

// Live room statuses.
const (
	ROOM_STATUS_LIVE      = "live"
	ROOM_STATUS_OFFLINE   = "offline"
	ROOM_STATUS_SCHEDULED = "scheduled"
)

// Trading call actions.
const (
	CALL_ACTION_BUY  = "buy"
	CALL_ACTION_SELL = "sell"
	CALL_ACTION_HOLD = "hold"
)

// Trading call statuses.
const (
	CALL_STATUS_OPEN      = "open"
	CALL_STATUS_CLOSED    = "closed"
	CALL_STATUS_CANCELLED = "cancelled"
)

// Trading call results.
const (
	CALL_RESULT_PROFIT    = "profit"
	CALL_RESULT_LOSS      = "loss"
	CALL_RESULT_BREAKEVEN = "breakeven"
	CALL_RESULT_UNKNOWN   = "unknown"
)

// Chat message statuses.
const (
	MESSAGE_STATUS_SENT    = "sent"
	MESSAGE_STATUS_DELETED = "deleted"
)

// Object storage buckets.
const (
	FILE_BUCKET_USER_AVATAR    = "user-avatars"
	FILE_BUCKET_ROOM_THUMBNAIL = "room-thumbnails"
)
