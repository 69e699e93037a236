package models

type RoomListResponse struct {
	Rooms      []LiveRoom `json:"rooms"`
	Pagination Pagination `json:"pagination"`
}

type MessageListResponse struct {
	Messages   []ChatMessage `json:"messages"`
	Pagination Pagination    `json:"pagination"`
}

type CallListResponse struct {
	Calls      []TradingCall `json:"calls"`
	Pagination Pagination    `json:"pagination"`
}

type StreamerStatsResponse struct {
	TotalCalls int64   `json:"total_calls"`
	Wins       int64   `json:"wins"`
	Losses     int64   `json:"losses"`
	Open       int64   `json:"open"`
	WinRate    float64 `json:"win_rate"`
}
