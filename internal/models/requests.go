package models

type RegisterRequestBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequestBody struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type ChangePasswordRequestBody struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateUserStatusRequestBody struct {
	IsActive *bool `json:"is_active"`
}

type CreateRoomRequestBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type UpdateRoomRequestBody struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Settings    *RoomSettings `json:"settings"`
}

type VerifyStreamKeyRequestBody struct {
	StreamKey string `json:"stream_key"`
}

type CreateCallRequestBody struct {
	RoomID      string   `json:"room_id"`
	StockCode   string   `json:"stock_code"`
	StockName   string   `json:"stock_name"`
	Action      string   `json:"action"`
	Price       float64  `json:"price"`
	TargetPrice float64  `json:"target_price"`
	StopLoss    float64  `json:"stop_loss"`
	Reason      string   `json:"reason"`
	Analysis    string   `json:"analysis"`
	Tags        []string `json:"tags"`
}

type UpdateCallStatusRequestBody struct {
	Status       string   `json:"status"`
	CurrentPrice *float64 `json:"current_price"`
}

type AddCommentRequestBody struct {
	Content string `json:"content"`
}

type UpdateMetricsRequestBody struct {
	Type string `json:"type"`
}

type SendMessageRequestBody struct {
	RoomID  string `json:"room_id"`
	Content string `json:"content"`
	ReplyTo string `json:"reply_to"`
}

type ReactionRequestBody struct {
	Type string `json:"type"`
}

type DeleteMessageRequestBody struct {
	Reason string `json:"reason"`
}
