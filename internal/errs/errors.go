package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")
	ErrInvalidPageOrSize  = Error("invalid page or size")

	ErrUserAlreadyExists  = Error("user already exists")
	ErrUsernameTaken      = Error("username already taken")
	ErrUserNotFound       = Error("user not found")
	ErrUserInactive       = Error("account is disabled")
	ErrWrongCredentials   = Error("wrong email or password")
	ErrInvalidToken       = Error("invalid token")
	ErrUnauthorized       = Error("unauthorized")
	ErrForbidden          = Error("forbidden")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidUsername    = Error("username is empty or too short")
	ErrWeakPassword       = Error("password does not meet requirements")

	ErrRoomNotFound     = Error("room not found")
	ErrNotRoomOwner     = Error("not the owner of this room")
	ErrRoomNotLive      = Error("room is not live")
	ErrInvalidStreamKey = Error("invalid stream key")
	ErrChatDisabled     = Error("chat is disabled for this room")
	ErrSlowModeActive   = Error("slow mode is active, wait before sending again")

	ErrCallNotFound      = Error("trading call not found")
	ErrInvalidCallAction = Error("invalid trading call action")
	ErrInvalidCallStatus = Error("invalid trading call status")

	ErrMessageNotFound = Error("message not found")
	ErrEmptyMessage    = Error("message content is empty")

	ErrInvalidFile = Error("invalid file")
)
