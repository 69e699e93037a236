package enums

// Client -> server socket events.
const (
	SOCKET_EVENT_AUTHENTICATE = "authenticate"
	SOCKET_EVENT_JOIN_ROOM    = "joinRoom"
	SOCKET_EVENT_LEAVE_ROOM   = "leaveRoom"
	SOCKET_EVENT_CHAT_MESSAGE = "chatMessage"
	SOCKET_EVENT_TRADING_CALL = "tradingCall"
)

// Server -> client socket events.
const (
	SOCKET_EVENT_AUTHENTICATED    = "authenticated"
	SOCKET_EVENT_NEW_MESSAGE      = "newMessage"
	SOCKET_EVENT_NEW_TRADING_CALL = "newTradingCall"
	SOCKET_EVENT_USER_JOINED      = "userJoined"
	SOCKET_EVENT_USER_LEFT        = "userLeft"
	SOCKET_EVENT_ONLINE_USERS     = "onlineUsers"
	SOCKET_EVENT_ERROR            = "error"
)
