package msgs

const (
	MsgOperationSuccessful = "operation successful"
	MsgOperationFailed     = "operation failed"

	MsgUserCreatedSuccessfully = "user created successfully"
	MsgLoginSuccessful         = "login successful"
	MsgYouMustLoginFirst       = "you must login first"

	MsgRoomCreatedSuccessfully = "room created successfully"
	MsgStreamStarted           = "stream started"
	MsgStreamEnded             = "stream ended"
	MsgStreamKeyReset          = "stream key reset"

	MsgCallPublishedSuccessfully = "trading call published successfully"
	MsgMessageSentSuccessfully   = "message sent successfully"
	MsgMessageDeleted            = "message deleted"
)
