package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

func (rh *RestHandler) CreateRoom(ctx *gin.Context) {
	streamerID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.CreateRoomRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	room, createErrs := rh.roomService.CreateRoom(ctx.Request.Context(), streamerID, &body)
	if len(createErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(createErrs), createErrs...)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgRoomCreatedSuccessfully,
		Data: gin.H{
			"room":       room,
			"stream_key": room.StreamKey,
		},
	})
}

func (rh *RestHandler) GetRooms(ctx *gin.Context) {
	page, size := paginationQuery(ctx)
	status := ctx.Query("status")

	rooms, listErrs := rh.roomService.GetRooms(ctx.Request.Context(), status, page, size)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(listErrs), listErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, rooms)
}

func (rh *RestHandler) GetRoom(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	room, getErrs := rh.roomService.GetRoom(ctx.Request.Context(), roomID)
	if len(getErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(getErrs), getErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, room)
}

func (rh *RestHandler) UpdateRoom(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.UpdateRoomRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	room, updateErrs := rh.roomService.UpdateRoom(ctx.Request.Context(), roomID, userID, &body)
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(updateErrs), updateErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, room)
}

func (rh *RestHandler) StartStream(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	room, startErrs := rh.roomService.StartStream(ctx.Request.Context(), roomID, userID)
	if len(startErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(startErrs), startErrs...)
		return
	}

	respondOK(ctx, msgs.MsgStreamStarted, room)
}

func (rh *RestHandler) EndStream(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	room, endErrs := rh.roomService.EndStream(ctx.Request.Context(), roomID, userID)
	if len(endErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(endErrs), endErrs...)
		return
	}

	respondOK(ctx, msgs.MsgStreamEnded, room)
}

func (rh *RestHandler) GetRoomStats(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	stats, statsErrs := rh.roomService.GetRoomStats(ctx.Request.Context(), roomID, userID)
	if len(statsErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(statsErrs), statsErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, stats)
}

func (rh *RestHandler) ResetStreamKey(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	streamKey, resetErrs := rh.roomService.ResetStreamKey(ctx.Request.Context(), roomID, userID)
	if len(resetErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(resetErrs), resetErrs...)
		return
	}

	respondOK(ctx, msgs.MsgStreamKeyReset, gin.H{"stream_key": streamKey})
}

// VerifyStreamKey is the RTMP ingest authorization callback: the media server
// posts the key a publisher presented and only gets a 200 when it matches a
// room.
func (rh *RestHandler) VerifyStreamKey(ctx *gin.Context) {
	var body models.VerifyStreamKeyRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	room, verifyErrs := rh.roomService.VerifyStreamKey(ctx.Request.Context(), body.StreamKey)
	if len(verifyErrs) > 0 {
		abortWithErrors(ctx, http.StatusUnauthorized, verifyErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, gin.H{"room_id": room.ID.Hex()})
}

func paginationQuery(ctx *gin.Context) (page, size int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}
