package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

func (rh *RestHandler) CreateTradingCall(ctx *gin.Context) {
	streamerID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.CreateCallRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	call, createErrs := rh.tradingService.CreateCall(ctx.Request.Context(), streamerID, &body)
	if len(createErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(createErrs), createErrs...)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgCallPublishedSuccessfully,
		Data:    call,
	})
}

func (rh *RestHandler) GetRoomTradingCalls(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "roomId")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	page, size := paginationQuery(ctx)
	calls, listErrs := rh.tradingService.GetCallsByRoom(ctx.Request.Context(), roomID, ctx.Query("status"), page, size)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(listErrs), listErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, calls)
}

func (rh *RestHandler) GetTradingCall(ctx *gin.Context) {
	callID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	call, getErrs := rh.tradingService.GetCall(ctx.Request.Context(), callID)
	if len(getErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(getErrs), getErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, call)
}

func (rh *RestHandler) UpdateTradingCallStatus(ctx *gin.Context) {
	callID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.UpdateCallStatusRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	call, updateErrs := rh.tradingService.UpdateCallStatus(ctx.Request.Context(), callID, userID, &body)
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(updateErrs), updateErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, call)
}

func (rh *RestHandler) AddTradingCallComment(ctx *gin.Context) {
	callID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.AddCommentRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	call, commentErrs := rh.tradingService.AddComment(ctx.Request.Context(), callID, userID, body.Content)
	if len(commentErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(commentErrs), commentErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, call)
}

func (rh *RestHandler) GetStreamerStats(ctx *gin.Context) {
	streamerID, err := objectIDParam(ctx, "streamerId")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	stats, statsErrs := rh.tradingService.GetStreamerStats(ctx.Request.Context(), streamerID)
	if len(statsErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(statsErrs), statsErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, stats)
}

func (rh *RestHandler) UpdateTradingCallMetrics(ctx *gin.Context) {
	callID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	var body models.UpdateMetricsRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	if metricErrs := rh.tradingService.UpdateMetrics(ctx.Request.Context(), callID, body.Type); len(metricErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(metricErrs), metricErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, nil)
}
