package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

func (rh *RestHandler) GetRoomMessages(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "roomId")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	page, size := paginationQuery(ctx)
	messages, listErrs := rh.chatService.GetRoomMessages(ctx.Request.Context(), roomID, page, size)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(listErrs), listErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, messages)
}

func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	message, sendErrs := rh.chatService.SendMessage(ctx.Request.Context(), userID, &body)
	if len(sendErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(sendErrs), sendErrs...)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgMessageSentSuccessfully,
		Data:    message,
	})
}

func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	messageID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	claims := claimsFromContext(ctx)
	if claims == nil {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.DeleteMessageRequestBody
	// The reason body is optional; self-deletion sends none.
	_ = ctx.ShouldBindJSON(&body)

	if deleteErrs := rh.chatService.DeleteMessage(ctx.Request.Context(), messageID, claims, body.Reason); len(deleteErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(deleteErrs), deleteErrs...)
		return
	}

	respondOK(ctx, msgs.MsgMessageDeleted, nil)
}

func (rh *RestHandler) ToggleReaction(ctx *gin.Context) {
	messageID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.ReactionRequestBody
	if err := ctx.BindJSON(&body); err != nil || body.Type == "" {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	reactions, reactionErrs := rh.chatService.ToggleReaction(ctx.Request.Context(), messageID, userID, body.Type)
	if len(reactionErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(reactionErrs), reactionErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, gin.H{"reactions": reactions})
}

func (rh *RestHandler) TogglePin(ctx *gin.Context) {
	messageID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	claims := claimsFromContext(ctx)
	if claims == nil {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	message, pinErrs := rh.chatService.TogglePin(ctx.Request.Context(), messageID, claims)
	if len(pinErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(pinErrs), pinErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, message)
}

func (rh *RestHandler) ToggleHighlight(ctx *gin.Context) {
	messageID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	claims := claimsFromContext(ctx)
	if claims == nil {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	message, highlightErrs := rh.chatService.ToggleHighlight(ctx.Request.Context(), messageID, claims)
	if len(highlightErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(highlightErrs), highlightErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, message)
}

func (rh *RestHandler) GetPinnedMessages(ctx *gin.Context) {
	roomID, err := objectIDParam(ctx, "roomId")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	messages, listErrs := rh.chatService.GetPinnedMessages(ctx.Request.Context(), roomID)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(listErrs), listErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, gin.H{"messages": messages})
}
