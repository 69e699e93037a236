package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

func (rh *RestHandler) UploadAvatar(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidFile)
		return
	}
	defer file.Close()

	url, err := rh.fileManagerService.Upload(
		userID.Hex(),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		enums.FILE_BUCKET_USER_AVATAR,
	)
	if err != nil {
		abortWithErrors(ctx, http.StatusInternalServerError, err)
		return
	}

	profile, updateErrs := rh.authService.UpdateProfile(ctx.Request.Context(), userID, &models.UpdateProfileRequestBody{Avatar: url})
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(updateErrs), updateErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, profile)
}

func (rh *RestHandler) UploadRoomThumbnail(ctx *gin.Context) {
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

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidFile)
		return
	}
	defer file.Close()

	url, err := rh.fileManagerService.Upload(
		roomID.Hex(),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		enums.FILE_BUCKET_ROOM_THUMBNAIL,
	)
	if err != nil {
		abortWithErrors(ctx, http.StatusInternalServerError, err)
		return
	}

	room, updateErrs := rh.roomService.UpdateThumbnail(ctx.Request.Context(), roomID, userID, url)
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(updateErrs), updateErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, room)
}
