package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

const ctxKeyClaims = "claims"

func abortWithErrors(ctx *gin.Context, status int, errorList ...error) {
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errorList,
	})
}

func respondOK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func claimsFromContext(ctx *gin.Context) *models.Claims {
	value, exists := ctx.Get(ctxKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}

func callerID(ctx *gin.Context) (primitive.ObjectID, bool) {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func objectIDParam(ctx *gin.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(name))
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidParams
	}
	return id, nil
}

// statusForErrors maps service errors onto the status the route should answer
// with; unknown errors are treated as internal.
func statusForErrors(errorList []error) int {
	for _, err := range errorList {
		switch {
		case errors.Is(err, errs.ErrUserNotFound),
			errors.Is(err, errs.ErrRoomNotFound),
			errors.Is(err, errs.ErrCallNotFound),
			errors.Is(err, errs.ErrMessageNotFound):
			return http.StatusNotFound
		case errors.Is(err, errs.ErrWrongCredentials),
			errors.Is(err, errs.ErrInvalidToken),
			errors.Is(err, errs.ErrUserInactive),
			errors.Is(err, errs.ErrUnauthorized):
			return http.StatusUnauthorized
		case errors.Is(err, errs.ErrForbidden),
			errors.Is(err, errs.ErrNotRoomOwner):
			return http.StatusForbidden
		case errors.Is(err, errs.ErrSlowModeActive):
			return http.StatusTooManyRequests
		case errors.Is(err, errs.ErrUserAlreadyExists),
			errors.Is(err, errs.ErrUsernameTaken),
			errors.Is(err, errs.ErrInvalidRequestBody),
			errors.Is(err, errs.ErrInvalidParams),
			errors.Is(err, errs.ErrInvalidEmail),
			errors.Is(err, errs.ErrInvalidUsername),
			errors.Is(err, errs.ErrWeakPassword),
			errors.Is(err, errs.ErrInvalidCallAction),
			errors.Is(err, errs.ErrInvalidCallStatus),
			errors.Is(err, errs.ErrInvalidStreamKey),
			errors.Is(err, errs.ErrChatDisabled),
			errors.Is(err, errs.ErrRoomNotLive),
			errors.Is(err, errs.ErrEmptyMessage),
			errors.Is(err, errs.ErrInvalidFile):
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
