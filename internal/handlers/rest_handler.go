package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
	"liveTrading/internal/services"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	roomService        *services.RoomService
	chatService        *services.ChatService
	tradingService     *services.TradingService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	roomService *services.RoomService,
	chatService *services.ChatService,
	tradingService *services.TradingService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		roomService:        roomService,
		chatService:        chatService,
		tradingService:     tradingService,
		fileManagerService: fileManagerService,
	}
}

// Register godoc
// @Summary      Register a new account
// @Accept       json
// @Produce      json
// @Router       /api/auth/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var body models.RegisterRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	response, registerErrs := rh.authService.Register(ctx.Request.Context(), &body)
	if len(registerErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(registerErrs), registerErrs...)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
		Data:    response,
	})
}

// Login godoc
// @Summary      Login with email and password
// @Accept       json
// @Produce      json
// @Router       /api/auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	loginResponse, loginErrs := rh.authService.Login(ctx.Request.Context(), &loginData)
	if len(loginErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(loginErrs), loginErrs...)
		return
	}

	respondOK(ctx, msgs.MsgLoginSuccessful, loginResponse)
}

func (rh *RestHandler) Me(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	profile, profileErrs := rh.authService.GetProfile(ctx.Request.Context(), userID)
	if len(profileErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(profileErrs), profileErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, profile)
}

func (rh *RestHandler) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.UpdateProfileRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	profile, updateErrs := rh.authService.UpdateProfile(ctx.Request.Context(), userID, &body)
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(updateErrs), updateErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, profile)
}

func (rh *RestHandler) ChangePassword(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	var body models.ChangePasswordRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	if changeErrs := rh.authService.ChangePassword(ctx.Request.Context(), userID, &body); len(changeErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(changeErrs), changeErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, nil)
}

// SetUserStatus is the admin switch for activating or deactivating accounts.
func (rh *RestHandler) SetUserStatus(ctx *gin.Context) {
	userID, err := objectIDParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, http.StatusBadRequest, err)
		return
	}

	var body models.UpdateUserStatusRequestBody
	if err := ctx.BindJSON(&body); err != nil || body.IsActive == nil {
		abortWithErrors(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	profile, statusErrs := rh.authService.SetUserActive(ctx.Request.Context(), userID, *body.IsActive)
	if len(statusErrs) > 0 {
		abortWithErrors(ctx, statusForErrors(statusErrs), statusErrs...)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, profile)
}

// VerifyToken answers whether the presented token is still valid; the
// authentication middleware has already done the checking.
func (rh *RestHandler) VerifyToken(ctx *gin.Context) {
	claims := claimsFromContext(ctx)
	if claims == nil {
		abortWithErrors(ctx, http.StatusUnauthorized, errs.ErrUnauthorized)
		return
	}

	respondOK(ctx, msgs.MsgOperationSuccessful, gin.H{
		"valid": true,
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}
