package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/msgs"
)

func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		jwtToken = strings.TrimPrefix(jwtToken, "Bearer ")

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := rh.authService.VerifyUserToken(ctx.Request.Context(), jwtToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		ctx.Set(ctxKeyClaims, claims)
		ctx.Next()
	}
}

// RequireStreamerMiddleware allows streamers and admins through.
func (rh *RestHandler) RequireStreamerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := claimsFromContext(ctx)
		if claims == nil || (claims.Role != enums.ROLE_STREAMER && claims.Role != enums.ROLE_ADMIN) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  []error{errs.ErrForbidden},
			})
			return
		}
		ctx.Next()
	}
}

func (rh *RestHandler) RequireAdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := claimsFromContext(ctx)
		if claims == nil || claims.Role != enums.ROLE_ADMIN {
			ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  []error{errs.ErrForbidden},
			})
			return
		}
		ctx.Next()
	}
}
