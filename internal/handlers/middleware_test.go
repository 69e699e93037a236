package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"liveTrading/internal/enums"
	"liveTrading/internal/models"
)

func contextWithClaims(role string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		ctx.Set(ctxKeyClaims, &models.Claims{UserID: "user-1", Username: "alice", Role: role})
	}
	return ctx, recorder
}

func TestRequireAdminMiddleware(t *testing.T) {
	rh := &RestHandler{}
	middleware := rh.RequireAdminMiddleware()

	ctx, _ := contextWithClaims(enums.ROLE_ADMIN)
	middleware(ctx)
	assert.False(t, ctx.IsAborted())

	for _, role := range []string{enums.ROLE_USER, enums.ROLE_STREAMER, ""} {
		ctx, recorder := contextWithClaims(role)
		middleware(ctx)
		assert.True(t, ctx.IsAborted())
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	}
}

func TestRequireStreamerMiddleware(t *testing.T) {
	rh := &RestHandler{}
	middleware := rh.RequireStreamerMiddleware()

	for _, role := range []string{enums.ROLE_STREAMER, enums.ROLE_ADMIN} {
		ctx, _ := contextWithClaims(role)
		middleware(ctx)
		assert.False(t, ctx.IsAborted())
	}

	ctx, recorder := contextWithClaims(enums.ROLE_USER)
	middleware(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestMustAuthenticateMiddlewareRejectsMissingToken(t *testing.T) {
	rh := &RestHandler{}
	middleware := rh.MustAuthenticateMiddleware()

	ctx, recorder := contextWithClaims("")
	middleware(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
