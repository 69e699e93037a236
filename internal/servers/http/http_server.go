package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liveTrading/configs"
	"liveTrading/internal/handlers"
	"liveTrading/internal/hub"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketHandler
	socketHub     *hub.Hub
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
	socketHub *hub.Hub,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			config:        config,
			restHandler:   restHandler,
			socketHandler: socketHandler,
			socketHub:     socketHub,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	gin.SetMode(hs.config.Viper.GetString("server.mode"))
	hs.router = gin.New()
	hs.router.Use(gin.Recovery())
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := hs.router.Group("/api")
	mustAuth := hs.restHandler.MustAuthenticateMiddleware()
	requireStreamer := hs.restHandler.RequireStreamerMiddleware()

	auth := api.Group("/auth")
	{
		auth.POST("/register", hs.restHandler.Register)
		auth.POST("/login", hs.restHandler.Login)
		auth.GET("/me", mustAuth, hs.restHandler.Me)
		auth.PUT("/profile", mustAuth, hs.restHandler.UpdateProfile)
		auth.PUT("/password", mustAuth, hs.restHandler.ChangePassword)
		auth.POST("/verify", mustAuth, hs.restHandler.VerifyToken)
	}

	stream := api.Group("/stream")
	{
		stream.GET("", hs.restHandler.GetRooms)
		stream.GET("/:id", hs.restHandler.GetRoom)
		stream.POST("/verify-key", hs.restHandler.VerifyStreamKey)

		stream.POST("", mustAuth, requireStreamer, hs.restHandler.CreateRoom)
		stream.PUT("/:id", mustAuth, requireStreamer, hs.restHandler.UpdateRoom)
		stream.POST("/:id/start", mustAuth, requireStreamer, hs.restHandler.StartStream)
		stream.POST("/:id/end", mustAuth, requireStreamer, hs.restHandler.EndStream)
		stream.GET("/:id/stats", mustAuth, requireStreamer, hs.restHandler.GetRoomStats)
		stream.POST("/:id/reset-key", mustAuth, requireStreamer, hs.restHandler.ResetStreamKey)
		stream.POST("/:id/thumbnail", mustAuth, requireStreamer, hs.restHandler.UploadRoomThumbnail)
	}

	trading := api.Group("/trading")
	{
		trading.GET("/room/:roomId", hs.restHandler.GetRoomTradingCalls)
		trading.GET("/streamer/:streamerId/stats", hs.restHandler.GetStreamerStats)
		trading.GET("/:id", hs.restHandler.GetTradingCall)

		trading.POST("", mustAuth, requireStreamer, hs.restHandler.CreateTradingCall)
		trading.PUT("/:id/status", mustAuth, requireStreamer, hs.restHandler.UpdateTradingCallStatus)
		trading.POST("/:id/comments", mustAuth, hs.restHandler.AddTradingCallComment)
		trading.PUT("/:id/metrics", mustAuth, hs.restHandler.UpdateTradingCallMetrics)
	}

	chat := api.Group("/chat")
	{
		chat.GET("/room/:roomId", hs.restHandler.GetRoomMessages)
		chat.GET("/room/:roomId/pinned", hs.restHandler.GetPinnedMessages)

		chat.POST("", mustAuth, hs.restHandler.SendMessage)
		chat.DELETE("/:id", mustAuth, hs.restHandler.DeleteMessage)
		chat.POST("/:id/reactions", mustAuth, hs.restHandler.ToggleReaction)
		chat.PUT("/:id/pin", mustAuth, requireStreamer, hs.restHandler.TogglePin)
		chat.PUT("/:id/highlight", mustAuth, requireStreamer, hs.restHandler.ToggleHighlight)
	}

	files := api.Group("/files")
	{
		files.POST("/avatar", mustAuth, hs.restHandler.UploadAvatar)
	}

	admin := api.Group("/admin", mustAuth, hs.restHandler.RequireAdminMiddleware())
	{
		admin.PUT("/users/:id/status", hs.restHandler.SetUserStatus)
	}
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws", hs.socketHandler.HandleSocketRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		zap.L().Info("HTTP server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	hs.socketHub.Shutdown()

	if err := server.Shutdown(hs.ctx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
