package app

import (
	"context"
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"liveTrading/configs"
	"liveTrading/internal/handlers"
	"liveTrading/internal/hub"
	"liveTrading/internal/repositories"
	"liveTrading/internal/servers/database"
	"liveTrading/internal/servers/http"
	"liveTrading/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	ctx     context.Context
	configs *configs.Config
	redis   *redis.Client
	logger  *zap.Logger
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeLogger()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	authRepo := repositories.NewAuthenticationRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	tradingRepo := repositories.NewTradingRepository(db)

	authService := services.NewAuthenticationService(authRepo, app.configs)
	roomService := services.NewRoomService(roomRepo)
	rateLimiter := services.NewRateLimiterService(app.redis)
	chatService := services.NewChatService(chatRepo, roomRepo, rateLimiter)
	tradingService := services.NewTradingService(tradingRepo, roomRepo)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	socketHub := hub.NewHub(authService, app.logger)

	restHandler := handlers.NewRestHandler(
		authService,
		roomService,
		chatService,
		tradingService,
		fileManagerService,
	)
	socketHandler := handlers.NewSocketHandler(socketHub)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketHandler,
		socketHub,
	).Run()
}

func (app *App) initializeConfigs() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment and config file")
	}
	app.configs = configs.GetConfig()
}

func (app *App) initializeLogger() {
	var err error
	if app.configs.Viper.GetString("server.mode") == "release" {
		app.logger, err = zap.NewProduction()
	} else {
		app.logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(app.logger)
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr:     app.configs.Viper.GetString("redis.addr"),
		Password: app.configs.Viper.GetString("redis.password"),
		DB:       app.configs.Viper.GetInt("redis.db"),
	})
}
