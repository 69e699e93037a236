package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"liveTrading/configs"
)

var (
	db   *mongo.Database
	once sync.Once
)

func GetDB(config *configs.Config) *mongo.Database {
	once.Do(func() {
		initialize(config)
	})
	return db
}

func initialize(config *configs.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.Viper.GetString("mongo.uri")))
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		zap.L().Fatal("failed to ping database", zap.Error(err))
	}

	db = client.Database(config.Viper.GetString("mongo.database"))

	ensureIndexes(ctx)
}

func ensureIndexes(ctx context.Context) {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	})
	if err != nil {
		zap.L().Fatal("failed to create user indexes", zap.Error(err))
	}

	_, err = db.Collection("live_rooms").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "stream_key", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		zap.L().Fatal("failed to create room indexes", zap.Error(err))
	}

	_, err = db.Collection("chat_messages").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		zap.L().Fatal("failed to create message indexes", zap.Error(err))
	}

	_, err = db.Collection("trading_calls").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "streamer", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "stock_code", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		zap.L().Fatal("failed to create trading call indexes", zap.Error(err))
	}

	zap.L().Info("database indexes ensured")
}
