package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/utils"
)

type TradingRepository struct {
	calls *mongo.Collection
}

func NewTradingRepository(db *mongo.Database) *TradingRepository {
	return &TradingRepository{
		calls: db.Collection("trading_calls"),
	}
}

func (tr *TradingRepository) CreateCall(ctx context.Context, call *models.TradingCall) (*models.TradingCall, []error) {
	var errorList []error

	now := time.Now()
	call.CreatedAt = now
	call.UpdatedAt = now
	call.Status = enums.CALL_STATUS_OPEN
	call.Result = enums.CALL_RESULT_UNKNOWN
	if call.Comments == nil {
		call.Comments = []models.CallComment{}
	}

	result, err := tr.calls.InsertOne(ctx, call)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	call.ID = result.InsertedID.(primitive.ObjectID)
	return call, nil
}

func (tr *TradingRepository) GetCallsByRoom(ctx context.Context, roomID primitive.ObjectID, status string, page, size int) (*models.CallListResponse, []error) {
	var errorList []error

	filter := bson.M{"room": roomID}
	if status != "" {
		filter["status"] = status
	}

	skip, limit := utils.Paginate(page, size)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := tr.calls.Find(ctx, filter, opts)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	calls := []models.TradingCall{}
	if err := cursor.All(ctx, &calls); err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	total, err := tr.calls.CountDocuments(ctx, filter)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	return &models.CallListResponse{
		Calls: calls,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Pages: utils.TotalPages(total, size),
		},
	}, nil
}

func (tr *TradingRepository) GetCallByID(ctx context.Context, id primitive.ObjectID) (*models.TradingCall, error) {
	var call models.TradingCall
	err := tr.calls.FindOne(ctx, bson.M{"_id": id}).Decode(&call)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

func (tr *TradingRepository) UpdateCall(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.TradingCall, error) {
	update["updated_at"] = time.Now()

	result := tr.calls.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		findAfterUpdate(),
	)

	var call models.TradingCall
	if err := result.Decode(&call); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

func (tr *TradingRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment models.CallComment) (*models.TradingCall, error) {
	result := tr.calls.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		findAfterUpdate(),
	)

	var call models.TradingCall
	if err := result.Decode(&call); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

// IncMetric bumps one of the metrics counters, e.g. "metrics.likes".
func (tr *TradingRepository) IncMetric(ctx context.Context, id primitive.ObjectID, field string) error {
	result, err := tr.calls.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrCallNotFound
	}
	return nil
}

func (tr *TradingRepository) GetStreamerStats(ctx context.Context, streamerID primitive.ObjectID) (*models.StreamerStatsResponse, []error) {
	var errorList []error

	total, err := tr.calls.CountDocuments(ctx, bson.M{"streamer": streamerID})
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	wins, err := tr.calls.CountDocuments(ctx, bson.M{"streamer": streamerID, "result": enums.CALL_RESULT_PROFIT})
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	losses, err := tr.calls.CountDocuments(ctx, bson.M{"streamer": streamerID, "result": enums.CALL_RESULT_LOSS})
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	open, err := tr.calls.CountDocuments(ctx, bson.M{"streamer": streamerID, "status": enums.CALL_STATUS_OPEN})
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	stats := &models.StreamerStatsResponse{
		TotalCalls: total,
		Wins:       wins,
		Losses:     losses,
		Open:       open,
	}
	if settled := wins + losses; settled > 0 {
		stats.WinRate = float64(wins) / float64(settled) * 100
	}
	return stats, nil
}
