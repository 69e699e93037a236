package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/repositories"
)

type TradingService struct {
	tradingRepo *repositories.TradingRepository
	roomRepo    *repositories.RoomRepository
}

func NewTradingService(
	tradingRepo *repositories.TradingRepository,
	roomRepo *repositories.RoomRepository,
) *TradingService {
	return &TradingService{
		tradingRepo: tradingRepo,
		roomRepo:    roomRepo,
	}
}

func (ts *TradingService) CreateCall(ctx context.Context, streamerID primitive.ObjectID, body *models.CreateCallRequestBody) (*models.TradingCall, []error) {
	var errors []error

	if body.StockCode == "" || body.StockName == "" || body.Price <= 0 {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return nil, errors
	}
	if !validCallAction(body.Action) {
		errors = append(errors, errs.ErrInvalidCallAction)
		return nil, errors
	}

	roomID, err := primitive.ObjectIDFromHex(body.RoomID)
	if err != nil {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}

	room, err := ts.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !room.IsOwnedBy(streamerID) {
		errors = append(errors, errs.ErrNotRoomOwner)
		return nil, errors
	}

	call, createErrs := ts.tradingRepo.CreateCall(ctx, &models.TradingCall{
		Room:        roomID,
		Streamer:    streamerID,
		StockCode:   body.StockCode,
		StockName:   body.StockName,
		Action:      body.Action,
		Price:       body.Price,
		TargetPrice: body.TargetPrice,
		StopLoss:    body.StopLoss,
		Reason:      body.Reason,
		Analysis:    body.Analysis,
		Tags:        body.Tags,
	})
	if len(createErrs) > 0 {
		return nil, createErrs
	}

	if err := ts.roomRepo.IncStatistics(ctx, roomID, "statistics.total_trading_calls", 1); err != nil {
		zap.L().Warn("failed to bump room trading call count", zap.Error(err))
	}

	return call, nil
}

func (ts *TradingService) GetCallsByRoom(ctx context.Context, roomID primitive.ObjectID, status string, page, size int) (*models.CallListResponse, []error) {
	return ts.tradingRepo.GetCallsByRoom(ctx, roomID, status, page, size)
}

func (ts *TradingService) GetCall(ctx context.Context, callID primitive.ObjectID) (*models.TradingCall, []error) {
	var errors []error
	call, err := ts.tradingRepo.GetCallByID(ctx, callID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return call, nil
}

// UpdateCallStatus closes or cancels a call. Closing with a current price
// settles the profit/loss result.
func (ts *TradingService) UpdateCallStatus(ctx context.Context, callID, callerID primitive.ObjectID, body *models.UpdateCallStatusRequestBody) (*models.TradingCall, []error) {
	var errors []error

	if body.Status != enums.CALL_STATUS_CLOSED && body.Status != enums.CALL_STATUS_CANCELLED {
		errors = append(errors, errs.ErrInvalidCallStatus)
		return nil, errors
	}

	call, err := ts.tradingRepo.GetCallByID(ctx, callID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if call.Streamer != callerID {
		errors = append(errors, errs.ErrForbidden)
		return nil, errors
	}

	update := bson.M{"status": body.Status}
	if body.Status == enums.CALL_STATUS_CLOSED && body.CurrentPrice != nil {
		call.ApplyResult(*body.CurrentPrice)
		update["result"] = call.Result
		update["profit_loss"] = call.ProfitLoss
	}

	updated, err := ts.tradingRepo.UpdateCall(ctx, callID, update)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (ts *TradingService) AddComment(ctx context.Context, callID, userID primitive.ObjectID, content string) (*models.TradingCall, []error) {
	var errors []error

	if content == "" {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return nil, errors
	}

	call, err := ts.tradingRepo.AddComment(ctx, callID, models.CallComment{
		User:      userID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return call, nil
}

func (ts *TradingService) GetStreamerStats(ctx context.Context, streamerID primitive.ObjectID) (*models.StreamerStatsResponse, []error) {
	return ts.tradingRepo.GetStreamerStats(ctx, streamerID)
}

func (ts *TradingService) UpdateMetrics(ctx context.Context, callID primitive.ObjectID, metricType string) []error {
	var errors []error

	var field string
	switch metricType {
	case "view":
		field = "metrics.views"
	case "like":
		field = "metrics.likes"
	case "share":
		field = "metrics.shares"
	default:
		errors = append(errors, errs.ErrInvalidParams)
		return errors
	}

	if err := ts.tradingRepo.IncMetric(ctx, callID, field); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func validCallAction(action string) bool {
	switch action {
	case enums.CALL_ACTION_BUY, enums.CALL_ACTION_SELL, enums.CALL_ACTION_HOLD:
		return true
	}
	return false
}
