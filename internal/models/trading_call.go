package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/enums"
)

type CallComment struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type CallMetrics struct {
	Views  int64 `bson:"views" json:"views"`
	Likes  int64 `bson:"likes" json:"likes"`
	Shares int64 `bson:"shares" json:"shares"`
}

// TradingCall is a structured buy/sell/hold signal authored by a streamer,
// with entry price, target and stop-loss.
type TradingCall struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Room        primitive.ObjectID `bson:"room" json:"room"`
	Streamer    primitive.ObjectID `bson:"streamer" json:"streamer"`
	StockCode   string             `bson:"stock_code" json:"stock_code"`
	StockName   string             `bson:"stock_name" json:"stock_name"`
	Action      string             `bson:"action" json:"action"`
	Price       float64            `bson:"price" json:"price"`
	TargetPrice float64            `bson:"target_price,omitempty" json:"target_price,omitempty"`
	StopLoss    float64            `bson:"stop_loss,omitempty" json:"stop_loss,omitempty"`
	Reason      string             `bson:"reason" json:"reason"`
	Analysis    string             `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Result      string             `bson:"result" json:"result"`
	ProfitLoss  float64            `bson:"profit_loss" json:"profit_loss"`
	Comments    []CallComment      `bson:"comments" json:"comments"`
	Metrics     CallMetrics        `bson:"metrics" json:"metrics"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ApplyResult computes the percentage profit or loss of the call against the
// given price and sets the result accordingly. Hold calls always break even.
func (call *TradingCall) ApplyResult(currentPrice float64) {
	switch call.Action {
	case enums.CALL_ACTION_BUY:
		call.ProfitLoss = ((currentPrice - call.Price) / call.Price) * 100
	case enums.CALL_ACTION_SELL:
		call.ProfitLoss = ((call.Price - currentPrice) / call.Price) * 100
	default:
		call.ProfitLoss = 0
	}

	switch {
	case call.ProfitLoss > 0:
		call.Result = enums.CALL_RESULT_PROFIT
	case call.ProfitLoss < 0:
		call.Result = enums.CALL_RESULT_LOSS
	default:
		call.Result = enums.CALL_RESULT_BREAKEVEN
	}
}
