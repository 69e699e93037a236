package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liveTrading/internal/enums"
)

func TestApplyResultBuy(t *testing.T) {
	call := &TradingCall{Action: enums.CALL_ACTION_BUY, Price: 100}

	call.ApplyResult(110)
	assert.InDelta(t, 10.0, call.ProfitLoss, 1e-9)
	assert.Equal(t, enums.CALL_RESULT_PROFIT, call.Result)

	call.ApplyResult(90)
	assert.InDelta(t, -10.0, call.ProfitLoss, 1e-9)
	assert.Equal(t, enums.CALL_RESULT_LOSS, call.Result)

	call.ApplyResult(100)
	assert.Zero(t, call.ProfitLoss)
	assert.Equal(t, enums.CALL_RESULT_BREAKEVEN, call.Result)
}

func TestApplyResultSell(t *testing.T) {
	call := &TradingCall{Action: enums.CALL_ACTION_SELL, Price: 200}

	call.ApplyResult(180)
	assert.InDelta(t, 10.0, call.ProfitLoss, 1e-9)
	assert.Equal(t, enums.CALL_RESULT_PROFIT, call.Result)

	call.ApplyResult(220)
	assert.InDelta(t, -10.0, call.ProfitLoss, 1e-9)
	assert.Equal(t, enums.CALL_RESULT_LOSS, call.Result)
}

func TestApplyResultHold(t *testing.T) {
	call := &TradingCall{Action: enums.CALL_ACTION_HOLD, Price: 100}

	call.ApplyResult(150)
	assert.Zero(t, call.ProfitLoss)
	assert.Equal(t, enums.CALL_RESULT_BREAKEVEN, call.Result)
}
