package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
)

func TestOCO_Sell(t *testing.T) {
	rec := &execution.Recorder{Price: 45000}
	p := newPlacer(rec)

	receipt, err := p.OCO(context.Background(), "BTCUSDT", domain.SideSell, 0.01, 47000, 43000, 42900, false)
	if err != nil {
		t.Fatalf("OCO() error: %v", err)
	}
	if len(rec.Orders) != 2 {
		t.Fatalf("placed %d orders, want 2", len(rec.Orders))
	}
	if rec.Orders[0].Type != domain.OrderTypeLimit {
		t.Errorf("first leg type = %s, want LIMIT", rec.Orders[0].Type)
	}
	if rec.Orders[1].Type != domain.OrderTypeStopLimit {
		t.Errorf("second leg type = %s, want STOP_LIMIT", rec.Orders[1].Type)
	}
	if rec.Orders[1].StopPrice != 43000 {
		t.Errorf("stop leg trigger = %v, want 43000", rec.Orders[1].StopPrice)
	}
	if receipt.Status != domain.OrderStatusExecuting {
		t.Errorf("pair status = %s, want EXECUTING", receipt.Status)
	}
	// +2000/45000 profit against -2100/45000 loss.
	wantProfit := 2000.0 / 45000 * 100
	if diff := receipt.ProfitPct - wantProfit; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("profit pct = %v, want %v", receipt.ProfitPct, wantProfit)
	}
	if receipt.LossPct >= 0 {
		t.Errorf("loss pct = %v, want negative for a sell stop below market", receipt.LossPct)
	}
	wantRR := 2000.0 / 2100.0
	if diff := receipt.RiskReward - wantRR; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("risk/reward = %v, want %v", receipt.RiskReward, wantRR)
	}
	if !strings.HasPrefix(receipt.ListID, "OCO_") {
		t.Errorf("list id = %q, want OCO_ prefix", receipt.ListID)
	}
}

func TestOCO_DirectionalChecks(t *testing.T) {
	p := newPlacer(&execution.Recorder{Price: 45000})
	ctx := context.Background()

	tests := []struct {
		name                        string
		side                        string
		price, stop, stopLimitPrice float64
	}{
		{"sell take-profit below market", domain.SideSell, 44000, 43000, 42900},
		{"sell stop above market", domain.SideSell, 47000, 46000, 45900},
		{"buy take-profit above market", domain.SideBuy, 46000, 47000, 47100},
		{"buy stop below market", domain.SideBuy, 43000, 44000, 44100},
		{"non-positive stop", domain.SideSell, 47000, 0, 42900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.OCO(ctx, "BTCUSDT", tt.side, 0.01, tt.price, tt.stop, tt.stopLimitPrice, false)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("OCO() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestOCO_StopLimitWarning(t *testing.T) {
	p := newPlacer(&execution.Recorder{Price: 45000})

	// SELL with the stop-limit price above the trigger still places both
	// legs but warns.
	receipt, err := p.OCO(context.Background(), "BTCUSDT", domain.SideSell, 0.01, 47000, 43000, 43100, false)
	if err != nil {
		t.Fatalf("OCO() error: %v", err)
	}
	if len(receipt.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", receipt.Warnings)
	}
}

func TestOCO_SecondLegFailureLeavesFirst(t *testing.T) {
	rec := &execution.Recorder{
		Price:  45000,
		FailOn: map[int]error{2: &domain.ExchangeError{Code: -2021, Msg: "Order would immediately trigger."}},
	}
	p := newPlacer(rec)

	_, err := p.OCO(context.Background(), "BTCUSDT", domain.SideSell, 0.01, 47000, 43000, 42900, false)
	if err == nil {
		t.Fatal("OCO() expected the stop leg failure to surface")
	}
	var exErr *domain.ExchangeError
	if !errors.As(err, &exErr) {
		t.Errorf("error = %v, want the wrapped exchange error", err)
	}
	// The take-profit leg stays on the book; no rollback is attempted.
	if len(rec.Orders) != 1 {
		t.Fatalf("placed %d orders, want the surviving take-profit leg only", len(rec.Orders))
	}
	if rec.Orders[0].Type != domain.OrderTypeLimit {
		t.Errorf("surviving order type = %s, want LIMIT", rec.Orders[0].Type)
	}
	if !strings.Contains(err.Error(), "SIM_LIMIT_BTCUSDT_SELL_0.01") {
		t.Errorf("error should name the placed take-profit order: %v", err)
	}
}
