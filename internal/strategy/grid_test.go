package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
)

func TestGridParams_Validate(t *testing.T) {
	good := GridParams{Symbol: "ADAUSDT", Investment: 1000, RangePct: 10, Grids: 5}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*GridParams)
	}{
		{"zero investment", func(p *GridParams) { p.Investment = 0 }},
		{"zero range", func(p *GridParams) { p.RangePct = 0 }},
		{"range above 50", func(p *GridParams) { p.RangePct = 51 }},
		{"one level", func(p *GridParams) { p.Grids = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := good
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGrid_Plan(t *testing.T) {
	rec := &execution.Recorder{Price: 100}
	g := &Grid{Gateway: rec, Mode: execution.ModeSimulated, Log: testLogger()}

	plan, err := g.Plan(context.Background(), GridParams{
		Symbol:     "ADAUSDT",
		Investment: 1000,
		RangePct:   10,
		Grids:      5,
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if plan.Lower != 95 || plan.Upper != 105 {
		t.Errorf("bounds = [%v, %v], want [95, 105]", plan.Lower, plan.Upper)
	}
	if plan.PerGrid != 200 {
		t.Errorf("per-grid investment = %v, want 200", plan.PerGrid)
	}
	if plan.MaxDownsidePct != 5 || plan.MaxUpsidePct != 5 {
		t.Errorf("edge moves = %v%% down, %v%% up, want 5 and 5", plan.MaxDownsidePct, plan.MaxUpsidePct)
	}
	if plan.BuyLevels != 3 || plan.SellLevels != 2 {
		t.Errorf("levels = %d buy, %d sell, want 3 and 2", plan.BuyLevels, plan.SellLevels)
	}
	if plan.SentimentIndex != -1 {
		t.Errorf("sentiment index = %d, want -1 when gate unused", plan.SentimentIndex)
	}

	want := []struct {
		price     float64
		qty       float64
		side      string
		orderType string
	}{
		{95, 2.1, domain.SideBuy, domain.OrderTypeLimit},
		{97.5, 2.1, domain.SideBuy, domain.OrderTypeLimit},
		{100, 2, domain.SideBuy, domain.OrderTypeMarket},
		{102.5, 2, domain.SideSell, domain.OrderTypeLimit},
		{105, 1.9, domain.SideSell, domain.OrderTypeLimit},
	}
	if len(plan.Levels) != len(want) {
		t.Fatalf("planned %d levels, want %d", len(plan.Levels), len(want))
	}
	for i, w := range want {
		got := plan.Levels[i]
		if got.Level != i+1 {
			t.Errorf("level %d numbered %d", i, got.Level)
		}
		if got.Price != w.price {
			t.Errorf("level %d price = %v, want %v", i+1, got.Price, w.price)
		}
		if got.Quantity != w.qty {
			t.Errorf("level %d quantity = %v, want %v", i+1, got.Quantity, w.qty)
		}
		if got.Side != w.side || got.Type != w.orderType {
			t.Errorf("level %d = %s %s, want %s %s", i+1, got.Side, got.Type, w.side, w.orderType)
		}
		if got.Investment != 200 {
			t.Errorf("level %d investment = %v, want 200", i+1, got.Investment)
		}
		if got.Status != domain.GridStatusPending {
			t.Errorf("level %d status = %s, want PENDING", i+1, got.Status)
		}
	}
}

func TestGrid_Plan_ExtremeGreed(t *testing.T) {
	rec := &execution.Recorder{Price: 100}
	g := &Grid{Gateway: rec, Sentiment: sentimentSource(t, 75), Mode: execution.ModeSimulated, Log: testLogger()}

	plan, err := g.Plan(context.Background(), GridParams{
		Symbol:       "ADAUSDT",
		Investment:   1000,
		RangePct:     10,
		Grids:        5,
		UseSentiment: true,
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if plan.SentimentIndex != 75 {
		t.Errorf("sentiment index = %d, want 75", plan.SentimentIndex)
	}
	if !plan.ExtremeGreed() {
		t.Error("index 75 should flag extreme greed")
	}

	g.Sentiment = sentimentSource(t, 70)
	plan, err = g.Plan(context.Background(), GridParams{
		Symbol:       "ADAUSDT",
		Investment:   1000,
		RangePct:     10,
		Grids:        5,
		UseSentiment: true,
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if plan.ExtremeGreed() {
		t.Error("index 70 sits on the boundary and should not flag")
	}
}

func TestGrid_Execute_AllLevelsFail(t *testing.T) {
	rec := &execution.Recorder{Price: 100, FailOn: map[int]error{}}
	for i := 1; i <= 5; i++ {
		rec.FailOn[i] = &domain.ExchangeError{Code: -2019, Msg: "Margin is insufficient."}
	}
	g := &Grid{Gateway: rec, Mode: execution.ModeSimulated, Log: testLogger()}

	plan, err := g.Plan(context.Background(), GridParams{
		Symbol:     "ADAUSDT",
		Investment: 1000,
		RangePct:   10,
		Grids:      5,
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	report, err := g.Execute(context.Background(), plan)
	if !errors.Is(err, domain.ErrNoFills) {
		t.Fatalf("Execute() error = %v, want ErrNoFills", err)
	}
	if report.Placed != 0 || report.Failed != 5 {
		t.Errorf("placed %d failed %d, want 0 and 5", report.Placed, report.Failed)
	}
	for i, lvl := range plan.Levels {
		if lvl.Status != domain.GridStatusFailed {
			t.Errorf("level %d status = %s, want FAILED", i+1, lvl.Status)
		}
	}
}

func TestGrid_Execute_ContinuesPastFailures(t *testing.T) {
	rec := &execution.Recorder{
		Price:  100,
		FailOn: map[int]error{2: &domain.ExchangeError{Code: -2019, Msg: "Margin is insufficient."}},
	}
	g := &Grid{Gateway: rec, Mode: execution.ModeSimulated, Log: testLogger()}

	plan, err := g.Plan(context.Background(), GridParams{
		Symbol:     "ADAUSDT",
		Investment: 1000,
		RangePct:   10,
		Grids:      5,
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	report, err := g.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if report.Placed != 4 || report.Failed != 1 {
		t.Fatalf("placed %d failed %d, want 4 and 1", report.Placed, report.Failed)
	}
	if plan.Levels[1].Status != domain.GridStatusFailed {
		t.Errorf("level 2 status = %s, want FAILED", plan.Levels[1].Status)
	}
	if plan.Levels[0].Status != domain.OrderStatusNew {
		t.Errorf("level 1 status = %s, want NEW for a resting limit", plan.Levels[0].Status)
	}
	if plan.Levels[2].Status != domain.OrderStatusFilled {
		t.Errorf("level 3 status = %s, want FILLED for the market level", plan.Levels[2].Status)
	}
	if plan.Levels[2].OrderID == "" {
		t.Error("placed levels must record their order IDs")
	}
	if report.BuyQty != 2.1+2 {
		t.Errorf("buy quantity = %v, want 4.1", report.BuyQty)
	}
	if report.SellQty != 2+1.9 {
		t.Errorf("sell quantity = %v, want 3.9", report.SellQty)
	}
	// The four surviving submissions reached the gateway in level order.
	if len(rec.Orders) != 4 {
		t.Fatalf("gateway saw %d orders, want 4", len(rec.Orders))
	}
	if rec.Orders[1].Type != domain.OrderTypeMarket {
		t.Errorf("second surviving order = %s, want the MARKET level", rec.Orders[1].Type)
	}
}
