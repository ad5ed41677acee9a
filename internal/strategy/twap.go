// Package strategy holds the multi-order planners: the TWAP slicer and
// the grid builder. Both keep going when a single submission fails; a
// failed slice or level is recorded, never retried.
package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/format"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/journal"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/sentiment"
)

// simulatedPause replaces the real slice interval when no exchange is
// on the other end.
const simulatedPause = 100 * time.Millisecond

// priceStepper is implemented by gateways that can walk historical
// prices forward. The TWAP loop prefers it so each slice observes the
// next row instead of re-quoting the same close; live gateways just
// hit the ticker every time.
type priceStepper interface {
	StepPrice(ctx context.Context, symbol string) (float64, error)
}

// TwapParams describes one TWAP execution.
type TwapParams struct {
	Symbol        string
	Side          string
	TotalQuantity float64
	Duration      time.Duration
	NumOrders     int
	UseSentiment  bool
}

// Validate rejects parameters before any network call is made.
func (p TwapParams) Validate() error {
	if !domain.ValidSide(p.Side) {
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", domain.ErrValidation, p.Side)
	}
	if p.TotalQuantity <= 0 {
		return fmt.Errorf("%w: total quantity must be positive", domain.ErrValidation)
	}
	if p.NumOrders < 1 {
		return fmt.Errorf("%w: number of orders must be positive, got %d", domain.ErrValidation, p.NumOrders)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	return nil
}

// QuantityPerOrder is the per-slice quantity after symbol rounding.
func (p TwapParams) QuantityPerOrder() float64 {
	return format.Quantity(p.TotalQuantity/float64(p.NumOrders), p.Symbol)
}

// Interval is the wall-clock gap between slices.
func (p TwapParams) Interval() time.Duration {
	return p.Duration / time.Duration(p.NumOrders)
}

// TwapReport summarizes a finished run. Slices holds the executed
// fills only; failed attempts count toward Failed.
type TwapReport struct {
	Params         TwapParams
	Slices         []domain.TwapSlice
	Failed         int
	ExecutedQty    float64
	TotalCost      float64
	AveragePrice   float64
	CompletionRate float64 // percentage of TotalQuantity filled
	PriceMin       float64
	PriceMax       float64
	PriceStdDev    float64
	SentimentIndex int
}

// TwapProgress is called after every slice attempt. err is nil for a
// fill and carries the submission error otherwise.
type TwapProgress func(index, total int, slice domain.TwapSlice, err error)

// Twap executes market orders in equal slices spread over a duration.
type Twap struct {
	Gateway   execution.Gateway
	Journal   *journal.Journal
	Sentiment *sentiment.Source
	Mode      execution.Mode
	Log       *slog.Logger

	// Sleep defaults to time.Sleep; tests inject their own.
	Sleep    func(time.Duration)
	Progress TwapProgress
}

// Run places the slices one by one. A slice that fails is logged and
// skipped; the run only errors out when nothing at all was filled.
func (t *Twap) Run(ctx context.Context, p TwapParams) (*TwapReport, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ok, err := t.Gateway.SymbolExists(ctx, p.Symbol)
	if err != nil {
		return nil, fmt.Errorf("validate symbol: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: invalid symbol %s", domain.ErrValidation, p.Symbol)
	}

	idx := -1
	if p.UseSentiment {
		idx = t.Sentiment.Index("")
		if !sentiment.ShouldTrade(p.Side, idx) {
			return nil, fmt.Errorf("%w: fear & greed index is %d (%s)", domain.ErrSentimentBlocked, idx, sentiment.Label(idx))
		}
	}

	sliceQty := p.QuantityPerOrder()
	interval := p.Interval()
	pause := interval
	if t.Mode == execution.ModeSimulated {
		pause = simulatedPause
	}
	sleep := t.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	t.Log.Info("starting TWAP execution",
		slog.String("symbol", p.Symbol),
		slog.String("side", p.Side),
		slog.Float64("total_quantity", p.TotalQuantity),
		slog.Int("num_orders", p.NumOrders),
		slog.Duration("interval", interval))

	report := &TwapReport{Params: p, SentimentIndex: idx}
	for i := 1; i <= p.NumOrders; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		slice, err := t.placeSlice(ctx, p, i, sliceQty)
		if err != nil {
			report.Failed++
			t.Log.Error("TWAP slice failed",
				slog.Int("slice", i),
				slog.Int("total", p.NumOrders),
				slog.Any("error", err))
		} else {
			report.Slices = append(report.Slices, slice)
			report.ExecutedQty += slice.Quantity
			report.TotalCost += slice.Cost
		}
		if t.Progress != nil {
			t.Progress(i, p.NumOrders, slice, err)
		}

		if i < p.NumOrders {
			sleep(pause)
		}
	}

	if len(report.Slices) == 0 {
		return report, fmt.Errorf("%w: all %d TWAP slices failed", domain.ErrNoFills, p.NumOrders)
	}

	report.CompletionRate = report.ExecutedQty / p.TotalQuantity * 100
	if report.ExecutedQty > 0 {
		report.AveragePrice = report.TotalCost / report.ExecutedQty
	}
	prices := make([]float64, len(report.Slices))
	for i, s := range report.Slices {
		prices[i] = s.Price
	}
	report.PriceMin, report.PriceMax = minMax(prices)
	report.PriceStdDev = stdDev(prices)

	t.Log.Info("TWAP execution finished",
		slog.String("symbol", p.Symbol),
		slog.Int("executed", len(report.Slices)),
		slog.Int("failed", report.Failed),
		slog.Float64("completion_pct", report.CompletionRate))
	return report, nil
}

// placeSlice observes the price, submits one market order and journals
// the attempt either way.
func (t *Twap) placeSlice(ctx context.Context, p TwapParams, index int, qty float64) (domain.TwapSlice, error) {
	price, err := t.observePrice(ctx, p.Symbol)
	if err != nil {
		return domain.TwapSlice{Index: index}, fmt.Errorf("fetch price: %w", err)
	}

	req := domain.OrderRequest{
		Symbol:   p.Symbol,
		Side:     p.Side,
		Type:     domain.OrderTypeMarket,
		Quantity: qty,
	}
	result, err := t.Gateway.CreateOrder(ctx, req)

	entry := journal.Entry{
		Timestamp: time.Now(),
		Symbol:    p.Symbol,
		Side:      p.Side,
		Type:      domain.OrderTypeMarket,
		Quantity:  qty,
		Price:     price,
		Mode:      string(t.Mode),
	}
	if err != nil {
		entry.Status = domain.OrderStatusFailed
		t.appendJournal(ctx, entry)
		return domain.TwapSlice{Index: index}, err
	}

	fillPrice := result.Price
	if fillPrice <= 0 {
		fillPrice = price
	}
	entry.OrderID = result.OrderID
	entry.Status = result.Status
	entry.Price = fillPrice
	t.appendJournal(ctx, entry)

	return domain.TwapSlice{
		Index:    index,
		Time:     time.Now(),
		Price:    fillPrice,
		Quantity: qty,
		Cost:     qty * fillPrice,
	}, nil
}

func (t *Twap) observePrice(ctx context.Context, symbol string) (float64, error) {
	if stepper, ok := t.Gateway.(priceStepper); ok {
		return stepper.StepPrice(ctx, symbol)
	}
	return t.Gateway.CurrentPrice(ctx, symbol)
}

func (t *Twap) appendJournal(ctx context.Context, e journal.Entry) {
	if t.Journal == nil {
		return
	}
	if err := t.Journal.Append(ctx, e); err != nil {
		t.Log.Warn("failed to journal TWAP slice", slog.Any("error", err))
	}
}
