package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/format"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/journal"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/sentiment"
)

// extremeGreedThreshold flags grid plans that should be confirmed
// before execution.
const extremeGreedThreshold = 70

// GridParams describes one grid strategy.
type GridParams struct {
	Symbol       string
	Investment   float64 // total USDT split across the levels
	RangePct     float64 // full range as a percentage of the current price
	Grids        int
	UseSentiment bool
}

// Validate rejects parameters before any network call is made.
func (p GridParams) Validate() error {
	if p.Investment <= 0 {
		return fmt.Errorf("%w: investment must be positive", domain.ErrValidation)
	}
	if p.RangePct <= 0 || p.RangePct > 50 {
		return fmt.Errorf("%w: range must be between 0 and 50 percent, got %v", domain.ErrValidation, p.RangePct)
	}
	if p.Grids < 2 {
		return fmt.Errorf("%w: a grid needs at least 2 levels, got %d", domain.ErrValidation, p.Grids)
	}
	return nil
}

// GridPlan is the full set of levels before anything is submitted. The
// caller shows it and asks for confirmation; Execute places it.
type GridPlan struct {
	Params       GridParams
	CurrentPrice float64
	Upper        float64
	Lower        float64
	Step         float64
	PerGrid      float64
	Levels       []domain.GridLevel
	BuyLevels    int
	SellLevels   int

	// Worst-case moves to the grid edges, as percentages.
	MaxDownsidePct float64
	MaxUpsidePct   float64

	SentimentIndex int // -1 when the gate was not consulted
}

// ExtremeGreed reports whether the plan was built under an extreme
// greed reading and deserves an extra confirmation.
func (p *GridPlan) ExtremeGreed() bool {
	return p.SentimentIndex > extremeGreedThreshold
}

// GridReport summarizes an executed plan.
type GridReport struct {
	Plan    *GridPlan
	Placed  int
	Failed  int
	BuyQty  float64
	SellQty float64
}

// Grid builds and executes grid plans.
type Grid struct {
	Gateway   execution.Gateway
	Journal   *journal.Journal
	Sentiment *sentiment.Source
	Mode      execution.Mode
	Log       *slog.Logger
}

// Plan builds the levels around the current price without placing
// anything. Levels below the market become buy limits, levels above
// become sell limits and a level sitting on the market becomes an
// immediate market buy.
func (g *Grid) Plan(ctx context.Context, p GridParams) (*GridPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ok, err := g.Gateway.SymbolExists(ctx, p.Symbol)
	if err != nil {
		return nil, fmt.Errorf("validate symbol: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: invalid symbol %s", domain.ErrValidation, p.Symbol)
	}

	idx := -1
	if p.UseSentiment {
		idx = g.Sentiment.Index("")
	}

	currentPrice, err := g.Gateway.CurrentPrice(ctx, p.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current price: %w", err)
	}

	priceRange := currentPrice * p.RangePct / 100
	upper := currentPrice + priceRange/2
	lower := currentPrice - priceRange/2
	step := priceRange / float64(p.Grids-1)
	perGrid := p.Investment / float64(p.Grids)

	plan := &GridPlan{
		Params:         p,
		CurrentPrice:   currentPrice,
		Upper:          format.Price(upper, p.Symbol),
		Lower:          format.Price(lower, p.Symbol),
		Step:           step,
		PerGrid:        perGrid,
		MaxDownsidePct: (currentPrice - lower) / currentPrice * 100,
		MaxUpsidePct:   (upper - currentPrice) / currentPrice * 100,
		SentimentIndex: idx,
	}

	for i := 0; i < p.Grids; i++ {
		raw := lower + step*float64(i)
		price := format.Price(raw, p.Symbol)
		level := domain.GridLevel{
			Level:      i + 1,
			Price:      price,
			Quantity:   format.Quantity(perGrid/price, p.Symbol),
			Investment: perGrid,
			Status:     domain.GridStatusPending,
		}
		switch {
		case nearlyEqual(raw, currentPrice):
			level.Side = domain.SideBuy
			level.Type = domain.OrderTypeMarket
			plan.BuyLevels++
		case raw < currentPrice:
			level.Side = domain.SideBuy
			level.Type = domain.OrderTypeLimit
			plan.BuyLevels++
		default:
			level.Side = domain.SideSell
			level.Type = domain.OrderTypeLimit
			plan.SellLevels++
		}
		plan.Levels = append(plan.Levels, level)
	}
	return plan, nil
}

// Execute submits every level of the plan once. A failed level is
// marked and skipped; the report tallies both outcomes.
func (g *Grid) Execute(ctx context.Context, plan *GridPlan) (*GridReport, error) {
	report := &GridReport{Plan: plan}

	g.Log.Info("executing grid",
		slog.String("symbol", plan.Params.Symbol),
		slog.Int("levels", len(plan.Levels)),
		slog.Float64("investment", plan.Params.Investment))

	for i := range plan.Levels {
		level := &plan.Levels[i]
		if err := ctx.Err(); err != nil {
			return report, err
		}

		req := domain.OrderRequest{
			Symbol:   plan.Params.Symbol,
			Side:     level.Side,
			Type:     level.Type,
			Quantity: level.Quantity,
		}
		if level.Type == domain.OrderTypeLimit {
			req.Price = level.Price
			req.TimeInForce = domain.TimeInForceGTC
		}

		result, err := g.Gateway.CreateOrder(ctx, req)

		entry := journal.Entry{
			Timestamp: time.Now(),
			Symbol:    req.Symbol,
			Side:      req.Side,
			Type:      req.Type,
			Quantity:  req.Quantity,
			Price:     level.Price,
			Mode:      string(g.Mode),
		}
		if err != nil {
			level.Status = domain.GridStatusFailed
			report.Failed++
			entry.Status = domain.OrderStatusFailed
			g.appendJournal(ctx, entry)
			g.Log.Error("grid level failed",
				slog.Int("level", level.Level),
				slog.Float64("price", level.Price),
				slog.Any("error", err))
			continue
		}

		level.Status = result.Status
		level.OrderID = result.OrderID
		report.Placed++
		if level.Side == domain.SideBuy {
			report.BuyQty += level.Quantity
		} else {
			report.SellQty += level.Quantity
		}
		entry.OrderID = result.OrderID
		entry.Status = result.Status
		g.appendJournal(ctx, entry)
	}

	g.Log.Info("grid execution finished",
		slog.String("symbol", plan.Params.Symbol),
		slog.Int("placed", report.Placed),
		slog.Int("failed", report.Failed))

	if report.Placed == 0 {
		return report, fmt.Errorf("%w: all %d grid levels failed", domain.ErrNoFills, len(plan.Levels))
	}
	return report, nil
}

func (g *Grid) appendJournal(ctx context.Context, e journal.Entry) {
	if g.Journal == nil {
		return
	}
	if err := g.Journal.Append(ctx, e); err != nil {
		g.Log.Warn("failed to journal grid order", slog.Any("error", err))
	}
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= math.Abs(b)*1e-9
}
