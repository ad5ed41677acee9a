// Package order implements the single-shot placers: market, limit,
// stop-limit and the OCO-style pair. Each is a linear
// validate → gate → check → submit → journal sequence with no retries.
package order

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

// Placer wires the collaborators a single-shot order needs.
type Placer struct {
	Gateway   execution.Gateway
	Journal   *journal.Journal
	Sentiment *sentiment.Source
	Mode      execution.Mode
	Log       *slog.Logger
}

// Receipt carries the submitted order plus the numbers the console
// summary displays.
type Receipt struct {
	Order          domain.OrderResult
	CurrentPrice   float64
	TotalValue     float64
	SentimentIndex int // -1 when the gate was not consulted
	Warnings       []string
}

// LimitReceipt extends Receipt with limit-specific analytics.
type LimitReceipt struct {
	Receipt
	PriceDiff            float64
	PriceDiffPct         float64
	ExecutionProbability string // "High", "Medium", "Low"
}

// StopLimitReceipt extends Receipt with stop-limit analytics.
type StopLimitReceipt struct {
	Receipt
	StopPrice    float64
	StopDiffPct  float64
	LimitDiffPct float64
	RiskLevel    string // "Low", "Medium", "High"
}

// Market places one market order.
func (p *Placer) Market(ctx context.Context, symbol, side string, quantity float64, useSentiment bool) (*Receipt, error) {
	if err := p.validateCommon(ctx, symbol, side, quantity); err != nil {
		return nil, err
	}
	idx, err := p.gate(side, useSentiment)
	if err != nil {
		return nil, err
	}

	currentPrice, err := p.Gateway.CurrentPrice(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current price: %w", err)
	}

	quantity = format.Quantity(quantity, symbol)
	result, err := p.submit(ctx, domain.OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     domain.OrderTypeMarket,
		Quantity: quantity,
	}, currentPrice)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		Order:          result,
		CurrentPrice:   currentPrice,
		TotalValue:     quantity * currentPrice,
		SentimentIndex: idx,
	}, nil
}

// Limit places one limit order, warning when the price would cross the
// market and fill immediately.
func (p *Placer) Limit(ctx context.Context, symbol, side string, quantity, price float64, useSentiment bool) (*LimitReceipt, error) {
	if err := p.validateCommon(ctx, symbol, side, quantity); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	idx, err := p.gate(side, useSentiment)
	if err != nil {
		return nil, err
	}

	currentPrice, err := p.Gateway.CurrentPrice(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current price: %w", err)
	}

	var warnings []string
	if side == domain.SideBuy && price >= currentPrice {
		warnings = append(warnings, fmt.Sprintf("buy limit price ($%.2f) is at or above market price and will execute immediately", price))
	} else if side == domain.SideSell && price <= currentPrice {
		warnings = append(warnings, fmt.Sprintf("sell limit price ($%.2f) is at or below market price and will execute immediately", price))
	}

	quantity = format.Quantity(quantity, symbol)
	price = format.Price(price, symbol)

	result, err := p.submit(ctx, domain.OrderRequest{
		Symbol:      symbol,
		Side:        side,
		Type:        domain.OrderTypeLimit,
		Quantity:    quantity,
		Price:       price,
		TimeInForce: domain.TimeInForceGTC,
	}, price)
	if err != nil {
		return nil, err
	}

	diff := price - currentPrice
	return &LimitReceipt{
		Receipt: Receipt{
			Order:          result,
			CurrentPrice:   currentPrice,
			TotalValue:     quantity * price,
			SentimentIndex: idx,
			Warnings:       warnings,
		},
		PriceDiff:            diff,
		PriceDiffPct:         diff / currentPrice * 100,
		ExecutionProbability: limitExecutionProbability(side, price, currentPrice),
	}, nil
}

// StopLimit places one stop-limit order. The stop must sit on the
// trigger side of the market: above current for BUY, below for SELL.
func (p *Placer) StopLimit(ctx context.Context, symbol, side string, quantity, stopPrice, limitPrice float64, useSentiment bool) (*StopLimitReceipt, error) {
	if err := p.validateCommon(ctx, symbol, side, quantity); err != nil {
		return nil, err
	}
	if stopPrice <= 0 || limitPrice <= 0 {
		return nil, fmt.Errorf("%w: stop price and limit price must be positive", domain.ErrValidation)
	}
	idx, err := p.gate(side, useSentiment)
	if err != nil {
		return nil, err
	}

	currentPrice, err := p.Gateway.CurrentPrice(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current price: %w", err)
	}

	var warnings []string
	if side == domain.SideBuy {
		if stopPrice <= currentPrice {
			return nil, fmt.Errorf("%w: buy stop price ($%.2f) must be above current price ($%.2f)", domain.ErrValidation, stopPrice, currentPrice)
		}
		if limitPrice < stopPrice {
			warnings = append(warnings, fmt.Sprintf("limit price ($%.2f) is below stop price; the order may execute immediately or not at all", limitPrice))
		}
	} else {
		if stopPrice >= currentPrice {
			return nil, fmt.Errorf("%w: sell stop price ($%.2f) must be below current price ($%.2f)", domain.ErrValidation, stopPrice, currentPrice)
		}
		if limitPrice > stopPrice {
			warnings = append(warnings, fmt.Sprintf("limit price ($%.2f) is above stop price; the order may execute immediately or not at all", limitPrice))
		}
	}

	quantity = format.Quantity(quantity, symbol)
	stopPrice = format.Price(stopPrice, symbol)
	limitPrice = format.Price(limitPrice, symbol)

	result, err := p.submit(ctx, domain.OrderRequest{
		Symbol:      symbol,
		Side:        side,
		Type:        domain.OrderTypeStopLimit,
		Quantity:    quantity,
		Price:       limitPrice,
		StopPrice:   stopPrice,
		TimeInForce: domain.TimeInForceGTC,
	}, limitPrice)
	if err != nil {
		return nil, err
	}

	stopDiffPct := (stopPrice - currentPrice) / currentPrice * 100
	return &StopLimitReceipt{
		Receipt: Receipt{
			Order:          result,
			CurrentPrice:   currentPrice,
			TotalValue:     quantity * limitPrice,
			SentimentIndex: idx,
			Warnings:       warnings,
		},
		StopPrice:    stopPrice,
		StopDiffPct:  stopDiffPct,
		LimitDiffPct: (limitPrice - currentPrice) / currentPrice * 100,
		RiskLevel:    stopRiskLevel(stopDiffPct),
	}, nil
}

// validateCommon runs the checks every placer shares. Symbol existence
// goes through the gateway (exchange metadata, or the simulated
// whitelist), so it happens before anything is submitted.
func (p *Placer) validateCommon(ctx context.Context, symbol, side string, quantity float64) error {
	if !domain.ValidSide(side) {
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", domain.ErrValidation, side)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	ok, err := p.Gateway.SymbolExists(ctx, symbol)
	if err != nil {
		return fmt.Errorf("validate symbol: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: invalid symbol %s", domain.ErrValidation, symbol)
	}
	return nil
}

// gate consults the fear & greed index when asked. Returns the index
// used, or -1 when the gate was skipped.
func (p *Placer) gate(side string, useSentiment bool) (int, error) {
	if !useSentiment {
		return -1, nil
	}
	idx := p.Sentiment.Index("")
	if !sentiment.ShouldTrade(side, idx) {
		return idx, fmt.Errorf("%w: fear & greed index is %d (%s)", domain.ErrSentimentBlocked, idx, sentiment.Label(idx))
	}
	return idx, nil
}

// submit performs the single submission attempt and journals it either
// way. journalPrice is what the log records for the attempt (the
// observed market price for market orders, the limit price otherwise).
func (p *Placer) submit(ctx context.Context, req domain.OrderRequest, journalPrice float64) (domain.OrderResult, error) {
	result, err := p.Gateway.CreateOrder(ctx, req)

	entry := journal.Entry{
		Timestamp: time.Now(),
		Symbol:    req.Symbol,
		Side:      req.Side,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Price:     journalPrice,
		Mode:      string(p.Mode),
	}
	if err != nil {
		entry.Status = domain.OrderStatusFailed
		p.appendJournal(ctx, entry)
		p.Log.Error("order submission failed",
			slog.String("symbol", req.Symbol),
			slog.String("type", req.Type),
			slog.Any("error", err))
		return domain.OrderResult{}, err
	}

	entry.OrderID = result.OrderID
	entry.Status = result.Status
	if result.Price > 0 {
		entry.Price = result.Price
	}
	p.appendJournal(ctx, entry)
	return result, nil
}

// appendJournal never fails the trade; a broken journal is logged and
// ignored.
func (p *Placer) appendJournal(ctx context.Context, e journal.Entry) {
	if p.Journal == nil {
		return
	}
	if err := p.Journal.Append(ctx, e); err != nil {
		p.Log.Warn("failed to journal order", slog.Any("error", err))
	}
}

func limitExecutionProbability(side string, price, currentPrice float64) string {
	if side == domain.SideBuy {
		switch {
		case price < currentPrice*0.95:
			return "High"
		case price < currentPrice*0.98:
			return "Medium"
		default:
			return "Low"
		}
	}
	switch {
	case price > currentPrice*1.05:
		return "High"
	case price > currentPrice*1.02:
		return "Medium"
	default:
		return "Low"
	}
}

func stopRiskLevel(stopDiffPct float64) string {
	risk := stopDiffPct
	if risk < 0 {
		risk = -risk
	}
	switch {
	case risk < 2:
		return "Low"
	case risk < 5:
		return "Medium"
	default:
		return "High"
	}
}
