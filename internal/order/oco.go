package order

import (
	"context"
	"fmt"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/format"
)

// OCOReceipt summarizes the pair. The two legs are independent orders,
// not an atomic list: a failed stop leg does not cancel the placed
// take-profit leg.
type OCOReceipt struct {
	ListID         string
	TakeProfit     domain.OrderResult
	StopLoss       domain.OrderResult
	Status         string
	CurrentPrice   float64
	ProfitPct      float64
	LossPct        float64
	RiskReward     float64
	SentimentIndex int
	Warnings       []string
}

// OCO places a take-profit limit order and a stop-loss stop-limit order
// as an OCO-style pair.
//
// For SELL the take-profit must sit above the market and the stop below
// it; for BUY the checks mirror.
func (p *Placer) OCO(ctx context.Context, symbol, side string, quantity, price, stopPrice, stopLimitPrice float64, useSentiment bool) (*OCOReceipt, error) {
	if err := p.validateCommon(ctx, symbol, side, quantity); err != nil {
		return nil, err
	}
	if price <= 0 || stopPrice <= 0 || stopLimitPrice <= 0 {
		return nil, fmt.Errorf("%w: all prices must be positive", domain.ErrValidation)
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
	if side == domain.SideSell {
		if price <= currentPrice {
			return nil, fmt.Errorf("%w: take-profit price ($%.2f) must be above current price ($%.2f) for SELL", domain.ErrValidation, price, currentPrice)
		}
		if stopPrice >= currentPrice {
			return nil, fmt.Errorf("%w: stop price ($%.2f) must be below current price ($%.2f) for SELL", domain.ErrValidation, stopPrice, currentPrice)
		}
		if stopLimitPrice > stopPrice {
			warnings = append(warnings, fmt.Sprintf("stop-limit price ($%.2f) is above stop price", stopLimitPrice))
		}
	} else {
		if price >= currentPrice {
			return nil, fmt.Errorf("%w: take-profit price ($%.2f) must be below current price ($%.2f) for BUY", domain.ErrValidation, price, currentPrice)
		}
		if stopPrice <= currentPrice {
			return nil, fmt.Errorf("%w: stop price ($%.2f) must be above current price ($%.2f) for BUY", domain.ErrValidation, stopPrice, currentPrice)
		}
		if stopLimitPrice < stopPrice {
			warnings = append(warnings, fmt.Sprintf("stop-limit price ($%.2f) is below stop price", stopLimitPrice))
		}
	}

	quantity = formatPair(symbol, quantity, &price, &stopPrice, &stopLimitPrice)

	// Leg 1: take-profit limit order.
	takeProfit, err := p.submit(ctx, domain.OrderRequest{
		Symbol:      symbol,
		Side:        side,
		Type:        domain.OrderTypeLimit,
		Quantity:    quantity,
		Price:       price,
		TimeInForce: domain.TimeInForceGTC,
	}, price)
	if err != nil {
		return nil, fmt.Errorf("take-profit leg: %w", err)
	}

	// Leg 2: stop-loss stop-limit order. If this fails the take-profit
	// leg stays on the book; there is no rollback.
	stopLoss, err := p.submit(ctx, domain.OrderRequest{
		Symbol:      symbol,
		Side:        side,
		Type:        domain.OrderTypeStopLimit,
		Quantity:    quantity,
		Price:       stopLimitPrice,
		StopPrice:   stopPrice,
		TimeInForce: domain.TimeInForceGTC,
	}, stopLimitPrice)
	if err != nil {
		return nil, fmt.Errorf("stop-loss leg failed after take-profit order %s was placed: %w", takeProfit.OrderID, err)
	}

	var profitPct, lossPct float64
	if side == domain.SideSell {
		profitPct = (price - currentPrice) / currentPrice * 100
		lossPct = (stopLimitPrice - currentPrice) / currentPrice * 100
	} else {
		profitPct = (currentPrice - price) / currentPrice * 100
		lossPct = (currentPrice - stopLimitPrice) / currentPrice * 100
	}

	receipt := &OCOReceipt{
		ListID:         fmt.Sprintf("OCO_%s_%s", takeProfit.OrderID, stopLoss.OrderID),
		TakeProfit:     takeProfit,
		StopLoss:       stopLoss,
		Status:         domain.OrderStatusExecuting,
		CurrentPrice:   currentPrice,
		ProfitPct:      profitPct,
		LossPct:        lossPct,
		SentimentIndex: idx,
		Warnings:       warnings,
	}
	if lossPct != 0 {
		rr := profitPct / lossPct
		if rr < 0 {
			rr = -rr
		}
		receipt.RiskReward = rr
	}
	return receipt, nil
}

// formatPair rounds the shared quantity and each price in place.
func formatPair(symbol string, quantity float64, prices ...*float64) float64 {
	for _, p := range prices {
		*p = format.Price(*p, symbol)
	}
	return format.Quantity(quantity, symbol)
}
