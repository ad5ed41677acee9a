package domain

import "fmt"

// Sides, order types and statuses as the exchange spells them.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeMarket    = "MARKET"
	OrderTypeLimit     = "LIMIT"
	OrderTypeStop      = "STOP"
	OrderTypeStopLimit = "STOP_LIMIT"

	OrderStatusNew       = "NEW"
	OrderStatusFilled    = "FILLED"
	OrderStatusExecuting = "EXECUTING"
	OrderStatusCanceled  = "CANCELED"
	// OrderStatusFailed is assigned locally when a submission attempt
	// errors; it never comes from the exchange.
	OrderStatusFailed = "FAILED"

	TimeInForceGTC = "GTC"
)

// OrderRequest describes a single order submission.
// Quantity and prices carry exchange units and must be formatted to the
// symbol's precision before submission.
type OrderRequest struct {
	Symbol        string
	Side          string // "BUY", "SELL"
	Type          string // "MARKET", "LIMIT", "STOP", "STOP_LIMIT"
	Quantity      float64
	Price         float64 // 0 for MARKET
	StopPrice     float64 // trigger price for STOP / STOP_LIMIT
	TimeInForce   string  // "GTC" for resting types
	ClientOrderID string  // optional; live gateway fills one in if empty
}

// Validate rejects structurally invalid requests before any exchange call.
func (r OrderRequest) Validate() error {
	if r.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrValidation)
	}
	if !ValidSide(r.Side) {
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", ErrValidation, r.Side)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	switch r.Type {
	case OrderTypeMarket:
	case OrderTypeLimit:
		if r.Price <= 0 {
			return fmt.Errorf("%w: limit price must be positive", ErrValidation)
		}
	case OrderTypeStop, OrderTypeStopLimit:
		if r.Price <= 0 || r.StopPrice <= 0 {
			return fmt.Errorf("%w: stop and limit prices must be positive", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown order type %q", ErrValidation, r.Type)
	}
	return nil
}

// Resting reports whether the request rests on the book instead of
// filling immediately.
func (r OrderRequest) Resting() bool {
	return r.Type != OrderTypeMarket
}

// OrderResult is the outcome of an order submission as reported by the
// gateway (live or simulated).
type OrderResult struct {
	OrderID     string
	Symbol      string
	Side        string
	Type        string
	OrigQty     float64
	ExecutedQty float64
	Price       float64 // 0 when the exchange reported none
	Status      string
}

// ValidSide reports whether s is a recognized order side.
func ValidSide(s string) bool {
	return s == SideBuy || s == SideSell
}
