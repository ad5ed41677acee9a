package domain

// Grid level statuses. PENDING levels have not been submitted yet;
// submitted levels carry the exchange-reported status or FAILED.
const (
	GridStatusPending = "PENDING"
	GridStatusFailed  = OrderStatusFailed
)

// GridLevel is one rung of a grid ladder, derived deterministically from
// (currentPrice, rangePct, totalInvestment, numGrids). Levels below the
// current price buy, levels above sell, a level exactly at the current
// price buys at market.
type GridLevel struct {
	Level      int // 1..N
	Price      float64
	Quantity   float64
	Side       string
	Type       string
	Investment float64
	Status     string
	OrderID    string
}
