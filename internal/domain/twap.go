package domain

import "time"

// TwapSlice records one executed child order of a TWAP run.
type TwapSlice struct {
	Index    int // 1..N
	Time     time.Time
	Price    float64 // price observed at execution
	Quantity float64 // executed quantity
	Cost     float64 // Quantity * Price
}
