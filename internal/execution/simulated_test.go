package execution

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/marketdata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyHistory(t *testing.T) *marketdata.History {
	t.Helper()
	return marketdata.Load(filepath.Join(t.TempDir(), "absent.csv"), testLogger())
}

func historyWith(t *testing.T, csv string) *marketdata.History {
	t.Helper()
	path := filepath.Join(t.TempDir(), "historical_prices.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	return marketdata.Load(path, testLogger())
}

func TestSimulated_CurrentPrice_DefaultFallback(t *testing.T) {
	sim := NewSimulated(emptyHistory(t), testLogger())

	price, err := sim.CurrentPrice(context.Background(), "BTCUSDT")
	if err != nil || price != 45000.0 {
		t.Errorf("CurrentPrice(BTCUSDT) = %v, %v; want 45000, nil", price, err)
	}
	price, _ = sim.CurrentPrice(context.Background(), "XRPUSDT")
	if price != 100.0 {
		t.Errorf("CurrentPrice(XRPUSDT) = %v, want 100 fallback", price)
	}
}

func TestSimulated_CurrentPrice_ServesLastClose(t *testing.T) {
	sim := NewSimulated(historyWith(t, "symbol,timestamp,close\nBTCUSDT,2024-01-01 00:00:00,44900\nBTCUSDT,2024-01-01 01:00:00,45100\nBTCUSDT,2024-01-01 02:00:00,45300\n"), testLogger())
	ctx := context.Background()

	// Single-shot lookups always quote the newest row, never the oldest.
	for i := 0; i < 3; i++ {
		price, err := sim.CurrentPrice(ctx, "BTCUSDT")
		if err != nil || price != 45300 {
			t.Errorf("CurrentPrice() call %d = %v, %v; want 45300, nil", i+1, price, err)
		}
	}
}

func TestSimulated_StepPrice_WalksForward(t *testing.T) {
	sim := NewSimulated(historyWith(t, "symbol,timestamp,close\nBTCUSDT,2024-01-01 00:00:00,44900\nBTCUSDT,2024-01-01 01:00:00,45100\n"), testLogger())
	ctx := context.Background()

	want := []float64{44900, 45100, 45100} // clamps at the final row
	for i, w := range want {
		price, err := sim.StepPrice(ctx, "BTCUSDT")
		if err != nil || price != w {
			t.Errorf("StepPrice() call %d = %v, %v; want %v, nil", i+1, price, err, w)
		}
	}

	// Stepping does not disturb the single-shot quote.
	if price, _ := sim.CurrentPrice(ctx, "BTCUSDT"); price != 45100 {
		t.Errorf("CurrentPrice() after stepping = %v, want 45100", price)
	}
}

func TestSimulated_StepPrice_DefaultFallback(t *testing.T) {
	sim := NewSimulated(emptyHistory(t), testLogger())

	price, err := sim.StepPrice(context.Background(), "ETHUSDT")
	if err != nil || price != 2500.0 {
		t.Errorf("StepPrice(ETHUSDT) = %v, %v; want 2500, nil", price, err)
	}
}

func TestSimulated_CreateOrder_MarketFillsAtObservedPrice(t *testing.T) {
	sim := NewSimulated(historyWith(t, "symbol,timestamp,close\nBTCUSDT,2024-01-01 00:00:00,44900\nBTCUSDT,2024-01-01 01:00:00,45100\n"), testLogger())
	ctx := context.Background()

	observed, _ := sim.CurrentPrice(ctx, "BTCUSDT")
	result, err := sim.CreateOrder(ctx, domain.OrderRequest{
		Symbol: "BTCUSDT", Side: domain.SideBuy, Type: domain.OrderTypeMarket, Quantity: 0.002,
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if result.Status != domain.OrderStatusFilled {
		t.Errorf("market order status = %s, want FILLED", result.Status)
	}
	if result.Price != observed {
		t.Errorf("fill price = %v, want observed price %v", result.Price, observed)
	}
	if result.ExecutedQty != 0.002 {
		t.Errorf("executed qty = %v, want 0.002", result.ExecutedQty)
	}
	if result.OrderID != "SIM_MARKET_BTCUSDT_BUY_0.002" {
		t.Errorf("simulated id = %s, want deterministic SIM id", result.OrderID)
	}
}

func TestSimulated_CreateOrder_RestingStaysNew(t *testing.T) {
	sim := NewSimulated(emptyHistory(t), testLogger())

	result, err := sim.CreateOrder(context.Background(), domain.OrderRequest{
		Symbol: "ETHUSDT", Side: domain.SideSell, Type: domain.OrderTypeLimit, Quantity: 1.5, Price: 2600,
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if result.Status != domain.OrderStatusNew {
		t.Errorf("limit order status = %s, want NEW", result.Status)
	}
	if result.ExecutedQty != 0 {
		t.Errorf("resting order executed qty = %v, want 0", result.ExecutedQty)
	}
	if result.Price != 2600 {
		t.Errorf("resting order price = %v, want the limit price", result.Price)
	}
}

func TestSimulated_CreateOrder_Deterministic(t *testing.T) {
	sim := NewSimulated(emptyHistory(t), testLogger())
	req := domain.OrderRequest{Symbol: "BTCUSDT", Side: domain.SideBuy, Type: domain.OrderTypeLimit, Quantity: 1, Price: 44000}

	a, _ := sim.CreateOrder(context.Background(), req)
	b, _ := sim.CreateOrder(context.Background(), req)
	if a.OrderID != b.OrderID {
		t.Errorf("simulated ids differ for identical requests: %s vs %s", a.OrderID, b.OrderID)
	}
}

func TestSimulated_SymbolExists(t *testing.T) {
	sim := NewSimulated(historyWith(t, "symbol,timestamp,close\nSOLUSDT,2024-01-01 00:00:00,98.5\n"), testLogger())
	ctx := context.Background()

	for symbol, want := range map[string]bool{
		"BTCUSDT": true,  // default whitelist
		"SOLUSDT": true,  // present in dataset
		"NOUSDT":  false, // neither
	} {
		if got, _ := sim.SymbolExists(ctx, symbol); got != want {
			t.Errorf("SymbolExists(%s) = %v, want %v", symbol, got, want)
		}
	}
}
