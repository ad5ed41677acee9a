// Package marketdata serves last-known close prices from a static
// historical dataset. It backs the simulated gateway when no live
// credentials are configured.
package marketdata

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

// Candle is one historical row for a symbol.
type Candle struct {
	Timestamp time.Time
	Close     float64
}

// Fallback prices for common symbols when the dataset has no rows.
var defaultPrices = map[string]float64{
	"BTCUSDT": 45000.0,
	"ETHUSDT": 2500.0,
	"ADAUSDT": 0.5,
	"DOTUSDT": 7.0,
}

// DefaultPrice returns the hard-coded fallback price for a symbol.
func DefaultPrice(symbol string) float64 {
	if p, ok := defaultPrices[symbol]; ok {
		return p
	}
	return 100.0
}

// KnownSymbol reports whether a symbol has a hard-coded default.
func KnownSymbol(symbol string) bool {
	_, ok := defaultPrices[symbol]
	return ok
}

// History holds per-symbol candles in file order plus a forward cursor,
// so repeated price lookups walk the dataset deterministically.
type History struct {
	mu       sync.Mutex
	bySymbol map[string][]Candle
	cursor   map[string]int
	log      *slog.Logger
}

// Load reads the historical dataset (CSV: symbol,timestamp,close).
// A missing or unreadable file yields an empty history: simulated price
// lookups then fall back to the per-symbol defaults.
func Load(path string, log *slog.Logger) *History {
	h := &History{
		bySymbol: make(map[string][]Candle),
		cursor:   make(map[string]int),
		log:      log,
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("historical dataset unavailable, using default prices",
			slog.String("path", path), slog.Any("error", err))
		return h
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) < 2 {
		log.Warn("historical dataset unreadable, using default prices",
			slog.String("path", path), slog.Any("error", err))
		return h
	}

	symCol, tsCol, closeCol := -1, -1, -1
	for i, name := range records[0] {
		switch name {
		case "symbol":
			symCol = i
		case "timestamp":
			tsCol = i
		case "close":
			closeCol = i
		}
	}
	if symCol < 0 || closeCol < 0 {
		log.Warn("historical dataset missing expected columns", slog.Any("header", records[0]))
		return h
	}

	for _, row := range records[1:] {
		if len(row) <= symCol || len(row) <= closeCol {
			continue
		}
		price, err := strconv.ParseFloat(row[closeCol], 64)
		if err != nil {
			continue
		}
		c := Candle{Close: price}
		if tsCol >= 0 && len(row) > tsCol {
			if ts, err := time.Parse("2006-01-02 15:04:05", row[tsCol]); err == nil {
				c.Timestamp = ts
			}
		}
		sym := row[symCol]
		h.bySymbol[sym] = append(h.bySymbol[sym], c)
	}

	log.Info("historical dataset loaded",
		slog.String("path", path), slog.Int("symbols", len(h.bySymbol)))
	return h
}

// HasSymbol reports whether the dataset carries rows for a symbol.
func (h *History) HasSymbol(symbol string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.bySymbol[symbol]) > 0
}

// LastClose returns the most recent close for a symbol.
func (h *History) LastClose(symbol string) (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows := h.bySymbol[symbol]
	if len(rows) == 0 {
		return 0, false
	}
	return rows[len(rows)-1].Close, true
}

// NextClose returns the close at the symbol's cursor and advances it,
// clamping at the final row. Successive calls walk the dataset forward,
// which gives TWAP slices distinct but deterministic prices.
func (h *History) NextClose(symbol string) (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows := h.bySymbol[symbol]
	if len(rows) == 0 {
		return 0, false
	}
	i := h.cursor[symbol]
	if i >= len(rows) {
		i = len(rows) - 1
	} else {
		h.cursor[symbol] = i + 1
	}
	return rows[i].Close, true
}
