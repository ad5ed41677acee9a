// Package sentiment gates trade direction on the fear & greed index.
// The index comes from a static CSV dataset; a missing file or row never
// blocks a trade, it just degrades to the neutral default.
package sentiment

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
)

// Neutral is used whenever the dataset cannot be read.
const Neutral = 50

// ShouldTrade applies the directional gate: buy into fear, sell into greed.
func ShouldTrade(side string, index int) bool {
	switch side {
	case domain.SideBuy:
		return index < 40
	case domain.SideSell:
		return index > 60
	default:
		return true
	}
}

// Label names the index band for console output.
func Label(index int) string {
	switch {
	case index < 25:
		return "Extreme Fear"
	case index < 45:
		return "Fear"
	case index <= 55:
		return "Neutral"
	case index <= 75:
		return "Greed"
	default:
		return "Extreme Greed"
	}
}

// Source reads the fear & greed dataset (CSV: date,fear_greed_index).
type Source struct {
	path string
	log  *slog.Logger
}

// NewSource creates a source over the given CSV path.
func NewSource(path string, log *slog.Logger) *Source {
	return &Source{path: path, log: log}
}

// Index returns the index for the given date (YYYY-MM-DD), or the latest
// row when date is empty or absent. Any read error yields Neutral.
func (s *Source) Index(date string) int {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.Warn("fear & greed dataset unavailable, using neutral default",
			slog.String("path", s.path), slog.Any("error", err))
		return Neutral
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) < 2 {
		s.log.Warn("fear & greed dataset unreadable, using neutral default",
			slog.String("path", s.path), slog.Any("error", err))
		return Neutral
	}

	header := records[0]
	dateCol, idxCol := columnIndexes(header)
	if dateCol < 0 || idxCol < 0 {
		s.log.Warn("fear & greed dataset missing expected columns", slog.Any("header", header))
		return Neutral
	}

	latest := Neutral
	for _, row := range records[1:] {
		if len(row) <= dateCol || len(row) <= idxCol {
			continue
		}
		v, err := strconv.Atoi(row[idxCol])
		if err != nil {
			continue
		}
		if date != "" && row[dateCol] == date {
			return v
		}
		latest = v
	}
	return latest
}

func columnIndexes(header []string) (dateCol, idxCol int) {
	dateCol, idxCol = -1, -1
	for i, name := range header {
		switch name {
		case "date":
			dateCol = i
		case "fear_greed_index":
			idxCol = i
		}
	}
	return dateCol, idxCol
}
