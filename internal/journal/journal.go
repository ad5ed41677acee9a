// Package journal keeps the append-only order log: one row per
// attempted order, in SQLite, plus a structured slog line so the log is
// both machine- and human-readable.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Entry is one attempted order, successful or not.
type Entry struct {
	Timestamp time.Time
	OrderID   string
	Symbol    string
	Side      string
	Type      string
	Quantity  float64
	Price     float64
	Status    string
	Mode      string // "LIVE" or "SIMULATED"
}

// Journal handles persistent storage of order entries in SQLite.
type Journal struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates (or opens) the journal with WAL mode enabled.
func Open(path string, log *slog.Logger) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA cache_size=-2000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts INTEGER NOT NULL,
			order_id TEXT NOT NULL,
			symbol TEXT NOT NULL,
			side TEXT NOT NULL,
			type TEXT NOT NULL,
			quantity REAL NOT NULL,
			price REAL NOT NULL,
			status TEXT NOT NULL,
			mode TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create orders table: %w", err)
	}

	return &Journal{db: db, log: log}, nil
}

// Append stores one entry and emits the structured log line.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	j.log.Info("ORDER",
		slog.Time("timestamp", e.Timestamp),
		slog.String("order_id", e.OrderID),
		slog.String("symbol", e.Symbol),
		slog.String("side", e.Side),
		slog.String("type", e.Type),
		slog.Float64("quantity", e.Quantity),
		slog.Float64("price", e.Price),
		slog.String("status", e.Status),
		slog.String("mode", e.Mode))

	_, err := j.db.ExecContext(ctx,
		"INSERT INTO orders (ts, order_id, symbol, side, type, quantity, price, status, mode) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.Timestamp.UnixMicro(), e.OrderID, e.Symbol, e.Side, e.Type, e.Quantity, e.Price, e.Status, e.Mode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order entry: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT ts, order_id, symbol, side, type, quantity, price, status, mode FROM orders ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&ts, &e.OrderID, &e.Symbol, &e.Side, &e.Type, &e.Quantity, &e.Price, &e.Status, &e.Mode); err != nil {
			return nil, fmt.Errorf("failed to scan order entry: %w", err)
		}
		e.Timestamp = time.UnixMicro(ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}
