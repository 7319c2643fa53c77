// journal/schema.go
package journal

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrDuplicateColumn = errors.New("duplicate column")
)

// Column is a header name in the persisted table.
type Column string

const (
	ColDate             Column = "Date"
	ColTimeEntry        Column = "Time Entry"
	ColMarket           Column = "Market"
	ColDirection        Column = "Trade Direction"
	ColEntryPrice       Column = "Entry Price"
	ColPositionSize     Column = "Position Size"
	ColExitPrice        Column = "Exit Price"
	ColTakeProfit       Column = "Take Profit"
	ColStopLoss         Column = "Stop Loss"
	ColProfitLoss       Column = "Profit/Loss"
	ColRationale        Column = "Trade Rationale"
	ColMarketConditions Column = "Market Conditions"
	ColEmotions         Column = "Emotional Reflection"
	ColReview           Column = "Post-Trade Analysis"
)

var schema = []Column{
	ColDate,
	ColTimeEntry,
	ColMarket,
	ColDirection,
	ColEntryPrice,
	ColPositionSize,
	ColExitPrice,
	ColTakeProfit,
	ColStopLoss,
	ColProfitLoss,
	ColRationale,
	ColMarketConditions,
	ColEmotions,
	ColReview,
}

// Schema returns the full column set in persisted order.
func Schema() []Column {
	return append([]Column(nil), schema...)
}

func knownColumn(c Column) bool {
	for _, s := range schema {
		if s == c {
			return true
		}
	}
	return false
}

// parseHeader checks a CSV header against the schema. A subset of the schema
// is allowed; anything else is rejected.
func parseHeader(header []string) ([]Column, error) {
	seen := make(map[Column]bool, len(header))
	cols := make([]Column, 0, len(header))
	for _, h := range header {
		c := Column(h)
		if !knownColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, h)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, h)
		}
		seen[c] = true
		cols = append(cols, c)
	}
	return cols, nil
}

// SQLiteSchema creates the mirror table used by the SQLite export.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	date TEXT NOT NULL,
	time_entry TEXT NOT NULL,
	market TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price TEXT NOT NULL,
	position_size INTEGER NOT NULL,
	exit_price TEXT NOT NULL,
	take_profit TEXT NOT NULL,
	stop_loss TEXT NOT NULL,
	profit_loss TEXT NOT NULL,
	rationale TEXT NOT NULL,
	market_conditions TEXT NOT NULL,
	emotional_reflection TEXT NOT NULL,
	post_trade_analysis TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date, time_entry);
`
