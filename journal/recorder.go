package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry holds the user-supplied fields for a new trade.
type Entry struct {
	Date       time.Time
	EntryTime  Clock
	Market     Market
	Direction  Direction
	EntryPrice decimal.Decimal
	Size       int64
	ExitPrice  decimal.Decimal
	TakeProfit decimal.Decimal
	StopLoss   decimal.Decimal

	Rationale        string
	MarketConditions string
	Emotions         string
	Review           string
}

// ProfitLoss is (exit-entry)*size for longs and (entry-exit)*size for shorts.
func ProfitLoss(dir Direction, entry, exit decimal.Decimal, size int64) decimal.Decimal {
	n := decimal.NewFromInt(size)
	if dir == Short {
		return entry.Sub(exit).Mul(n)
	}
	return exit.Sub(entry).Mul(n)
}

// NewRecord validates e and builds the record with its derived P/L. Prices
// are not range checked.
func NewRecord(e Entry) (TradeRecord, error) {
	if e.Size <= 0 {
		return TradeRecord{}, fmt.Errorf("%w: %d", ErrInvalidSize, e.Size)
	}
	if _, err := ParseMarket(string(e.Market)); err != nil {
		return TradeRecord{}, err
	}
	if _, err := ParseDirection(string(e.Direction)); err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		Date:             DateOf(e.Date),
		EntryTime:        e.EntryTime,
		Market:           e.Market,
		Direction:        e.Direction,
		EntryPrice:       e.EntryPrice,
		Size:             e.Size,
		ExitPrice:        e.ExitPrice,
		TakeProfit:       e.TakeProfit,
		StopLoss:         e.StopLoss,
		ProfitLoss:       ProfitLoss(e.Direction, e.EntryPrice, e.ExitPrice, e.Size),
		Rationale:        e.Rationale,
		MarketConditions: e.MarketConditions,
		Emotions:         e.Emotions,
		Review:           e.Review,
	}, nil
}

// Record appends a new trade built from e and returns the new table. The
// input table is left untouched; persisting the result is up to the caller.
// The result always carries the full schema so the new row is written in
// full. Older rows hold zero values in columns their file lacked.
func Record(t Table, e Entry) (Table, error) {
	rec, err := NewRecord(e)
	if err != nil {
		return t, err
	}

	out := Table{
		Columns: Schema(),
		Records: make([]TradeRecord, 0, len(t.Records)+1),
	}
	out.Records = append(out.Records, t.Records...)
	out.Records = append(out.Records, rec)
	return out, nil
}

// Clear discards every record and keeps the table's columns.
func Clear(t Table) Table {
	cols := append([]Column(nil), t.Columns...)
	if len(cols) == 0 {
		cols = Schema()
	}
	return Table{Columns: cols}
}
