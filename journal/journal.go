// journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSize      = errors.New("position size must be positive")
	ErrUnknownMarket    = errors.New("unknown market")
	ErrUnknownDirection = errors.New("unknown trade direction")
)

// Market is one of the instruments the journal accepts.
type Market string

const (
	MicroNasdaq Market = "Micro E-mini Nasdaq"
	EminiSP500  Market = "E-mini S&P 500"
)

// Markets lists the accepted markets in display order.
var Markets = []Market{MicroNasdaq, EminiSP500}

func ParseMarket(s string) (Market, error) {
	for _, m := range Markets {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMarket, s)
}

type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Long, Short:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// TradeRecord is one journaled trade. ProfitLoss is always derived from the
// direction, prices and size.
type TradeRecord struct {
	Date       time.Time // calendar date, UTC midnight
	EntryTime  Clock
	Market     Market
	Direction  Direction
	EntryPrice decimal.Decimal
	Size       int64
	ExitPrice  decimal.Decimal
	TakeProfit decimal.Decimal // zero means unset
	StopLoss   decimal.Decimal // zero means unset
	ProfitLoss decimal.Decimal

	Rationale        string
	MarketConditions string
	Emotions         string
	Review           string
}

// Equal reports whether two records hold the same values. Decimals are
// compared numerically so 20 and 20.00 are equal.
func (t TradeRecord) Equal(o TradeRecord) bool {
	return t.Date.Equal(o.Date) &&
		t.EntryTime == o.EntryTime &&
		t.Market == o.Market &&
		t.Direction == o.Direction &&
		t.EntryPrice.Equal(o.EntryPrice) &&
		t.Size == o.Size &&
		t.ExitPrice.Equal(o.ExitPrice) &&
		t.TakeProfit.Equal(o.TakeProfit) &&
		t.StopLoss.Equal(o.StopLoss) &&
		t.ProfitLoss.Equal(o.ProfitLoss) &&
		t.Rationale == o.Rationale &&
		t.MarketConditions == o.MarketConditions &&
		t.Emotions == o.Emotions &&
		t.Review == o.Review
}

// Table is the in-memory journal: the columns it was loaded with and its
// records in insertion order.
type Table struct {
	Columns []Column
	Records []TradeRecord
}

// NewTable returns an empty table carrying the full schema.
func NewTable() Table {
	return Table{Columns: Schema()}
}

func (t Table) Len() int { return len(t.Records) }

func (t Table) Empty() bool { return len(t.Records) == 0 }

// HasColumn reports whether the table carries column c.
func (t Table) HasColumn(c Column) bool {
	for _, have := range t.Columns {
		if have == c {
			return true
		}
	}
	return false
}

// Equal compares columns and records in order.
func (t Table) Equal(o Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Records) != len(o.Records) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != o.Columns[i] {
			return false
		}
	}
	for i := range t.Records {
		if !t.Records[i].Equal(o.Records[i]) {
			return false
		}
	}
	return true
}

// Between returns a table with the records dated within [from, to]. A zero
// bound is open.
func Between(t Table, from, to time.Time) Table {
	out := Table{Columns: append([]Column(nil), t.Columns...)}
	for _, r := range t.Records {
		if !from.IsZero() && r.Date.Before(DateOf(from)) {
			continue
		}
		if !to.IsZero() && r.Date.After(DateOf(to)) {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Store loads and persists a whole table.
type Store interface {
	Load() (Table, error)
	Save(Table) error
}
