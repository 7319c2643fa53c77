package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/tradejournal/pkg/id"
)

// SQLite mirrors the CSV journal into a queryable database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Replace overwrites the mirror with the records of t.
func (j *SQLite) Replace(t Table) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(id, seq, date, time_entry, market, direction, entry_price, position_size, exit_price,
		 take_profit, stop_loss, profit_loss, rationale, market_conditions,
		 emotional_reflection, post_trade_analysis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range t.Records {
		_, err := stmt.Exec(
			id.New(), i,
			r.Date.Format(DateLayout), r.EntryTime.String(),
			string(r.Market), string(r.Direction),
			r.EntryPrice.String(), r.Size, r.ExitPrice.String(),
			r.TakeProfit.String(), r.StopLoss.String(), r.ProfitLoss.String(),
			r.Rationale, r.MarketConditions, r.Emotions, r.Review,
		)
		if err != nil {
			return fmt.Errorf("insert trade %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// List returns every mirrored trade in journal order.
func (j *SQLite) List() ([]TradeRecord, error) {
	return j.query(`
		SELECT date, time_entry, market, direction, entry_price, position_size, exit_price,
		       take_profit, stop_loss, profit_loss, rationale, market_conditions,
		       emotional_reflection, post_trade_analysis
		FROM trades
		ORDER BY seq ASC`)
}

// ListBetween returns trades dated within [from, to], ordered by date and entry time.
func (j *SQLite) ListBetween(from, to time.Time) ([]TradeRecord, error) {
	return j.query(`
		SELECT date, time_entry, market, direction, entry_price, position_size, exit_price,
		       take_profit, stop_loss, profit_loss, rationale, market_conditions,
		       emotional_reflection, post_trade_analysis
		FROM trades
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, time_entry ASC, seq ASC`,
		from.Format(DateLayout), to.Format(DateLayout))
}

func (j *SQLite) query(q string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := Schema()
	var out []TradeRecord
	for rows.Next() {
		raw := make([]string, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec, err := parseRow(cols, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
