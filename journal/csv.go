// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CSVStore keeps the journal in a single CSV file with a header row.
type CSVStore struct {
	path   string
	logger *zap.Logger
}

var _ Store = (*CSVStore)(nil)

func NewCSV(path string, logger *zap.Logger) *CSVStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVStore{path: path, logger: logger}
}

func (s *CSVStore) Path() string { return s.path }

// Load reads the whole file. A missing or empty file is an empty table.
func (s *CSVStore) Load() (Table, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("journal file absent, starting empty", zap.String("path", s.path))
		return NewTable(), nil
	}
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", s.path, err)
	}
	s.logger.Debug("journal loaded",
		zap.String("path", s.path),
		zap.Int("trades", t.Len()),
		zap.Int("columns", len(t.Columns)))
	return t, nil
}

// Save overwrites the file with t.
func (s *CSVStore) Save(t Table) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.logger.Debug("journal saved", zap.String("path", s.path), zap.Int("trades", t.Len()))
	return nil
}

// ReadCSV parses a journal table from r.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return NewTable(), nil
	}
	if err != nil {
		return Table{}, err
	}
	cols, err := parseHeader(header)
	if err != nil {
		return Table{}, err
	}

	t := Table{Columns: cols}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		rec, err := parseRow(cols, row)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %w", line, err)
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// WriteCSV writes the header and every record of t, limited to t's columns.
func WriteCSV(w io.Writer, t Table) error {
	cols := t.Columns
	if len(cols) == 0 {
		cols = Schema()
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = string(c)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for _, rec := range t.Records {
		for i, c := range cols {
			row[i] = FieldString(rec, c)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FieldString renders one column of rec the way it is persisted.
func FieldString(rec TradeRecord, c Column) string {
	switch c {
	case ColDate:
		return rec.Date.Format(DateLayout)
	case ColTimeEntry:
		return rec.EntryTime.String()
	case ColMarket:
		return string(rec.Market)
	case ColDirection:
		return string(rec.Direction)
	case ColEntryPrice:
		return rec.EntryPrice.String()
	case ColPositionSize:
		return strconv.FormatInt(rec.Size, 10)
	case ColExitPrice:
		return rec.ExitPrice.String()
	case ColTakeProfit:
		return rec.TakeProfit.String()
	case ColStopLoss:
		return rec.StopLoss.String()
	case ColProfitLoss:
		return rec.ProfitLoss.String()
	case ColRationale:
		return rec.Rationale
	case ColMarketConditions:
		return rec.MarketConditions
	case ColEmotions:
		return rec.Emotions
	case ColReview:
		return rec.Review
	}
	return ""
}

// parseRow fills rec from row. Empty market and direction cells stay empty:
// they come from rows saved before their file carried those columns.
func parseRow(cols []Column, row []string) (TradeRecord, error) {
	var rec TradeRecord
	if len(row) != len(cols) {
		return rec, fmt.Errorf("expected %d fields, got %d", len(cols), len(row))
	}

	var err error
	for i, c := range cols {
		v := row[i]
		switch c {
		case ColDate:
			rec.Date, err = ParseDate(v)
		case ColTimeEntry:
			rec.EntryTime, err = ParseClock(v)
		case ColMarket:
			if v != "" {
				rec.Market, err = ParseMarket(v)
			}
		case ColDirection:
			if v != "" {
				rec.Direction, err = ParseDirection(v)
			}
		case ColEntryPrice:
			rec.EntryPrice, err = parseDecimal(v)
		case ColPositionSize:
			rec.Size, err = parseSize(v)
		case ColExitPrice:
			rec.ExitPrice, err = parseDecimal(v)
		case ColTakeProfit:
			rec.TakeProfit, err = parseDecimal(v)
		case ColStopLoss:
			rec.StopLoss, err = parseDecimal(v)
		case ColProfitLoss:
			rec.ProfitLoss, err = parseDecimal(v)
		case ColRationale:
			rec.Rationale = v
		case ColMarketConditions:
			rec.MarketConditions = v
		case ColEmotions:
			rec.Emotions = v
		case ColReview:
			rec.Review = v
		}
		if err != nil {
			return rec, fmt.Errorf("%s: %w", c, err)
		}
	}
	return rec, nil
}

// parseDecimal treats an empty cell as zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseSize accepts integral values written as floats ("2.0").
func parseSize(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position size %q", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("position size %q is not a whole number", s)
	}
	return d.IntPart(), nil
}
