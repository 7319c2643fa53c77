package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testEntry() Entry {
	return Entry{
		Date:             time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EntryTime:        Clock{Hour: 9, Minute: 35},
		Market:           MicroNasdaq,
		Direction:        Long,
		EntryPrice:       d("100"),
		Size:             2,
		ExitPrice:        d("110"),
		Rationale:        "breakout above overnight high",
		MarketConditions: "trending",
		Emotions:         "calm",
		Review:           "held to target",
	}
}

func TestProfitLoss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dir   Direction
		entry string
		exit  string
		size  int64
		want  string
	}{
		{name: "long winner", dir: Long, entry: "100", exit: "110", size: 2, want: "20.00"},
		{name: "short winner", dir: Short, entry: "100", exit: "90", size: 2, want: "20.00"},
		{name: "short adverse move", dir: Short, entry: "100", exit: "110", size: 1, want: "-10.00"},
		{name: "long loser", dir: Long, entry: "18250.25", exit: "18240.75", size: 3, want: "-28.50"},
		{name: "flat", dir: Long, entry: "5000", exit: "5000", size: 4, want: "0.00"},
		{name: "negative prices pass through", dir: Long, entry: "-1", exit: "1", size: 1, want: "2.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfitLoss(tt.dir, d(tt.entry), d(tt.exit), tt.size)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestRecordAppends(t *testing.T) {
	t.Parallel()

	t0 := NewTable()
	t1, err := Record(t0, testEntry())
	require.NoError(t, err)

	assert.Equal(t, 0, t0.Len(), "input table must not change")
	require.Equal(t, 1, t1.Len())
	assert.Equal(t, Schema(), t1.Columns)

	rec := t1.Records[0]
	assert.True(t, rec.ProfitLoss.Equal(d("20")))
	assert.Equal(t, MicroNasdaq, rec.Market)
	assert.Equal(t, "breakout above overnight high", rec.Rationale)

	short := testEntry()
	short.Direction = Short
	short.ExitPrice = d("90")
	t2, err := Record(t1, short)
	require.NoError(t, err)
	require.Equal(t, 2, t2.Len())
	assert.True(t, t2.Records[1].ProfitLoss.Equal(d("20")))
	assert.True(t, t2.Records[0].Equal(rec), "earlier records kept in order")
}

func TestRecordWidensPartialColumns(t *testing.T) {
	t.Parallel()

	partial := Table{Columns: []Column{ColDate, ColMarket, ColDirection, ColEntryPrice, ColExitPrice}}
	out, err := Record(partial, testEntry())
	require.NoError(t, err)

	assert.Equal(t, Schema(), out.Columns)
	assert.Len(t, partial.Columns, 5, "input columns must not change")
	assert.True(t, out.HasColumn(ColProfitLoss))
	assert.True(t, out.HasColumn(ColRationale))
}

func TestRecordAllowsDuplicates(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	var err error
	for i := 0; i < 3; i++ {
		tbl, err = Record(tbl, testEntry())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.Records[0].Equal(tbl.Records[2]))
}

func TestRecordTruncatesDate(t *testing.T) {
	t.Parallel()

	e := testEntry()
	e.Date = time.Date(2024, 5, 1, 17, 45, 0, 0, time.UTC)
	tbl, err := Record(NewTable(), e)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), tbl.Records[0].Date)
}

func TestRecordValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Entry)
		want   error
	}{
		{name: "zero size", mutate: func(e *Entry) { e.Size = 0 }, want: ErrInvalidSize},
		{name: "negative size", mutate: func(e *Entry) { e.Size = -1 }, want: ErrInvalidSize},
		{name: "unknown market", mutate: func(e *Entry) { e.Market = "Crude Oil" }, want: ErrUnknownMarket},
		{name: "unknown direction", mutate: func(e *Entry) { e.Direction = "Sideways" }, want: ErrUnknownDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEntry()
			tt.mutate(&e)
			tbl, err := Record(NewTable(), e)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, tbl.Len())
		})
	}
}

func TestRecordAcceptsZeroPrices(t *testing.T) {
	t.Parallel()

	e := testEntry()
	e.EntryPrice = decimal.Zero
	e.ExitPrice = d("-5")
	tbl, err := Record(NewTable(), e)
	require.NoError(t, err)
	assert.True(t, tbl.Records[0].ProfitLoss.Equal(d("-10")))
}

func TestClearKeepsColumns(t *testing.T) {
	t.Parallel()

	tbl, err := Record(NewTable(), testEntry())
	require.NoError(t, err)

	cleared := Clear(tbl)
	assert.True(t, cleared.Empty())
	assert.Equal(t, tbl.Columns, cleared.Columns)

	partial := Table{Columns: []Column{ColDate, ColProfitLoss}}
	assert.Equal(t, []Column{ColDate, ColProfitLoss}, Clear(partial).Columns)
	assert.Equal(t, Schema(), Clear(Table{}).Columns)
}

func TestBetween(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	for _, day := range []int{1, 2, 3, 4} {
		e := testEntry()
		e.Date = time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
		var err error
		tbl, err = Record(tbl, e)
		require.NoError(t, err)
	}

	from := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	got := Between(tbl, from, to)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, 2, got.Records[0].Date.Day())
	assert.Equal(t, 3, got.Records[1].Date.Day())

	assert.Equal(t, 4, Between(tbl, time.Time{}, time.Time{}).Len())
	assert.Equal(t, 3, Between(tbl, from, time.Time{}).Len())
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	m, err := ParseMarket("E-mini S&P 500")
	require.NoError(t, err)
	assert.Equal(t, EminiSP500, m)

	_, err = ParseMarket("e-mini s&p 500")
	assert.ErrorIs(t, err, ErrUnknownMarket)

	dir, err := ParseDirection("Short")
	require.NoError(t, err)
	assert.Equal(t, Short, dir)

	_, err = ParseDirection("short")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{in: "09:35:00", want: Clock{Hour: 9, Minute: 35}, ok: true},
		{in: "14:02:59.123456", want: Clock{Hour: 14, Minute: 2, Second: 59, Micro: 123456}, ok: true},
		{in: "16:30", want: Clock{Hour: 16, Minute: 30}, ok: true},
		{in: "25:00", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "09:05:07", Clock{Hour: 9, Minute: 5, Second: 7}.String())
	assert.Equal(t, "09:05:07.000250", Clock{Hour: 9, Minute: 5, Second: 7, Micro: 250}.String())
	assert.True(t, Clock{Hour: 9, Minute: 5, Second: 7}.Before(Clock{Hour: 9, Minute: 6}))
	assert.True(t, Clock{Hour: 9, Minute: 5, Second: 7}.Before(Clock{Hour: 9, Minute: 5, Second: 7, Micro: 1}))
	assert.False(t, Clock{Hour: 10}.Before(Clock{Hour: 9, Minute: 59, Second: 59}))
}
