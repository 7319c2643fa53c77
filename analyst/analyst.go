// Package analyst sends a text rendering of the journal to a language model
// and hands back its commentary.
package analyst

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/rustyeddy/tradejournal/internal/tracing"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	ErrMissingColumns     = errors.New("journal is missing columns required for analysis")
	ErrNoTrades           = errors.New("no trades to analyze")
	ErrServiceUnavailable = errors.New("text generation service unavailable")
	ErrAnalysisInProgress = errors.New("analysis already in progress")
)

// Generator produces text for a prompt with the named model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// RequiredColumns are the columns sent to the model, in this order.
var RequiredColumns = []journal.Column{
	journal.ColDate,
	journal.ColMarket,
	journal.ColDirection,
	journal.ColEntryPrice,
	journal.ColExitPrice,
	journal.ColProfitLoss,
	journal.ColRationale,
	journal.ColMarketConditions,
}

const (
	promptHead = "What can I improve on based on the following trades?\n"
	promptTail = " Keep response concise"
)

// Requester runs one analysis at a time against a Generator.
type Requester struct {
	gen     Generator
	model   string
	timeout time.Duration
	logger  *zap.Logger

	mu sync.Mutex
}

// New returns a Requester. A zero timeout leaves the deadline to ctx.
func New(gen Generator, model string, timeout time.Duration, logger *zap.Logger) *Requester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Requester{gen: gen, model: model, timeout: timeout, logger: logger}
}

func (r *Requester) Model() string { return r.model }

// Request renders t and asks the model for feedback. The response text is
// returned as is. Nothing is sent when columns are missing or t is empty.
// A call made while another is running fails with ErrAnalysisInProgress.
func (r *Requester) Request(ctx context.Context, t journal.Table) (string, error) {
	if !r.mu.TryLock() {
		return "", ErrAnalysisInProgress
	}
	defer r.mu.Unlock()

	if missing := MissingColumns(t); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = string(c)
		}
		return "", fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(names, ", "))
	}
	if t.Empty() {
		return "", ErrNoTrades
	}

	prompt := Prompt(t)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	ctx, span := tracing.StartSpan(ctx, "analyst.request", trace.WithAttributes(
		attribute.String("model", r.model),
		attribute.Int("trades", t.Len()),
	))
	defer span.End()

	reqID := id.New()
	start := time.Now()
	r.logger.Info("requesting trade analysis",
		zap.String("request_id", reqID),
		zap.String("model", r.model),
		zap.Int("trades", t.Len()),
		zap.Int("prompt_bytes", len(prompt)))

	text, err := r.gen.Generate(ctx, r.model, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("trade analysis failed",
			zap.String("request_id", reqID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	r.logger.Info("trade analysis complete",
		zap.String("request_id", reqID),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_bytes", len(text)))
	return text, nil
}

// MissingColumns lists the required columns t does not carry.
func MissingColumns(t journal.Table) []journal.Column {
	var missing []journal.Column
	for _, c := range RequiredColumns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Prompt builds the full model prompt for t.
func Prompt(t journal.Table) string {
	return promptHead + FormatTrades(t) + promptTail
}

// FormatTrades renders the required columns of t as a space-aligned text
// table: a header line, then one line per trade, with no index column.
func FormatTrades(t journal.Table) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	header := make([]string, len(RequiredColumns))
	for i, c := range RequiredColumns {
		header[i] = string(c)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	cells := make([]string, len(RequiredColumns))
	for _, rec := range t.Records {
		for i, c := range RequiredColumns {
			cells[i] = cell(rec, c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	return strings.TrimRight(buf.String(), "\n")
}

var flatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func cell(rec journal.TradeRecord, c journal.Column) string {
	switch c {
	case journal.ColEntryPrice:
		return rec.EntryPrice.StringFixed(2)
	case journal.ColExitPrice:
		return rec.ExitPrice.StringFixed(2)
	case journal.ColProfitLoss:
		return rec.ProfitLoss.StringFixed(2)
	}
	return flatten.Replace(journal.FieldString(rec, c))
}
