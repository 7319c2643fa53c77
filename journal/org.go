package journal

import (
	"fmt"
	"strings"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for pasting into a journal.
// Structured facts go in the PROPERTIES drawer; the free-text fields become subheadings.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s %s)",
		t.Market, t.Direction, t.Date.Format(DateLayout), t.EntryTime)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date.Format(DateLayout)))
	b.WriteString(fmt.Sprintf(":TIME_ENTRY: %s\n", t.EntryTime))
	b.WriteString(fmt.Sprintf(":MARKET: %s\n", t.Market))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":SIZE: %d\n", t.Size))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %s\n", t.EntryPrice.StringFixed(2)))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %s\n", t.ExitPrice.StringFixed(2)))
	if !t.TakeProfit.IsZero() {
		b.WriteString(fmt.Sprintf(":TAKE_PROFIT: %s\n", t.TakeProfit.StringFixed(2)))
	}
	if !t.StopLoss.IsZero() {
		b.WriteString(fmt.Sprintf(":STOP_LOSS: %s\n", t.StopLoss.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf(":PROFIT_LOSS: %s\n", t.ProfitLoss.StringFixed(2)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	writeOrgSection(&b, "Rationale", t.Rationale)
	b.WriteString("\n")
	writeOrgSection(&b, "Market Conditions", t.MarketConditions)
	b.WriteString("\n")
	writeOrgSection(&b, "Emotional Reflection", t.Emotions)
	b.WriteString("\n")
	writeOrgSection(&b, "Post-Trade Analysis", t.Review)

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func writeOrgSection(b *strings.Builder, title, body string) {
	b.WriteString("*** " + title + "\n")
	body = strings.TrimSpace(body)
	if body == "" {
		b.WriteString("- \n")
		return
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("- " + strings.TrimRight(line, "\r") + "\n")
	}
}
