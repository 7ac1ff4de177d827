package output

import (
	"bytes"
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// ConsoleFormatter renders a plain text summary with the before/after panel
// of every comparison.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.SavingsReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INBOX COST SAVINGS SUMMARY")
	fmt.Fprintln(&buf, "==========================")
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	}

	for _, cmp := range report.Comparisons {
		writeConsoleComparison(&buf, cmp)
	}

	if len(report.Comparisons) > 1 {
		rec := AnalyzeComparisons(report)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s per year, %s ahead of the next option)\n",
			rec.ComparisonName, FormatCurrency(rec.AnnualSavings), FormatCurrency(rec.Margin))
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeConsoleComparison(buf *bytes.Buffer, cmp domain.Comparison) {
	r, b := cmp.Results, cmp.Breakdown
	h := FormatHeadline(HeadlineFor(cmp))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%s [%s]\n", cmp.Name, cmp.Variant.OrDefault())
	fmt.Fprintf(buf, "  Monthly savings: %s (%s)\n", h.MonthlySavings, h.MonthlySavingsPercentage)
	fmt.Fprintf(buf, "  Annual savings: %s\n", h.AnnualSavings)
	fmt.Fprintf(buf, "  Current costs: %s per month, our offer: %s per month\n", h.CurrentMonthly, h.OfferMonthly)
	fmt.Fprintf(buf, "  Domains needed: %d\n", r.DomainsNeeded)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Monthly costs", "Current", "With us")
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Sequencer ("+cmp.Current.EmailSequencerName+")", FormatCurrency(b.CurrentSequencer), FormatCurrency(b.OfferSequencer))
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Inboxes", FormatCurrency(b.CurrentInbox), FormatCurrency(b.OfferInbox))
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Domains", FormatCurrency(b.CurrentDomains), FormatCurrency(b.OfferDomains))
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Total", FormatCurrency(b.CurrentTotal), FormatCurrency(b.OfferTotal))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Savings", "Monthly", "Annual")
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Sequencer", FormatCurrency(r.SequencerSavings), FormatCurrency(r.SequencerAnnualSavings))
	fmt.Fprintf(buf, "  %-28s %14s %14s  (%s)\n", "Inboxes", FormatCurrency(r.EmailInboxSavings), FormatCurrency(r.EmailInboxAnnualSavings), FormatPercentage(r.EmailInboxSavingsPercentage))
	fmt.Fprintf(buf, "  %-28s %14s %14s\n", "Domains", FormatCurrency(r.DomainSavings), FormatCurrency(r.DomainAnnualSavings))
	fmt.Fprintf(buf, "  %-28s %14s %14s  (%s)\n", "Total", FormatCurrency(r.TotalSavings), "", FormatPercentage(r.TotalSavingsPercentage))
}
