package output

import (
	"strings"
	"testing"

	"github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/domain"
)

func scenarioA(t *testing.T, variant domain.Variant) domain.Comparison {
	t.Helper()
	form := testForm("2000", false)
	form.Variant = variant
	return calculation.NewCalculationEngine().Compare("scenario A", form)
}

func TestHeadlineFor_Inbox(t *testing.T) {
	h := HeadlineFor(scenarioA(t, domain.VariantInbox))
	for name, c := range map[string]struct{ got, want string }{
		"monthly": {h.MonthlySavings.String(), "307"},
		"annual":  {h.AnnualSavings.String(), "3935.79"},
		"current": {h.CurrentMonthly.String(), "760.78"},
		"offer":   {h.OfferMonthly.String(), "190"},
	} {
		if !d(c.got).Equal(d(c.want)) {
			t.Errorf("%s = %s, want %s", name, c.got, c.want)
		}
	}
}

func TestHeadlineFor_Outlook(t *testing.T) {
	cmp := scenarioA(t, domain.VariantOutlook)
	h := FormatHeadline(HeadlineFor(cmp))
	want := FormattedHeadline{
		MonthlySavings:           "$307.00",
		MonthlySavingsPercentage: "61.77%",
		AnnualSavings:            "$3,684.00",
		CurrentMonthly:           "$497.00",
		OfferMonthly:             "$190.00",
	}
	if h != want {
		t.Fatalf("outlook headline = %+v, want %+v", h, want)
	}
	// the underlying results are the shared calculation
	if !cmp.Results.AnnualSavings.Equal(d("3935.79")) {
		t.Fatalf("results annual savings changed: %s", cmp.Results.AnnualSavings)
	}
}

func TestHeadlineFor_UnknownVariantUsesInbox(t *testing.T) {
	cmp := scenarioA(t, domain.VariantInbox)
	cmp.Variant = "gmail"
	if got := HeadlineFor(cmp).AnnualSavings; !got.Equal(d("3935.79")) {
		t.Fatalf("annual savings = %s", got)
	}
}

func TestOutlookHeadlineInReports(t *testing.T) {
	report := &domain.SavingsReport{Comparisons: []domain.Comparison{scenarioA(t, domain.VariantOutlook)}}

	out, err := ConsoleFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("console: %v", err)
	}
	for _, want := range []string{
		"Annual savings: $3,684.00",
		"Current costs: $497.00 per month, our offer: $190.00 per month",
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("console output missing %q:\n%s", want, out)
		}
	}

	out, err = JSONFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(string(out), `"annualSavings": "$3,684.00"`) {
		t.Fatalf("json output missing outlook headline:\n%s", out)
	}

	out, err = HTMLFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(string(out), "Current costs $497.00 per month") {
		t.Fatalf("html output missing outlook headline")
	}
}

func TestAnalyzeComparisons_RanksByHeadline(t *testing.T) {
	report := &domain.SavingsReport{Comparisons: []domain.Comparison{
		comparisonWithAnnual("inbox", "3500"),
		{Name: "outlook", Variant: domain.VariantOutlook, Results: domain.CalculationResults{
			TotalSavings:  d("300"),
			AnnualSavings: d("1"),
		}},
	}}
	rec := AnalyzeComparisons(report)
	if rec.ComparisonName != "outlook" {
		t.Fatalf("expected outlook, got %q", rec.ComparisonName)
	}
	if !rec.AnnualSavings.Equal(d("3600")) || !rec.Margin.Equal(d("100")) {
		t.Fatalf("unexpected recommendation %+v", rec)
	}
}
