package output

import (
	"github.com/goccy/go-json"
	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Amounts are
// decimal strings so no precision is lost.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonComparison struct {
	domain.Comparison
	Headline          Headline          `json:"headline"`
	Formatted         FormattedResults  `json:"formatted"`
	FormattedHeadline FormattedHeadline `json:"formattedHeadline"`
}

func (j JSONFormatter) Format(report *domain.SavingsReport) ([]byte, error) {
	out := struct {
		GeneratedAt    string           `json:"generatedAt,omitempty"`
		Comparisons    []jsonComparison `json:"comparisons"`
		Recommendation *jsonRecommend   `json:"recommendation,omitempty"`
		Assumptions    []string         `json:"assumptions,omitempty"`
	}{
		Comparisons: make([]jsonComparison, 0, len(report.Comparisons)),
		Assumptions: report.Assumptions,
	}
	if !report.GeneratedAt.IsZero() {
		out.GeneratedAt = report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	for _, c := range report.Comparisons {
		h := HeadlineFor(c)
		out.Comparisons = append(out.Comparisons, jsonComparison{
			Comparison:        c,
			Headline:          h,
			Formatted:         FormatResults(c.Results),
			FormattedHeadline: FormatHeadline(h),
		})
	}
	if len(report.Comparisons) > 0 {
		rec := AnalyzeComparisons(report)
		out.Recommendation = &jsonRecommend{
			Comparison:    rec.ComparisonName,
			AnnualSavings: FormatCurrency(rec.AnnualSavings),
			Margin:        FormatCurrency(rec.Margin),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonRecommend struct {
	Comparison    string `json:"comparison"`
	AnnualSavings string `json:"annualSavings"`
	Margin        string `json:"margin"`
}
