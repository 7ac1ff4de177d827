package output

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best comparison.
type Recommendation struct {
	ComparisonName         string
	Variant                domain.Variant
	AnnualSavings          decimal.Decimal
	TotalSavings           decimal.Decimal
	TotalSavingsPercentage decimal.Decimal
	// Margin is how much more per year the pick saves than the runner up.
	Margin decimal.Decimal
}

// AnalyzeComparisons picks the comparison with the highest headline annual
// savings. Ties go to the comparison listed first.
func AnalyzeComparisons(report *domain.SavingsReport) Recommendation {
	if report == nil || len(report.Comparisons) == 0 {
		return Recommendation{}
	}
	annual := make([]decimal.Decimal, len(report.Comparisons))
	for i, c := range report.Comparisons {
		annual[i] = HeadlineFor(c).AnnualSavings
	}
	best := 0
	for i := 1; i < len(annual); i++ {
		if annual[i].GreaterThan(annual[best]) {
			best = i
		}
	}
	pick := report.Comparisons[best]
	rec := Recommendation{
		ComparisonName:         pick.Name,
		Variant:                pick.Variant,
		AnnualSavings:          annual[best],
		TotalSavings:           pick.Results.TotalSavings,
		TotalSavingsPercentage: pick.Results.TotalSavingsPercentage,
	}
	seen := false
	for i := range report.Comparisons {
		if i == best {
			continue
		}
		gap := annual[best].Sub(annual[i])
		if !seen || gap.LessThan(rec.Margin) {
			rec.Margin = gap
			seen = true
		}
	}
	return rec
}
