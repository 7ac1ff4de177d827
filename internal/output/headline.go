package output

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
	money "github.com/inboxsavings/savings-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Headline is the set of figures a variant puts at the top of its results.
// Variants share one calculation but do not headline the same figures: the
// Outlook view annualizes the monthly total and shows current costs without
// domains.
type Headline struct {
	MonthlySavings           decimal.Decimal `json:"monthlySavings"`
	MonthlySavingsPercentage decimal.Decimal `json:"monthlySavingsPercentage"`
	AnnualSavings            decimal.Decimal `json:"annualSavings"`
	CurrentMonthly           decimal.Decimal `json:"currentMonthly"`
	OfferMonthly             decimal.Decimal `json:"offerMonthly"`
}

type headlineFunc func(domain.CalculationResults) Headline

var headlines = map[domain.Variant]headlineFunc{
	domain.VariantInbox:   inboxHeadline,
	domain.VariantOutlook: outlookHeadline,
}

func inboxHeadline(r domain.CalculationResults) Headline {
	return Headline{
		MonthlySavings:           r.TotalSavings,
		MonthlySavingsPercentage: r.TotalSavingsPercentage,
		AnnualSavings:            r.AnnualSavings,
		CurrentMonthly:           r.CurrentTotalWithDomains,
		OfferMonthly:             r.OurTotalCost,
	}
}

func outlookHeadline(r domain.CalculationResults) Headline {
	return Headline{
		MonthlySavings:           r.TotalSavings,
		MonthlySavingsPercentage: r.TotalSavingsPercentage,
		AnnualSavings:            money.NewMoneyFromDecimal(r.TotalSavings).Annual().Decimal,
		CurrentMonthly:           r.CurrentTotalWithDomains.Sub(r.CurrentDomainCost),
		OfferMonthly:             r.OurTotalCost,
	}
}

// HeadlineFor returns the headline figures of a calculated comparison.
// Unknown variants use the inbox headline.
func HeadlineFor(c domain.Comparison) Headline {
	f, ok := headlines[c.Variant.OrDefault()]
	if !ok {
		f = headlines[domain.DefaultVariant]
	}
	return f(c.Results)
}

// FormattedHeadline is Headline rendered for display.
type FormattedHeadline struct {
	MonthlySavings           string `json:"monthlySavings"`
	MonthlySavingsPercentage string `json:"monthlySavingsPercentage"`
	AnnualSavings            string `json:"annualSavings"`
	CurrentMonthly           string `json:"currentMonthly"`
	OfferMonthly             string `json:"offerMonthly"`
}

func FormatHeadline(h Headline) FormattedHeadline {
	return FormattedHeadline{
		MonthlySavings:           FormatCurrency(h.MonthlySavings),
		MonthlySavingsPercentage: FormatPercentage(h.MonthlySavingsPercentage),
		AnnualSavings:            FormatCurrency(h.AnnualSavings),
		CurrentMonthly:           FormatCurrency(h.CurrentMonthly),
		OfferMonthly:             FormatCurrency(h.OfferMonthly),
	}
}
