package output

import (
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// DefaultAssumptions lists the calculation rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	fmt.Sprintf("Each domain sends up to %d emails per day; domains needed are rounded up", domain.EmailsPerDomain),
	"Annual figures are monthly amounts multiplied by 12",
	"Total savings cover sequencer and inbox costs only; domain savings are shown separately",
	"Inbox annual savings add one month of domain savings to the annual sequencer and inbox savings",
	"Percentages are 0% when the current cost they are measured against is zero",
	"Amounts are US dollars rounded to the cent",
}

// GenerateAssumptions returns the assumptions that apply to a report.
func GenerateAssumptions(report *domain.SavingsReport) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if report == nil {
		return out
	}
	existing, outlook := false, false
	for _, c := range report.Comparisons {
		if c.Offer.UseExistingDomains {
			existing = true
		}
		if c.Variant == domain.VariantOutlook {
			outlook = true
		}
	}
	if existing {
		out = append(out, "When existing domains are used, customer supplied domains are subtracted from the domains needed and no domain purchase cost applies")
	}
	if outlook {
		out = append(out, "Outlook comparisons headline annual savings as 12 times the total monthly savings and show current costs without domain costs")
	}
	return out
}
