package calculation

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var emailsPerDomain = decimal.NewFromInt(domain.EmailsPerDomain)

// DomainsNeeded returns how many domains the offered infrastructure needs to
// send desiredDailyVolume emails a day: ceil(volume / 500).
//
// It is a pure projection of the current input and is safe to call on every
// keystroke of a live form.
func DomainsNeeded(desiredDailyVolume decimal.Decimal) int64 {
	return domainsNeeded(desiredDailyVolume).IntPart()
}

func domainsNeeded(desiredDailyVolume decimal.Decimal) decimal.Decimal {
	return desiredDailyVolume.Div(emailsPerDomain).Ceil()
}

// PreviewDomains is DomainsNeeded for partially entered forms. It reports
// false while the volume is below one email a day, when no preview is shown.
func PreviewDomains(desiredDailyVolume decimal.Decimal) (int64, bool) {
	if desiredDailyVolume.LessThan(decimal.NewFromInt(1)) {
		return 0, false
	}
	return DomainsNeeded(desiredDailyVolume), true
}
