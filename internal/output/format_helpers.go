package output

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
	money "github.com/inboxsavings/savings-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as en-US dollars, e.g. "$1,234.50" or "-$50.00".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal with two decimals and a percent sign.
// Negative values that round to zero keep their sign.
func FormatPercentage(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2) + "%"
	if amount.IsNegative() {
		return "-" + s
	}
	return s
}

// FormattedResults is CalculationResults rendered for display.
type FormattedResults struct {
	CurrentSequencerCost        string `json:"currentSequencerCost"`
	CurrentDomainCost           string `json:"currentDomainCost"`
	CurrentTotalRecurring       string `json:"currentTotalRecurring"`
	CurrentTotalWithDomains     string `json:"currentTotalWithDomains"`
	OurSequencerCost            string `json:"ourSequencerCost"`
	OurDomainCost               string `json:"ourDomainCost"`
	OurTotalCost                string `json:"ourTotalCost"`
	SequencerSavings            string `json:"sequencerSavings"`
	SequencerAnnualSavings      string `json:"sequencerAnnualSavings"`
	EmailInboxSavings           string `json:"emailInboxSavings"`
	EmailInboxAnnualSavings     string `json:"emailInboxAnnualSavings"`
	EmailInboxSavingsPercentage string `json:"emailInboxSavingsPercentage"`
	DomainSavings               string `json:"domainSavings"`
	DomainAnnualSavings         string `json:"domainAnnualSavings"`
	TotalSavings                string `json:"totalSavings"`
	TotalSavingsPercentage      string `json:"totalSavingsPercentage"`
	AnnualSavings               string `json:"annualSavings"`
}

// FormatResults renders every monetary field with FormatCurrency and every
// percentage with FormatPercentage.
func FormatResults(r domain.CalculationResults) FormattedResults {
	return FormattedResults{
		CurrentSequencerCost:        FormatCurrency(r.CurrentSequencerCost),
		CurrentDomainCost:           FormatCurrency(r.CurrentDomainCost),
		CurrentTotalRecurring:       FormatCurrency(r.CurrentTotalRecurring),
		CurrentTotalWithDomains:     FormatCurrency(r.CurrentTotalWithDomains),
		OurSequencerCost:            FormatCurrency(r.OurSequencerCost),
		OurDomainCost:               FormatCurrency(r.OurDomainCost),
		OurTotalCost:                FormatCurrency(r.OurTotalCost),
		SequencerSavings:            FormatCurrency(r.SequencerSavings),
		SequencerAnnualSavings:      FormatCurrency(r.SequencerAnnualSavings),
		EmailInboxSavings:           FormatCurrency(r.EmailInboxSavings),
		EmailInboxAnnualSavings:     FormatCurrency(r.EmailInboxAnnualSavings),
		EmailInboxSavingsPercentage: FormatPercentage(r.EmailInboxSavingsPercentage),
		DomainSavings:               FormatCurrency(r.DomainSavings),
		DomainAnnualSavings:         FormatCurrency(r.DomainAnnualSavings),
		TotalSavings:                FormatCurrency(r.TotalSavings),
		TotalSavingsPercentage:      FormatPercentage(r.TotalSavingsPercentage),
		AnnualSavings:               FormatCurrency(r.AnnualSavings),
	}
}
