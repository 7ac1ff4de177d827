package calculation

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
	money "github.com/inboxsavings/savings-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormulaSet computes a savings breakdown for one variant. New variants are
// added by registering another FormulaSet; the standard set stays untouched.
type FormulaSet interface {
	Variant() domain.Variant
	Calculate(current domain.CurrentCosts, offer domain.OurOffer) domain.CalculationResults
}

var hundred = decimal.NewFromInt(100)

// StandardFormulas is the default (inbox) formula set.
type StandardFormulas struct{}

func (StandardFormulas) Variant() domain.Variant { return domain.VariantInbox }

func (StandardFormulas) Calculate(current domain.CurrentCosts, offer domain.OurOffer) domain.CalculationResults {
	// Current costs
	currentSequencerCost := current.EmailSequencerCost
	currentDomainCost := current.NumberOfDomains.Mul(current.DomainCost)
	currentTotalRecurring := currentSequencerCost.Add(current.TotalMonthlyCost)
	currentTotalWithDomains := currentTotalRecurring.Add(currentDomainCost)

	// Offer
	needed := domainsNeeded(offer.DesiredDailyVolume)
	ourInboxCost := needed.Mul(offer.CostPerDomain)
	ourDomainCost := ourInboxCost
	if offer.UseExistingDomains {
		billable := decimal.Max(decimal.Zero, needed.Sub(offer.FreeDomainCount))
		ourDomainCost = billable.Mul(offer.CostPerDomain)
	}
	ourSequencerCost := offer.EmailSequencerCost
	ourTotalCost := ourSequencerCost.Add(ourDomainCost)

	// Savings
	sequencerSavings := currentSequencerCost.Sub(ourSequencerCost)
	emailInboxSavings := current.TotalMonthlyCost.Sub(ourInboxCost)
	domainSavings := currentDomainCost.Sub(offer.FlatDomainCost)

	sequencerAnnual := annualize(sequencerSavings)
	emailInboxAnnual := annualize(emailInboxSavings)

	totalSavings := sequencerSavings.Add(emailInboxSavings)

	return domain.CalculationResults{
		CurrentSequencerCost:    currentSequencerCost,
		CurrentDomainCost:       currentDomainCost,
		CurrentTotalRecurring:   currentTotalRecurring,
		CurrentTotalWithDomains: currentTotalWithDomains,

		OurSequencerCost: ourSequencerCost,
		OurDomainCost:    ourDomainCost,
		OurTotalCost:     ourTotalCost,

		SequencerSavings:            sequencerSavings,
		SequencerAnnualSavings:      sequencerAnnual,
		EmailInboxSavings:           emailInboxSavings,
		EmailInboxAnnualSavings:     emailInboxAnnual,
		EmailInboxSavingsPercentage: percentageOf(emailInboxSavings, current.TotalMonthlyCost),
		DomainSavings:               domainSavings,
		DomainAnnualSavings:         annualize(domainSavings),

		TotalSavings:           totalSavings,
		TotalSavingsPercentage: percentageOf(totalSavings, currentTotalRecurring),
		// Domain savings enter the annual figure as a monthly amount.
		// TODO: confirm with product whether this should be DomainAnnualSavings.
		AnnualSavings: sequencerAnnual.Add(emailInboxAnnual).Add(domainSavings),

		DomainsNeeded: needed.IntPart(),
	}
}

// OutlookFormulas is the Outlook inbox variant. It currently prices the
// offer with the standard formulas.
type OutlookFormulas struct {
	StandardFormulas
}

func (OutlookFormulas) Variant() domain.Variant { return domain.VariantOutlook }

func annualize(monthly decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(monthly).Annual().Decimal
}

// percentageOf returns part/whole*100, or zero when whole is not positive.
func percentageOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
