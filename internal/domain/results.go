package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationResults is the full savings breakdown for one comparison.
// All amounts are monthly unless the field name says Annual.
type CalculationResults struct {
	// Current costs
	CurrentSequencerCost    decimal.Decimal `json:"currentSequencerCost"`
	CurrentDomainCost       decimal.Decimal `json:"currentDomainCost"`
	CurrentTotalRecurring   decimal.Decimal `json:"currentTotalRecurring"`
	CurrentTotalWithDomains decimal.Decimal `json:"currentTotalWithDomains"`

	// Offer
	OurSequencerCost decimal.Decimal `json:"ourSequencerCost"`
	OurDomainCost    decimal.Decimal `json:"ourDomainCost"`
	OurTotalCost     decimal.Decimal `json:"ourTotalCost"`

	// Savings per category
	SequencerSavings            decimal.Decimal `json:"sequencerSavings"`
	SequencerAnnualSavings      decimal.Decimal `json:"sequencerAnnualSavings"`
	EmailInboxSavings           decimal.Decimal `json:"emailInboxSavings"`
	EmailInboxAnnualSavings     decimal.Decimal `json:"emailInboxAnnualSavings"`
	EmailInboxSavingsPercentage decimal.Decimal `json:"emailInboxSavingsPercentage"`
	DomainSavings               decimal.Decimal `json:"domainSavings"`
	DomainAnnualSavings         decimal.Decimal `json:"domainAnnualSavings"`

	// Totals. Domain savings are not part of TotalSavings.
	TotalSavings           decimal.Decimal `json:"totalSavings"`
	TotalSavingsPercentage decimal.Decimal `json:"totalSavingsPercentage"`
	AnnualSavings          decimal.Decimal `json:"annualSavings"`

	DomainsNeeded int64 `json:"domainsNeeded"`
}

// CostBreakdown is the side by side "current vs offer" view of monthly costs.
type CostBreakdown struct {
	CurrentSequencer decimal.Decimal `json:"currentSequencer"`
	CurrentInbox     decimal.Decimal `json:"currentInbox"`
	CurrentDomains   decimal.Decimal `json:"currentDomains"`
	CurrentTotal     decimal.Decimal `json:"currentTotal"`

	OfferSequencer decimal.Decimal `json:"offerSequencer"`
	OfferInbox     decimal.Decimal `json:"offerInbox"`
	OfferDomains   decimal.Decimal `json:"offerDomains"` // prorated by desired volume, not rounded up
	OfferTotal     decimal.Decimal `json:"offerTotal"`
}

// Comparison is one calculated comparison.
type Comparison struct {
	Name      string             `json:"name"`
	Variant   Variant            `json:"variant"`
	Current   CurrentCosts       `json:"currentCosts"`
	Offer     OurOffer           `json:"ourOffer"`
	Results   CalculationResults `json:"results"`
	Breakdown CostBreakdown      `json:"breakdown"`
}

// SavingsReport holds every comparison calculated in one run.
type SavingsReport struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Comparisons []Comparison `json:"comparisons"`
	Assumptions []string     `json:"assumptions,omitempty"`
}
