package domain

import "github.com/shopspring/decimal"

// EmailsPerDomain is the daily sending capacity of one domain on the offered infrastructure.
const EmailsPerDomain = 500

// CurrentCosts describes what a prospect pays today for their sending setup.
// DomainCost is per domain per month; EmailSequencerName is descriptive only.
type CurrentCosts struct {
	EmailSequencerCost decimal.Decimal `yaml:"emailSequencerCost" json:"emailSequencerCost" validate:"dgte=0"`
	EmailSequencerName string          `yaml:"emailSequencerName" json:"emailSequencerName" validate:"required"`
	DailyEmailVolume   decimal.Decimal `yaml:"dailyEmailVolume" json:"dailyEmailVolume" validate:"dgte=1"`
	NumberOfDomains    decimal.Decimal `yaml:"numberOfDomains" json:"numberOfDomains" validate:"dgte=0"`
	DomainCost         decimal.Decimal `yaml:"domainCost" json:"domainCost" validate:"dgte=0"`
	// TotalMonthlyCost is the aggregate inbox/infrastructure spend. It may
	// already include domain costs.
	TotalMonthlyCost decimal.Decimal `yaml:"totalMonthlyCost" json:"totalMonthlyCost" validate:"dgte=0"`
}

// OurOffer is the proposed setup the calculator compares against.
//
// FreeDomainCount and FlatDomainCost replace the overloaded costForDomains
// form field: the first is only consulted when UseExistingDomains is set, the
// second only feeds domain savings.
type OurOffer struct {
	EmailSequencerCost decimal.Decimal `yaml:"emailSequencerCost" json:"emailSequencerCost"`
	DesiredDailyVolume decimal.Decimal `yaml:"desiredDailyVolume" json:"desiredDailyVolume"`
	CostPerDomain      decimal.Decimal `yaml:"costPerDomain" json:"costPerDomain"`
	UseExistingDomains bool            `yaml:"useExistingDomains" json:"useExistingDomains"`
	FreeDomainCount    decimal.Decimal `yaml:"freeDomainCount" json:"freeDomainCount"`
	FlatDomainCost     decimal.Decimal `yaml:"flatDomainCost" json:"flatDomainCost"`
}

// OfferInput is the offer as entered on a form, with the single costForDomains field.
type OfferInput struct {
	EmailSequencerCost decimal.Decimal `yaml:"emailSequencerCost" json:"emailSequencerCost" validate:"dgte=0"`
	DesiredDailyVolume decimal.Decimal `yaml:"desiredDailyVolume" json:"desiredDailyVolume" validate:"dgte=1"`
	CostPerDomain      decimal.Decimal `yaml:"costPerDomain" json:"costPerDomain" validate:"dgte=0"`
	UseExistingDomains bool            `yaml:"useExistingDomains" json:"useExistingDomains"`
	CostForDomains     decimal.Decimal `yaml:"costForDomains" json:"costForDomains" validate:"dgte=0"`
	FreeDomainCount    decimal.Decimal `yaml:"freeDomainCount,omitempty" json:"freeDomainCount,omitempty" validate:"dgte=0"`
}

// Offer resolves the form input into an OurOffer. When existing domains are
// used the flat domain cost is forced to zero and costForDomains is ignored.
func (in OfferInput) Offer() OurOffer {
	offer := OurOffer{
		EmailSequencerCost: in.EmailSequencerCost,
		DesiredDailyVolume: in.DesiredDailyVolume,
		CostPerDomain:      in.CostPerDomain,
		UseExistingDomains: in.UseExistingDomains,
		FreeDomainCount:    decimal.Zero,
		FlatDomainCost:     in.CostForDomains,
	}
	if in.UseExistingDomains {
		offer.FreeDomainCount = in.FreeDomainCount
		offer.FlatDomainCost = decimal.Zero
	}
	return offer
}

// CalculatorForm is one validated set of calculator inputs.
type CalculatorForm struct {
	Variant      Variant      `yaml:"variant,omitempty" json:"variant,omitempty"`
	CurrentCosts CurrentCosts `yaml:"currentCosts" json:"currentCosts"`
	OurOffer     OfferInput   `yaml:"ourOffer" json:"ourOffer"`
}

// ComparisonInput is a named calculator form, as stored in a comparisons file.
type ComparisonInput struct {
	Name string         `yaml:"name" json:"name"`
	Form CalculatorForm `yaml:",inline" json:"form"`
}

// Configuration is the top-level comparisons file.
type Configuration struct {
	Comparisons []ComparisonInput `yaml:"comparisons" json:"comparisons"`
}
