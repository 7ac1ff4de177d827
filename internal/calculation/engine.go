package calculation

import (
	"context"
	"fmt"

	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine dispatches calculations to the formula set registered for a variant.
type CalculationEngine struct {
	Formulas map[domain.Variant]FormulaSet
	Logger   Logger
}

// NewCalculationEngine creates an engine with the built-in formula sets registered.
func NewCalculationEngine() *CalculationEngine {
	ce := &CalculationEngine{
		Formulas: make(map[domain.Variant]FormulaSet),
		Logger:   NopLogger{},
	}
	ce.Register(StandardFormulas{})
	ce.Register(OutlookFormulas{})
	return ce
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Register adds or replaces the formula set for its variant.
func (ce *CalculationEngine) Register(fs FormulaSet) {
	ce.Formulas[fs.Variant()] = fs
}

func (ce *CalculationEngine) formulaSet(v domain.Variant) FormulaSet {
	v = v.OrDefault()
	if fs, ok := ce.Formulas[v]; ok {
		return fs
	}
	ce.Logger.Warnf("no formula set registered for variant %q, using %q", v, domain.DefaultVariant)
	if fs, ok := ce.Formulas[domain.DefaultVariant]; ok {
		return fs
	}
	return StandardFormulas{}
}

// Calculate computes the savings breakdown for validated inputs. It never fails.
func (ce *CalculationEngine) Calculate(current domain.CurrentCosts, offer domain.OurOffer, variant domain.Variant) domain.CalculationResults {
	fs := ce.formulaSet(variant)
	res := fs.Calculate(current, offer)
	ce.Logger.Debugf("calculated variant=%s domains_needed=%d total_savings=%s annual_savings=%s",
		fs.Variant(), res.DomainsNeeded, res.TotalSavings.StringFixed(2), res.AnnualSavings.StringFixed(2))
	return res
}

// Compare runs one named form through the engine.
func (ce *CalculationEngine) Compare(name string, form domain.CalculatorForm) domain.Comparison {
	variant := form.Variant.OrDefault()
	offer := form.OurOffer.Offer()
	res := ce.Calculate(form.CurrentCosts, offer, variant)
	return domain.Comparison{
		Name:      name,
		Variant:   variant,
		Current:   form.CurrentCosts,
		Offer:     offer,
		Results:   res,
		Breakdown: BuildBreakdown(form.CurrentCosts, offer, res),
	}
}

// RunComparisons calculates every comparison of a validated configuration.
func (ce *CalculationEngine) RunComparisons(ctx context.Context, cfg *domain.Configuration) (*domain.SavingsReport, error) {
	if cfg == nil || len(cfg.Comparisons) == 0 {
		return nil, fmt.Errorf("no comparisons provided")
	}

	report := &domain.SavingsReport{
		GeneratedAt: nowFunc().UTC(),
		Comparisons: make([]domain.Comparison, 0, len(cfg.Comparisons)),
	}
	for i, in := range cfg.Comparisons {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("calculation stopped before comparison %d: %w", i, err)
		}
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("Comparison %d", i+1)
		}
		report.Comparisons = append(report.Comparisons, ce.Compare(name, in.Form))
	}
	ce.Logger.Infof("calculated %d comparisons", len(report.Comparisons))
	return report, nil
}

// BuildBreakdown produces the side by side monthly cost view shown next to
// the results. The offer's domain line is prorated by desired volume and is
// not rounded up to whole domains.
func BuildBreakdown(current domain.CurrentCosts, offer domain.OurOffer, res domain.CalculationResults) domain.CostBreakdown {
	return domain.CostBreakdown{
		CurrentSequencer: current.EmailSequencerCost,
		CurrentInbox:     current.TotalMonthlyCost,
		CurrentDomains:   res.CurrentDomainCost,
		CurrentTotal:     res.CurrentTotalWithDomains,

		OfferSequencer: offer.EmailSequencerCost,
		OfferInbox:     decimal.NewFromInt(res.DomainsNeeded).Mul(offer.CostPerDomain),
		OfferDomains:   offer.FlatDomainCost.Mul(offer.DesiredDailyVolume.Div(emailsPerDomain)),
		OfferTotal:     res.OurTotalCost,
	}
}

var defaultEngine = NewCalculationEngine()

// Calculate runs the default engine. See CalculationEngine.Calculate.
func Calculate(current domain.CurrentCosts, offer domain.OurOffer, variant domain.Variant) domain.CalculationResults {
	return defaultEngine.Calculate(current, offer, variant)
}
