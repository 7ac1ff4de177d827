package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(d(want)), "%s: got %s, want %s", field, got.String(), want)
}

func scenarioCurrent() domain.CurrentCosts {
	return domain.CurrentCosts{
		EmailSequencerCost: d("97"),
		EmailSequencerName: "Instantly",
		DailyEmailVolume:   d("2000"),
		NumberOfDomains:    d("22"),
		DomainCost:         d("11.99"),
		TotalMonthlyCost:   d("400"),
	}
}

func scenarioOfferInput() domain.OfferInput {
	return domain.OfferInput{
		EmailSequencerCost: d("70"),
		DesiredDailyVolume: d("2000"),
		CostPerDomain:      d("30"),
		UseExistingDomains: false,
		CostForDomains:     d("11.99"),
	}
}

func TestCalculate_ScenarioA_NewDomains(t *testing.T) {
	res := Calculate(scenarioCurrent(), scenarioOfferInput().Offer(), domain.VariantInbox)

	assert.Equal(t, int64(4), res.DomainsNeeded)
	assertDecimal(t, "97", res.CurrentSequencerCost, "currentSequencerCost")
	assertDecimal(t, "263.78", res.CurrentDomainCost, "currentDomainCost")
	assertDecimal(t, "497", res.CurrentTotalRecurring, "currentTotalRecurring")
	assertDecimal(t, "760.78", res.CurrentTotalWithDomains, "currentTotalWithDomains")
	assertDecimal(t, "70", res.OurSequencerCost, "ourSequencerCost")
	assertDecimal(t, "120", res.OurDomainCost, "ourDomainCost")
	assertDecimal(t, "190", res.OurTotalCost, "ourTotalCost")
	assertDecimal(t, "27", res.SequencerSavings, "sequencerSavings")
	assertDecimal(t, "324", res.SequencerAnnualSavings, "sequencerAnnualSavings")
	assertDecimal(t, "280", res.EmailInboxSavings, "emailInboxSavings")
	assertDecimal(t, "3360", res.EmailInboxAnnualSavings, "emailInboxAnnualSavings")
	assertDecimal(t, "70", res.EmailInboxSavingsPercentage, "emailInboxSavingsPercentage")
	assertDecimal(t, "251.79", res.DomainSavings, "domainSavings")
	assertDecimal(t, "3021.48", res.DomainAnnualSavings, "domainAnnualSavings")
	assertDecimal(t, "307", res.TotalSavings, "totalSavings")
	assert.Equal(t, "61.77", res.TotalSavingsPercentage.StringFixed(2))
	// sequencer and inbox annualized, domain savings added as a monthly figure
	assertDecimal(t, "3935.79", res.AnnualSavings, "annualSavings")
}

func TestCalculate_ScenarioB_ExistingDomains(t *testing.T) {
	in := scenarioOfferInput()
	in.UseExistingDomains = true
	a := Calculate(scenarioCurrent(), scenarioOfferInput().Offer(), domain.VariantInbox)
	b := Calculate(scenarioCurrent(), in.Offer(), domain.VariantInbox)

	assertDecimal(t, "120", b.OurDomainCost, "ourDomainCost")
	assertDecimal(t, "263.78", b.DomainSavings, "domainSavings with costForDomains forced to 0")
	assert.True(t, a.SequencerSavings.Equal(b.SequencerSavings))
	assert.True(t, a.EmailInboxSavings.Equal(b.EmailInboxSavings))
	assert.True(t, a.TotalSavings.Equal(b.TotalSavings))
	assert.True(t, a.TotalSavingsPercentage.Equal(b.TotalSavingsPercentage))
}

func TestCalculate_ExistingDomainsSubtractFreeDomains(t *testing.T) {
	offer := scenarioOfferInput().Offer()
	offer.UseExistingDomains = true
	offer.FlatDomainCost = decimal.Zero

	offer.FreeDomainCount = d("3")
	res := Calculate(scenarioCurrent(), offer, domain.VariantInbox)
	assertDecimal(t, "30", res.OurDomainCost, "one billable domain")
	assertDecimal(t, "100", res.OurTotalCost, "ourTotalCost")
	// inbox savings always price every needed domain
	assertDecimal(t, "280", res.EmailInboxSavings, "emailInboxSavings")

	offer.FreeDomainCount = d("10")
	res = Calculate(scenarioCurrent(), offer, domain.VariantInbox)
	assertDecimal(t, "0", res.OurDomainCost, "clamped at zero")
}

func TestCalculate_ZeroDivisorsGiveZeroPercentages(t *testing.T) {
	current := domain.CurrentCosts{
		EmailSequencerName: "None",
		DailyEmailVolume:   d("1"),
		NumberOfDomains:    d("3"),
		DomainCost:         d("10"),
	}
	offer := domain.OurOffer{
		EmailSequencerCost: d("50"),
		DesiredDailyVolume: d("1500"),
		CostPerDomain:      d("30"),
	}
	res := Calculate(current, offer, domain.VariantInbox)

	assert.True(t, res.EmailInboxSavingsPercentage.IsZero())
	assert.True(t, res.TotalSavingsPercentage.IsZero())
	// numerators are still non-zero and negative
	assertDecimal(t, "-90", res.EmailInboxSavings, "emailInboxSavings")
	assertDecimal(t, "-140", res.TotalSavings, "totalSavings")
}

func TestCalculate_PercentageNonZeroWhenDivisorPositive(t *testing.T) {
	current := scenarioCurrent()
	current.EmailSequencerCost = decimal.Zero
	current.TotalMonthlyCost = d("0.01")
	res := Calculate(current, scenarioOfferInput().Offer(), domain.VariantInbox)
	assert.False(t, res.EmailInboxSavingsPercentage.IsZero())
	assert.False(t, res.TotalSavingsPercentage.IsZero())
}

func TestCalculate_NegativeSavings(t *testing.T) {
	current := scenarioCurrent()
	current.EmailSequencerCost = d("20")
	current.TotalMonthlyCost = d("50")
	res := Calculate(current, scenarioOfferInput().Offer(), domain.VariantInbox)

	assertDecimal(t, "-50", res.SequencerSavings, "sequencerSavings")
	assertDecimal(t, "-70", res.EmailInboxSavings, "emailInboxSavings")
	assertDecimal(t, "-140", res.EmailInboxSavingsPercentage, "emailInboxSavingsPercentage")
	assertDecimal(t, "-120", res.TotalSavings, "totalSavings")
}

func TestCalculate_Idempotent(t *testing.T) {
	offer := scenarioOfferInput().Offer()
	first := Calculate(scenarioCurrent(), offer, domain.VariantOutlook)
	second := Calculate(scenarioCurrent(), offer, domain.VariantOutlook)
	assert.Equal(t, first, second)
}

func TestDomainsNeeded(t *testing.T) {
	tests := []struct {
		volume string
		want   int64
	}{
		{"1", 1},
		{"499", 1},
		{"500", 1},
		{"501", 2},
		{"2000", 4},
		{"2000.5", 5},
		{"10000", 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DomainsNeeded(d(tt.volume)), tt.volume)
	}

	for v := int64(1); v <= 5000; v += 7 {
		got := DomainsNeeded(decimal.NewFromInt(v))
		require.GreaterOrEqual(t, got, int64(1))
		require.Equal(t, (v+domain.EmailsPerDomain-1)/domain.EmailsPerDomain, got, "volume %d", v)
	}
}

func TestPreviewDomains(t *testing.T) {
	n, ok := PreviewDomains(d("1200"))
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)

	for _, v := range []string{"0", "0.5", "-10"} {
		_, ok := PreviewDomains(d(v))
		assert.False(t, ok, v)
	}
}

func TestOutlookUsesStandardFormulas(t *testing.T) {
	current := scenarioCurrent()
	current.NumberOfDomains = d("23")
	offer := scenarioOfferInput()
	offer.CostPerDomain = d("60")

	inbox := Calculate(current, offer.Offer(), domain.VariantInbox)
	outlook := Calculate(current, offer.Offer(), domain.VariantOutlook)
	assert.Equal(t, inbox, outlook)
	assertDecimal(t, "240", outlook.OurDomainCost, "ourDomainCost")
	assertDecimal(t, "160", outlook.EmailInboxSavings, "emailInboxSavings")
	assertDecimal(t, "275.77", outlook.CurrentDomainCost, "currentDomainCost")
}

type doubledSequencer struct{ StandardFormulas }

func (doubledSequencer) Variant() domain.Variant { return "doubled" }

func (f doubledSequencer) Calculate(current domain.CurrentCosts, offer domain.OurOffer) domain.CalculationResults {
	offer.EmailSequencerCost = offer.EmailSequencerCost.Mul(decimal.NewFromInt(2))
	return f.StandardFormulas.Calculate(current, offer)
}

func TestRegisterVariantLeavesDefaultUntouched(t *testing.T) {
	ce := NewCalculationEngine()
	ce.Register(doubledSequencer{})

	offer := scenarioOfferInput().Offer()
	std := ce.Calculate(scenarioCurrent(), offer, domain.VariantInbox)
	dbl := ce.Calculate(scenarioCurrent(), offer, "doubled")

	assertDecimal(t, "27", std.SequencerSavings, "standard sequencerSavings")
	assertDecimal(t, "-43", dbl.SequencerSavings, "doubled sequencerSavings")
}

func TestUnknownVariantFallsBackAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ce := NewCalculationEngine()
	ce.SetLogger(zap.New(core).Sugar())

	offer := scenarioOfferInput().Offer()
	got := ce.Calculate(scenarioCurrent(), offer, "gmail")
	want := ce.Calculate(scenarioCurrent(), offer, domain.VariantInbox)

	assert.Equal(t, want, got)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, `variant "gmail"`)
}

func TestSetLoggerNil(t *testing.T) {
	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestBuildBreakdown(t *testing.T) {
	offer := scenarioOfferInput().Offer()
	res := Calculate(scenarioCurrent(), offer, domain.VariantInbox)
	b := BuildBreakdown(scenarioCurrent(), offer, res)

	assertDecimal(t, "97", b.CurrentSequencer, "currentSequencer")
	assertDecimal(t, "400", b.CurrentInbox, "currentInbox")
	assertDecimal(t, "263.78", b.CurrentDomains, "currentDomains")
	assertDecimal(t, "760.78", b.CurrentTotal, "currentTotal")
	assertDecimal(t, "70", b.OfferSequencer, "offerSequencer")
	assertDecimal(t, "120", b.OfferInbox, "offerInbox")
	assertDecimal(t, "47.96", b.OfferDomains, "offerDomains")
	assertDecimal(t, "190", b.OfferTotal, "offerTotal")

	offer.DesiredDailyVolume = d("750")
	res = Calculate(scenarioCurrent(), offer, domain.VariantInbox)
	b = BuildBreakdown(scenarioCurrent(), offer, res)
	assertDecimal(t, "17.985", b.OfferDomains, "prorated, not rounded up")
	assertDecimal(t, "60", b.OfferInbox, "two domains")
}

func TestRunComparisons(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	orig := nowFunc
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = orig }()

	existing := scenarioOfferInput()
	existing.UseExistingDomains = true
	cfg := &domain.Configuration{Comparisons: []domain.ComparisonInput{
		{Name: "Acme", Form: domain.CalculatorForm{CurrentCosts: scenarioCurrent(), OurOffer: scenarioOfferInput()}},
		{Form: domain.CalculatorForm{Variant: domain.VariantOutlook, CurrentCosts: scenarioCurrent(), OurOffer: existing}},
	}}

	report, err := NewCalculationEngine().RunComparisons(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Comparisons, 2)
	assert.Equal(t, fixed, report.GeneratedAt)

	first := report.Comparisons[0]
	assert.Equal(t, "Acme", first.Name)
	assert.Equal(t, domain.VariantInbox, first.Variant)
	assertDecimal(t, "251.79", first.Results.DomainSavings, "domainSavings")

	second := report.Comparisons[1]
	assert.Equal(t, "Comparison 2", second.Name)
	assert.Equal(t, domain.VariantOutlook, second.Variant)
	assert.True(t, second.Offer.FlatDomainCost.IsZero())
	assertDecimal(t, "263.78", second.Results.DomainSavings, "domainSavings")
}

func TestRunComparisons_Errors(t *testing.T) {
	ce := NewCalculationEngine()
	_, err := ce.RunComparisons(context.Background(), &domain.Configuration{})
	assert.EqualError(t, err, "no comparisons provided")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &domain.Configuration{Comparisons: []domain.ComparisonInput{{Name: "x"}}}
	_, err = ce.RunComparisons(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}
