package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", VariantInbox, false},
		{"inbox", VariantInbox, false},
		{" Outlook ", VariantOutlook, false},
		{"gmail", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestVariantOrDefault(t *testing.T) {
	assert.Equal(t, VariantInbox, Variant("").OrDefault())
	assert.Equal(t, VariantOutlook, VariantOutlook.OrDefault())
	assert.Equal(t, []Variant{VariantInbox, VariantOutlook}, Variants())
}

func TestOfferInputWithoutExistingDomains(t *testing.T) {
	in := OfferInput{
		EmailSequencerCost: decimal.NewFromInt(70),
		DesiredDailyVolume: decimal.NewFromInt(2000),
		CostPerDomain:      decimal.NewFromInt(30),
		CostForDomains:     decimal.NewFromFloat(11.99),
		FreeDomainCount:    decimal.NewFromInt(3),
	}
	offer := in.Offer()
	assert.True(t, offer.FlatDomainCost.Equal(decimal.NewFromFloat(11.99)))
	assert.True(t, offer.FreeDomainCount.IsZero(), "free domains only apply to existing domains")
	assert.False(t, offer.UseExistingDomains)
}

func TestOfferInputWithExistingDomains(t *testing.T) {
	in := OfferInput{
		DesiredDailyVolume: decimal.NewFromInt(2000),
		CostPerDomain:      decimal.NewFromInt(30),
		UseExistingDomains: true,
		CostForDomains:     decimal.NewFromFloat(11.99),
		FreeDomainCount:    decimal.NewFromInt(2),
	}
	offer := in.Offer()
	assert.True(t, offer.FlatDomainCost.IsZero(), "costForDomains is forced to zero")
	assert.True(t, offer.FreeDomainCount.Equal(decimal.NewFromInt(2)))
	assert.True(t, offer.UseExistingDomains)
}

func TestValidationErrors(t *testing.T) {
	ve := ValidationErrors{
		{Field: "currentCosts.dailyEmailVolume", Message: "Daily email volume must be at least 1"},
		{Field: "ourOffer.costPerDomain", Message: "Cost per domain must be 0 or greater"},
	}
	assert.Equal(t, "currentCosts.dailyEmailVolume: Daily email volume must be at least 1; ourOffer.costPerDomain: Cost per domain must be 0 or greater", ve.Error())

	msg, ok := ve.Field("ourOffer.costPerDomain")
	assert.True(t, ok)
	assert.Equal(t, "Cost per domain must be 0 or greater", msg)
	_, ok = ve.Field("variant")
	assert.False(t, ok)

	wrapped := fmt.Errorf("comparison 0 validation failed: %w", ve)
	got, ok := AsValidationErrors(wrapped)
	require.True(t, ok)
	assert.Len(t, got, 2)

	_, ok = AsValidationErrors(errors.New("plain"))
	assert.False(t, ok)
}
