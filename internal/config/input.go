package config

import (
	"fmt"
	"os"

	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads comparisons from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// rawConfiguration keeps each comparison untyped so the type phase of the
// validator can report on the values as written.
type rawConfiguration struct {
	Comparisons []map[string]any `yaml:"comparisons"`
}

// Parse decodes and validates a comparisons document. JSON is accepted as
// it is a subset of YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw rawConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(raw.Comparisons) == 0 {
		return nil, fmt.Errorf("no comparisons provided")
	}

	cfg := &domain.Configuration{Comparisons: make([]domain.ComparisonInput, 0, len(raw.Comparisons))}
	for i, entry := range raw.Comparisons {
		name, _ := entry["name"].(string)
		form, err := ip.ParseForm(entry)
		if err != nil {
			return nil, fmt.Errorf("comparison %d (%s) validation failed: %w", i, name, err)
		}
		cfg.Comparisons = append(cfg.Comparisons, domain.ComparisonInput{Name: name, Form: form})
	}
	return cfg, nil
}

// ValidateConfiguration validates an already typed configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil || len(config.Comparisons) == 0 {
		return fmt.Errorf("no comparisons provided")
	}
	for i, c := range config.Comparisons {
		if err := ip.ValidateForm(c.Form); err != nil {
			return fmt.Errorf("comparison %d (%s) validation failed: %w", i, c.Name, err)
		}
	}
	return nil
}

// DefaultForm returns the prefilled form for a variant.
func DefaultForm(v domain.Variant) domain.CalculatorForm {
	form := domain.CalculatorForm{
		Variant: v.OrDefault(),
		CurrentCosts: domain.CurrentCosts{
			EmailSequencerCost: decimal.NewFromInt(97),
			EmailSequencerName: "Instantly",
			DailyEmailVolume:   decimal.NewFromInt(2000),
			NumberOfDomains:    decimal.NewFromInt(22),
			DomainCost:         decimal.RequireFromString("11.99"),
			TotalMonthlyCost:   decimal.NewFromInt(400),
		},
		OurOffer: domain.OfferInput{
			EmailSequencerCost: decimal.NewFromInt(70),
			DesiredDailyVolume: decimal.NewFromInt(2000),
			CostPerDomain:      decimal.NewFromInt(30),
			CostForDomains:     decimal.RequireFromString("11.99"),
		},
	}
	if v == domain.VariantOutlook {
		form.CurrentCosts.NumberOfDomains = decimal.NewFromInt(23)
		form.OurOffer.CostPerDomain = decimal.NewFromInt(60)
	}
	return form
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	existing := DefaultForm(domain.VariantInbox)
	existing.OurOffer.UseExistingDomains = true
	existing.OurOffer.CostForDomains = decimal.Zero
	existing.OurOffer.FreeDomainCount = decimal.NewFromInt(2)

	return &domain.Configuration{
		Comparisons: []domain.ComparisonInput{
			{Name: "Google Workspace inboxes", Form: DefaultForm(domain.VariantInbox)},
			{Name: "Outlook inboxes", Form: DefaultForm(domain.VariantOutlook)},
			{Name: "Bring your own domains", Form: existing},
		},
	}
}

// SaveConfiguration writes a configuration as YAML. Amounts are written as
// plain numbers so the file loads back through Parse.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	doc := fileDocument{Comparisons: make([]FormDocument, 0, len(config.Comparisons))}
	for _, c := range config.Comparisons {
		doc.Comparisons = append(doc.Comparisons, NewFormDocument(c.Name, c.Form))
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

type fileDocument struct {
	Comparisons []FormDocument `yaml:"comparisons"`
}

// FormDocument is a form as plain numbers, the shape ParseForm accepts.
type FormDocument struct {
	Name         string          `yaml:"name,omitempty" json:"name,omitempty"`
	Variant      string          `yaml:"variant,omitempty" json:"variant,omitempty"`
	CurrentCosts CurrentDocument `yaml:"currentCosts" json:"currentCosts"`
	OurOffer     OfferDocument   `yaml:"ourOffer" json:"ourOffer"`
}

type CurrentDocument struct {
	EmailSequencerCost float64 `yaml:"emailSequencerCost" json:"emailSequencerCost"`
	EmailSequencerName string  `yaml:"emailSequencerName" json:"emailSequencerName"`
	DailyEmailVolume   float64 `yaml:"dailyEmailVolume" json:"dailyEmailVolume"`
	NumberOfDomains    float64 `yaml:"numberOfDomains" json:"numberOfDomains"`
	DomainCost         float64 `yaml:"domainCost" json:"domainCost"`
	TotalMonthlyCost   float64 `yaml:"totalMonthlyCost" json:"totalMonthlyCost"`
}

type OfferDocument struct {
	EmailSequencerCost float64  `yaml:"emailSequencerCost" json:"emailSequencerCost"`
	DesiredDailyVolume float64  `yaml:"desiredDailyVolume" json:"desiredDailyVolume"`
	CostPerDomain      float64  `yaml:"costPerDomain" json:"costPerDomain"`
	UseExistingDomains bool     `yaml:"useExistingDomains" json:"useExistingDomains"`
	CostForDomains     float64  `yaml:"costForDomains" json:"costForDomains"`
	FreeDomainCount    *float64 `yaml:"freeDomainCount,omitempty" json:"freeDomainCount,omitempty"`
}

// NewFormDocument converts a typed form back to its document shape.
func NewFormDocument(name string, form domain.CalculatorForm) FormDocument {
	cur, off := form.CurrentCosts, form.OurOffer
	doc := FormDocument{
		Name:    name,
		Variant: string(form.Variant),
		CurrentCosts: CurrentDocument{
			EmailSequencerCost: cur.EmailSequencerCost.InexactFloat64(),
			EmailSequencerName: cur.EmailSequencerName,
			DailyEmailVolume:   cur.DailyEmailVolume.InexactFloat64(),
			NumberOfDomains:    cur.NumberOfDomains.InexactFloat64(),
			DomainCost:         cur.DomainCost.InexactFloat64(),
			TotalMonthlyCost:   cur.TotalMonthlyCost.InexactFloat64(),
		},
		OurOffer: OfferDocument{
			EmailSequencerCost: off.EmailSequencerCost.InexactFloat64(),
			DesiredDailyVolume: off.DesiredDailyVolume.InexactFloat64(),
			CostPerDomain:      off.CostPerDomain.InexactFloat64(),
			UseExistingDomains: off.UseExistingDomains,
			CostForDomains:     off.CostForDomains.InexactFloat64(),
		},
	}
	if !off.FreeDomainCount.IsZero() {
		n := off.FreeDomainCount.InexactFloat64()
		doc.OurOffer.FreeDomainCount = &n
	}
	return doc
}

// Raw returns the document as the untyped map ParseForm consumes.
func (d FormDocument) Raw() map[string]any {
	current := map[string]any{
		"emailSequencerCost": d.CurrentCosts.EmailSequencerCost,
		"emailSequencerName": d.CurrentCosts.EmailSequencerName,
		"dailyEmailVolume":   d.CurrentCosts.DailyEmailVolume,
		"numberOfDomains":    d.CurrentCosts.NumberOfDomains,
		"domainCost":         d.CurrentCosts.DomainCost,
		"totalMonthlyCost":   d.CurrentCosts.TotalMonthlyCost,
	}
	offer := map[string]any{
		"emailSequencerCost": d.OurOffer.EmailSequencerCost,
		"desiredDailyVolume": d.OurOffer.DesiredDailyVolume,
		"costPerDomain":      d.OurOffer.CostPerDomain,
		"useExistingDomains": d.OurOffer.UseExistingDomains,
		"costForDomains":     d.OurOffer.CostForDomains,
	}
	if d.OurOffer.FreeDomainCount != nil {
		offer["freeDomainCount"] = *d.OurOffer.FreeDomainCount
	}
	raw := map[string]any{"currentCosts": current, "ourOffer": offer}
	if d.Name != "" {
		raw["name"] = d.Name
	}
	if d.Variant != "" {
		raw["variant"] = d.Variant
	}
	return raw
}
