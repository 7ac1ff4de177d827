package cli

import (
	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/inboxsavings/savings-calculator/internal/output"
	"github.com/spf13/cobra"
)

type floatFlag struct {
	name  string
	usage string
	dst   func(d *config.FormDocument) *float64
}

var quickFloatFlags = []floatFlag{
	{"current-sequencer-cost", "Current monthly sequencer cost", func(d *config.FormDocument) *float64 { return &d.CurrentCosts.EmailSequencerCost }},
	{"daily-volume", "Current daily email volume", func(d *config.FormDocument) *float64 { return &d.CurrentCosts.DailyEmailVolume }},
	{"domains", "Current number of domains", func(d *config.FormDocument) *float64 { return &d.CurrentCosts.NumberOfDomains }},
	{"domain-cost", "Current cost per domain per month", func(d *config.FormDocument) *float64 { return &d.CurrentCosts.DomainCost }},
	{"inbox-cost", "Current total monthly inbox/infrastructure cost", func(d *config.FormDocument) *float64 { return &d.CurrentCosts.TotalMonthlyCost }},
	{"offer-sequencer-cost", "Offered monthly sequencer cost", func(d *config.FormDocument) *float64 { return &d.OurOffer.EmailSequencerCost }},
	{"desired-volume", "Desired daily email volume", func(d *config.FormDocument) *float64 { return &d.OurOffer.DesiredDailyVolume }},
	{"cost-per-domain", "Offered cost per 500 emails/day", func(d *config.FormDocument) *float64 { return &d.OurOffer.CostPerDomain }},
	{"cost-for-domains", "Flat cost of domains", func(d *config.FormDocument) *float64 { return &d.OurOffer.CostForDomains }},
}

func quickCmd(a *app) *cobra.Command {
	var variant, name, sequencerName, format, out string
	var useExisting bool
	var freeDomains float64

	c := &cobra.Command{
		Use:   "quick",
		Short: "Calculate one comparison from the variant defaults and flag overrides",
		Long: `Calculate one comparison from the variant defaults and flag overrides.

Flags left unset take their value from the --variant preset. The defaults
shown below are the inbox preset; the outlook preset differs in --domains
and --cost-per-domain.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.LookupFormatter(format)
			if err != nil {
				return err
			}
			v, err := domain.ParseVariant(variant)
			if err != nil {
				return err
			}

			doc := config.NewFormDocument(name, config.DefaultForm(v))
			flags := cmd.Flags()
			for _, ff := range quickFloatFlags {
				if flags.Changed(ff.name) {
					val, _ := flags.GetFloat64(ff.name)
					*ff.dst(&doc) = val
				}
			}
			if flags.Changed("sequencer-name") {
				doc.CurrentCosts.EmailSequencerName = sequencerName
			}
			if flags.Changed("use-existing-domains") {
				doc.OurOffer.UseExistingDomains = useExisting
			}
			if flags.Changed("free-domains") {
				doc.OurOffer.FreeDomainCount = &freeDomains
			}

			form, err := config.NewInputParser().ParseForm(doc.Raw())
			if err != nil {
				return err
			}
			cfg := &domain.Configuration{Comparisons: []domain.ComparisonInput{{Name: name, Form: form}}}
			report, err := a.engine.RunComparisons(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd, a, report, f, out, "")
		},
	}

	c.Flags().StringVar(&variant, "variant", "", "Calculator variant (inbox, outlook)")
	c.Flags().StringVar(&name, "name", "Quick comparison", "Comparison name")
	preset := config.NewFormDocument("", config.DefaultForm(domain.DefaultVariant))
	c.Flags().StringVar(&sequencerName, "sequencer-name", preset.CurrentCosts.EmailSequencerName, "Current sequencer name")
	for _, ff := range quickFloatFlags {
		c.Flags().Float64(ff.name, *ff.dst(&preset), ff.usage)
	}
	c.Flags().BoolVar(&useExisting, "use-existing-domains", false, "Use the customer's existing domains")
	c.Flags().Float64Var(&freeDomains, "free-domains", 0, "Existing domains subtracted from the domains needed")
	c.Flags().StringVarP(&format, "format", "f", "console", "Output format")
	c.Flags().StringVarP(&out, "output", "o", "", "Write the report to this file instead of stdout")
	return c
}
