package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	calc "github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/config"
	"github.com/shopspring/decimal"
)

// Prints monthly savings per comparison as the desired daily volume grows,
// and the first volume at which each comparison stops saving money.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "usage: break_even_volume <comparisons-file> [max-volume]")
		return 2
	}
	maxVolume := int64(20000)
	if len(args) > 1 {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || n < 500 {
			fmt.Fprintln(stderr, "max-volume must be a number of at least 500")
			return 1
		}
		maxVolume = n
	}

	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	engine := calc.NewCalculationEngine()

	header := "DesiredDailyVolume,DomainsNeeded"
	for i := range cfg.Comparisons {
		header += fmt.Sprintf(",C%d_OurTotal,C%d_TotalSavings", i+1, i+1)
	}
	fmt.Fprintln(stdout, header)

	breakEven := make([]int64, len(cfg.Comparisons))
	for v := int64(500); v <= maxVolume; v += 500 {
		volume := decimal.NewFromInt(v)
		row := fmt.Sprintf("%d,%d", v, calc.DomainsNeeded(volume))
		for i, c := range cfg.Comparisons {
			form := c.Form
			form.OurOffer.DesiredDailyVolume = volume
			res := engine.Calculate(form.CurrentCosts, form.OurOffer.Offer(), form.Variant)
			row += fmt.Sprintf(",%s,%s", res.OurTotalCost.StringFixed(2), res.TotalSavings.StringFixed(2))
			if breakEven[i] == 0 && !res.TotalSavings.IsPositive() {
				breakEven[i] = v
			}
		}
		fmt.Fprintln(stdout, row)
	}

	fmt.Fprintln(stdout)
	for i, c := range cfg.Comparisons {
		if breakEven[i] == 0 {
			fmt.Fprintf(stdout, "%s: saves money up to %d emails/day\n", c.Name, maxVolume)
			continue
		}
		fmt.Fprintf(stdout, "%s: no savings from %d emails/day\n", c.Name, breakEven[i])
	}
	return 0
}
