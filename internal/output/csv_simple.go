package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per comparison).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SavingsReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Comparison", "Variant", "DomainsNeeded", "CurrentTotalRecurring", "CurrentDomainCost", "OurTotalCost", "SequencerSavings", "EmailInboxSavings", "EmailInboxSavingsPercentage", "DomainSavings", "TotalSavings", "TotalSavingsPercentage", "AnnualSavings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	comparisons := append([]domain.Comparison(nil), report.Comparisons...)
	sort.SliceStable(comparisons, func(i, j int) bool { return comparisons[i].Name < comparisons[j].Name })
	for _, cmp := range comparisons {
		r := cmp.Results
		row := []string{
			cmp.Name,
			cmp.Variant.OrDefault().String(),
			strconv.FormatInt(r.DomainsNeeded, 10),
			r.CurrentTotalRecurring.StringFixed(2),
			r.CurrentDomainCost.StringFixed(2),
			r.OurTotalCost.StringFixed(2),
			r.SequencerSavings.StringFixed(2),
			r.EmailInboxSavings.StringFixed(2),
			r.EmailInboxSavingsPercentage.StringFixed(2),
			r.DomainSavings.StringFixed(2),
			r.TotalSavings.StringFixed(2),
			r.TotalSavingsPercentage.StringFixed(2),
			r.AnnualSavings.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
