package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"add":      func(i, j int) int { return i + j },
	"headline": HeadlineFor,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SavingsReport) ([]byte, error) {
	var buf bytes.Buffer

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	data := struct {
		*domain.SavingsReport
		Recommendation Recommendation
		Assumptions    []string
	}{report, AnalyzeComparisons(report), assumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
