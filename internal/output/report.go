package output

import (
	"github.com/inboxsavings/savings-calculator/internal/domain"
)

// GenerateReport renders report with the named formatter into a timestamped
// file in dir and returns the file name.
func GenerateReport(report *domain.SavingsReport, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, withAssumptions(report), dir)
}

// Render formats report with the named formatter.
func Render(report *domain.SavingsReport, format string) ([]byte, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(withAssumptions(report))
}

// withAssumptions fills in the assumption lines when the caller left them empty.
func withAssumptions(report *domain.SavingsReport) *domain.SavingsReport {
	if report == nil || len(report.Assumptions) > 0 {
		return report
	}
	cp := *report
	cp.Assumptions = GenerateAssumptions(report)
	return &cp
}
