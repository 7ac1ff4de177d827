package decimal

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MonthsPerYear is the factor used to annualize a monthly amount.
const MonthsPerYear = 12

var monthsPerYear = decimal.NewFromInt(MonthsPerYear)

// Money is a dollar amount. Arithmetic stays exact; rounding only happens
// when the amount is displayed.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps d.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses a plain decimal string such as "11.99".
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(monthsPerYear)}
}

func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as en-US dollars with digit grouping, e.g.
// "$1,234.50" or "-$50.00". A negative amount keeps its sign even when it
// rounds to zero cents. Digits are never routed through float64.
func (m Money) Format() string {
	fixed := m.Decimal.Abs().StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	s := "$" + groupDigits(fixed[:dot]) + fixed[dot:]
	if m.Decimal.IsNegative() {
		return "-" + s
	}
	return s
}

var printer = message.NewPrinter(language.AmericanEnglish)

// groupDigits inserts thousands separators into a string of decimal digits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}
	// beyond uint64 the printer cannot group; fall back to the same separator
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
