package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
	if m.String() != "10.13" {
		t.Fatalf("display mismatch: got %s", m.String())
	}

	m2, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m2.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m2.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{"263.78", "263.78"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestAnnual(t *testing.T) {
	cases := []struct{ in, out string }{
		{"27", "324.00"},
		{"280", "3360.00"},
		{"-27", "-324.00"},
		{"263.78", "3165.36"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Annual().String(); got != c.out {
			t.Fatalf("Annual(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-50", "-$50.00"},
		{"-1234.5", "-$1,234.50"},
		{"0.005", "$0.01"},
		{"-0.001", "-$0.00"},
		{"263.78", "$263.78"},
		{"999.995", "$1,000.00"},
		{"12345678901234567.89", "$12,345,678,901,234,567.89"},
		{"-12345678901234567.891", "-$12,345,678,901,234,567.89"},
		{"1234567890123456789012345.5", "$1,234,567,890,123,456,789,012,345.50"},
		{"123456789012345678901", "$123,456,789,012,345,678,901.00"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		if err != nil {
			t.Fatalf("parse %s: %v", c.in, err)
		}
		if got := m.Format(); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
