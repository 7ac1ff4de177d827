package domain

import (
	"fmt"
	"strings"
)

// Variant selects the formula set a calculation runs with.
type Variant string

const (
	VariantInbox   Variant = "inbox"
	VariantOutlook Variant = "outlook"
)

// DefaultVariant is used when no variant is given.
const DefaultVariant = VariantInbox

var knownVariants = []Variant{VariantInbox, VariantOutlook}

// Variants returns every known variant in display order.
func Variants() []Variant {
	return append([]Variant(nil), knownVariants...)
}

// ParseVariant resolves a user supplied variant name. The empty string maps to DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return DefaultVariant, nil
	}
	for _, v := range knownVariants {
		if string(v) == n {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// OrDefault returns v, or DefaultVariant when v is empty.
func (v Variant) OrDefault() Variant {
	if v == "" {
		return DefaultVariant
	}
	return v
}

func (v Variant) String() string { return string(v) }
