package config

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inboxsavings/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	numberField fieldKind = iota
	stringField
	boolField
)

// formField describes one input key the form parser knows about.
type formField struct {
	group    string // "currentCosts" or "ourOffer"
	key      string
	aliases  []string
	kind     fieldKind
	optional bool
	assign   func(f *domain.CalculatorForm, v any)
}

func (ff formField) path() string { return ff.group + "." + ff.key }

func setNumber(dst func(f *domain.CalculatorForm) *decimal.Decimal) func(*domain.CalculatorForm, any) {
	return func(f *domain.CalculatorForm, v any) { *dst(f) = v.(decimal.Decimal) }
}

// formFields lists every field in declaration order; errors are reported in this order.
var formFields = []formField{
	{group: "currentCosts", key: "emailSequencerCost", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.CurrentCosts.EmailSequencerCost })},
	{group: "currentCosts", key: "emailSequencerName", kind: stringField,
		assign: func(f *domain.CalculatorForm, v any) { f.CurrentCosts.EmailSequencerName = v.(string) }},
	{group: "currentCosts", key: "dailyEmailVolume", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.CurrentCosts.DailyEmailVolume })},
	{group: "currentCosts", key: "numberOfDomains", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.CurrentCosts.NumberOfDomains })},
	{group: "currentCosts", key: "domainCost", aliases: []string{"domainCostPerMonth"}, kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.CurrentCosts.DomainCost })},
	{group: "currentCosts", key: "totalMonthlyCost", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.CurrentCosts.TotalMonthlyCost })},
	{group: "ourOffer", key: "emailSequencerCost", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.OurOffer.EmailSequencerCost })},
	{group: "ourOffer", key: "desiredDailyVolume", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.OurOffer.DesiredDailyVolume })},
	{group: "ourOffer", key: "costPerDomain", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.OurOffer.CostPerDomain })},
	{group: "ourOffer", key: "useExistingDomains", kind: boolField,
		assign: func(f *domain.CalculatorForm, v any) { f.OurOffer.UseExistingDomains = v.(bool) }},
	{group: "ourOffer", key: "costForDomains", kind: numberField,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.OurOffer.CostForDomains })},
	{group: "ourOffer", key: "freeDomainCount", kind: numberField, optional: true,
		assign: setNumber(func(f *domain.CalculatorForm) *decimal.Decimal { return &f.OurOffer.FreeDomainCount })},
}

// fieldMessages are the range violation messages shown to users, keyed by field path.
var fieldMessages = map[string]string{
	"currentCosts.emailSequencerCost": "Email sequencer cost must be 0 or greater",
	"currentCosts.emailSequencerName": "Email sequencer name is required",
	"currentCosts.dailyEmailVolume":   "Daily email volume must be at least 1",
	"currentCosts.numberOfDomains":    "Number of domains must be 0 or greater",
	"currentCosts.domainCost":         "Domain cost per month must be 0 or greater",
	"currentCosts.totalMonthlyCost":   "Total monthly cost (inbox/infrastructure) must be 0 or greater",
	"ourOffer.emailSequencerCost":     "Email sequencer cost must be 0 or greater",
	"ourOffer.desiredDailyVolume":     "Desired daily volume must be at least 1",
	"ourOffer.costPerDomain":          "Cost per domain must be 0 or greater",
	"ourOffer.costForDomains":         "Cost of domains must be 0 or greater",
	"ourOffer.freeDomainCount":        "Free domain count must be 0 or greater",
}

const variantPath = "variant"

var fieldOrder = func() map[string]int {
	order := map[string]int{variantPath: 0}
	for i, ff := range formFields {
		if _, ok := order[ff.group]; !ok {
			order[ff.group] = i + 1
		}
		order[ff.path()] = i + 1
	}
	return order
}()

func sortFieldErrors(errs domain.ValidationErrors) {
	sort.SliceStable(errs, func(i, j int) bool {
		return fieldOrder[errs[i].Field] < fieldOrder[errs[j].Field]
	})
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Decimals reach the validators as their exact string form so that range
	// checks never round through float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("dgte", decimalGTE); err != nil {
		panic(err)
	}
	return v
}

// decimalGTE implements the dgte tag: the field, a decimal, must be greater
// than or equal to the tag parameter.
func decimalGTE(fl validator.FieldLevel) bool {
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("dgte: bad parameter %q", fl.Param()))
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(bound)
}

// ValidateForm checks the numeric ranges and required values of a typed
// form. Every offending field is reported, not only the first.
func (ip *InputParser) ValidateForm(form domain.CalculatorForm) error {
	var errs domain.ValidationErrors
	if form.Variant != "" {
		if _, err := domain.ParseVariant(string(form.Variant)); err != nil {
			errs = append(errs, variantError())
		}
	}
	errs = append(errs, rangeErrors(form)...)
	if len(errs) == 0 {
		return nil
	}
	sortFieldErrors(errs)
	return errs
}

func rangeErrors(form domain.CalculatorForm) domain.ValidationErrors {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ValidationErrors{{Field: "form", Message: err.Error()}}
	}
	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		// drop the root struct name
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		msg, ok := fieldMessages[path]
		if !ok {
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		out = append(out, domain.ValidationError{Field: path, Message: msg})
	}
	return out
}

func variantError() domain.ValidationError {
	names := make([]string, 0, len(domain.Variants()))
	for _, v := range domain.Variants() {
		names = append(names, v.String())
	}
	return domain.ValidationError{
		Field:   variantPath,
		Message: "Variant must be one of " + strings.Join(names, ", "),
	}
}

// ParseForm converts a decoded JSON or YAML document into a validated
// CalculatorForm. Type problems (missing values, strings where numbers are
// expected) and range problems are collected together, one error per field.
func (ip *InputParser) ParseForm(raw map[string]any) (domain.CalculatorForm, error) {
	var form domain.CalculatorForm
	var errs domain.ValidationErrors
	failed := make(map[string]bool)

	if v, ok := raw[variantPath]; ok && v != nil {
		s, isString := v.(string)
		variant, err := domain.ParseVariant(s)
		if !isString || err != nil {
			errs = append(errs, variantError())
			failed[variantPath] = true
		} else {
			form.Variant = variant
		}
	}

	groups := make(map[string]map[string]any)
	for _, group := range []string{"currentCosts", "ourOffer"} {
		v, ok := raw[group]
		if !ok {
			errs = append(errs, domain.ValidationError{Field: group, Message: "Required"})
			failed[group] = true
			continue
		}
		m, ok := asObject(v)
		if !ok {
			errs = append(errs, domain.ValidationError{Field: group, Message: "Expected object, received " + typeName(v)})
			failed[group] = true
			continue
		}
		groups[group] = m
	}

	for _, ff := range formFields {
		m, ok := groups[ff.group]
		if !ok {
			failed[ff.path()] = true
			continue
		}
		v, present := lookup(m, ff.key, ff.aliases)
		if !present {
			if !ff.optional {
				errs = append(errs, domain.ValidationError{Field: ff.path(), Message: "Required"})
				failed[ff.path()] = true
			}
			continue
		}
		val, msg := coerce(ff.kind, v)
		if msg != "" {
			errs = append(errs, domain.ValidationError{Field: ff.path(), Message: msg})
			failed[ff.path()] = true
			continue
		}
		ff.assign(&form, val)
	}

	for _, e := range rangeErrors(form) {
		if !failed[e.Field] {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		sortFieldErrors(errs)
		return domain.CalculatorForm{}, errs
	}
	return form, nil
}

// ParseDesiredVolume validates a desired daily volume entered on its own,
// as for a live domains preview.
func (ip *InputParser) ParseDesiredVolume(s string) (decimal.Decimal, error) {
	const path = "ourOffer.desiredDailyVolume"
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, domain.ValidationErrors{{Field: path, Message: "Required"}}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ValidationErrors{{Field: path, Message: "Expected number, received string"}}
	}
	if v.LessThan(decimal.NewFromInt(1)) {
		return decimal.Zero, domain.ValidationErrors{{Field: path, Message: fieldMessages[path]}}
	}
	return v, nil
}

func lookup(m map[string]any, key string, aliases []string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for _, a := range aliases {
		if v, ok := m[a]; ok {
			return v, true
		}
	}
	return nil, false
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// coerce converts v to the Go value of kind, or returns a user facing message.
func coerce(kind fieldKind, v any) (any, string) {
	switch kind {
	case numberField:
		d, ok := toDecimal(v)
		if !ok {
			if f, isFloat := v.(float64); isFloat && (math.IsNaN(f) || math.IsInf(f, 0)) {
				return nil, "Expected a finite number"
			}
			return nil, "Expected number, received " + typeName(v)
		}
		return d, ""
	case stringField:
		s, ok := v.(string)
		if !ok {
			return nil, "Expected string, received " + typeName(v)
		}
		return s, ""
	case boolField:
		b, ok := v.(bool)
		if !ok {
			return nil, "Expected boolean, received " + typeName(v)
		}
		return b, ""
	}
	return nil, "Unsupported field"
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		return toDecimal(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case decimal.Decimal:
		return n, true
	case interface{ String() string }:
		// json.Number from decoders configured with UseNumber
		if _, isNumber := v.(interface{ Float64() (float64, error) }); isNumber {
			d, err := decimal.NewFromString(n.String())
			return d, err == nil
		}
	}
	return decimal.Zero, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, uint64:
		return "number"
	case map[string]any, map[any]any:
		return "object"
	case []any:
		return "array"
	case interface{ Float64() (float64, error) }:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
