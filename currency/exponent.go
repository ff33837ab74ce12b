package currency

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-connectors/core"
	xcurrency "golang.org/x/text/currency"
)

// Code is an ISO 4217 alphabetic currency code.
type Code string

func (c Code) Normalize() Code {
	return Code(strings.ToUpper(strings.TrimSpace(string(c))))
}

func (c Code) String() string {
	return string(c)
}

// ExponentSource supplies the minor-to-major decimal exponent for a currency.
type ExponentSource interface {
	Exponent(code Code) (int32, error)
}

var zeroDecimalCurrencies = map[Code]struct{}{
	"BIF": {},
	"CLP": {},
	"DJF": {},
	"GNF": {},
	"JPY": {},
	"KMF": {},
	"KRW": {},
	"MGA": {},
	"PYG": {},
	"RWF": {},
	"UGX": {},
	"VND": {},
	"VUV": {},
	"XAF": {},
	"XOF": {},
	"XPF": {},
}

var threeDecimalCurrencies = map[Code]struct{}{
	"BHD": {},
	"IQD": {},
	"JOD": {},
	"KWD": {},
	"LYD": {},
	"OMR": {},
	"TND": {},
}

// TableExponents resolves exponents from fixed zero and three decimal tables,
// defaulting to 2. Overrides win over the tables.
type TableExponents struct {
	Overrides map[Code]int32
}

func NewTableExponents(overrides map[string]int) TableExponents {
	if len(overrides) == 0 {
		return TableExponents{}
	}
	normalized := make(map[Code]int32, len(overrides))
	for code, exponent := range overrides {
		normalized[Code(code).Normalize()] = int32(exponent)
	}
	return TableExponents{Overrides: normalized}
}

func (t TableExponents) Exponent(code Code) (int32, error) {
	normalized, err := validateCode(code)
	if err != nil {
		return 0, err
	}
	if exponent, ok := t.Overrides[normalized]; ok {
		return exponent, nil
	}
	if _, ok := zeroDecimalCurrencies[normalized]; ok {
		return 0, nil
	}
	if _, ok := threeDecimalCurrencies[normalized]; ok {
		return 3, nil
	}
	return 2, nil
}

// CLDRExponents resolves exponents from the CLDR standard rounding data.
type CLDRExponents struct{}

func (CLDRExponents) Exponent(code Code) (int32, error) {
	normalized, err := validateCode(code)
	if err != nil {
		return 0, err
	}
	unit, err := xcurrency.ParseISO(string(normalized))
	if err != nil {
		return 0, err
	}
	scale, _ := xcurrency.Standard.Rounding(unit)
	return int32(scale), nil
}

func validateCode(code Code) (Code, error) {
	normalized := code.Normalize()
	if len(normalized) != 3 {
		return "", fmt.Errorf("currency: %q is not an ISO 4217 code", string(code))
	}
	if _, err := xcurrency.ParseISO(string(normalized)); err != nil {
		return "", fmt.Errorf("currency: %q is not a recognized ISO 4217 code: %w", string(code), err)
	}
	return normalized, nil
}

func exponentError(err error, code Code) error {
	return core.WrapError(err, core.ErrorRequestEncodingFailed, "failed to resolve currency exponent", map[string]any{
		core.MetadataSubject: string(code),
	})
}
