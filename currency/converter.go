package currency

import (
	"github.com/goliatone/go-connectors/core"
	"github.com/shopspring/decimal"
)

type Converter struct {
	source ExponentSource
}

// NewConverter builds a converter over source. A nil source falls back to
// TableExponents without overrides.
func NewConverter(source ExponentSource) *Converter {
	if source == nil {
		source = TableExponents{}
	}
	return &Converter{source: source}
}

// NewConverterFromConfig applies the configured exponent overrides on top of
// the default tables.
func NewConverterFromConfig(cfg core.CurrencyConfig) *Converter {
	return NewConverter(NewTableExponents(cfg.ExponentOverrides))
}

func (c *Converter) shift(amount int64, code Code) (decimal.Decimal, int32, error) {
	source := c.source
	if source == nil {
		source = TableExponents{}
	}
	exponent, err := source.Exponent(code)
	if err != nil {
		return decimal.Decimal{}, 0, exponentError(err, code)
	}
	return decimal.NewFromInt(amount).Shift(-exponent), exponent, nil
}

// ToBaseUnit renders amount in major units with exactly as many fractional
// digits as the currency's exponent.
func (c *Converter) ToBaseUnit(amount int64, code Code) (string, error) {
	value, exponent, err := c.shift(amount, code)
	if err != nil {
		return "", err
	}
	return value.StringFixed(exponent), nil
}

func (c *Converter) ToBaseUnitFloat64(amount int64, code Code) (float64, error) {
	value, _, err := c.shift(amount, code)
	if err != nil {
		return 0, err
	}
	return value.InexactFloat64(), nil
}

func (c *Converter) ToBaseUnitFromOptionalAmount(amount *int64, code Code) (string, error) {
	if amount == nil {
		return "", core.MissingField("amount")
	}
	return c.ToBaseUnit(*amount, code)
}

var defaultConverter = NewConverter(TableExponents{})

func ToBaseUnit(amount int64, code Code) (string, error) {
	return defaultConverter.ToBaseUnit(amount, code)
}

func ToBaseUnitFloat64(amount int64, code Code) (float64, error) {
	return defaultConverter.ToBaseUnitFloat64(amount, code)
}

func ToBaseUnitFromOptionalAmount(amount *int64, code Code) (string, error) {
	return defaultConverter.ToBaseUnitFromOptionalAmount(amount, code)
}
