package currency

import (
	"errors"
	"strings"
)

// ReferenceCurrency is the settlement currency used for budget bookkeeping.
const ReferenceCurrency = "RUB"

var ErrRateUnavailable = errors.New("exchange rate unavailable")

type Converter interface {
	Convert(amount float64, from, to string) (float64, error)
}

// Fixed exchange rates, loaded once and read-only afterwards.
// A real deployment would refresh these from an external API.
var defaultRates = map[string]map[string]float64{
	"RUB": {
		"RUB": 1.0,
		"USD": 1 / 90.0,
		"EUR": 1 / 100.0,
		"GBP": 1 / 115.0,
	},
	"USD": {
		"RUB": 90.0,
		"USD": 1.0,
		"EUR": 0.90,
		"GBP": 0.78,
	},
	"EUR": {
		"RUB": 100.0,
		"USD": 1.11,
		"EUR": 1.0,
		"GBP": 0.87,
	},
}

type FixedRateConverter struct {
	rates map[string]map[string]float64
}

func NewFixedRateConverter() *FixedRateConverter {
	return &FixedRateConverter{rates: defaultRates}
}

// Convert applies the fixed rate table. Identity conversions succeed for any
// code, including codes missing from the table.
func (c *FixedRateConverter) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amount, nil
	}

	table, ok := c.rates[from]
	if !ok {
		return 0, ErrRateUnavailable
	}
	rate, ok := table[to]
	if !ok {
		return 0, ErrRateUnavailable
	}

	return amount * rate, nil
}
