package currency_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/currency"
)

var Module = fx.Provide(provideConverter)

func provideConverter() currency.Converter {
	return currency.NewFixedRateConverter()
}
