package insight_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(provideInsightProvider)

func provideInsightProvider() services.TextInsightProvider {
	return services.NewKeywordInsightProvider()
}
