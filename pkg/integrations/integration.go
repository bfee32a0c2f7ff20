package integrations

import (
	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/integrations/untappd-web"
	"droscher.com/BuzzLog/pkg/model"
)

// Integration looks drinks up in an external catalogue so new entries can be pre-filled.
//go:generate mockery --name=Integration --output=../../mocks
type Integration interface {
	FindBeer(name string) ([]model.Drink, error)
	FindProducer(name string) ([]string, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappdWebIntegration(logger)
	}

	return nil
}

// FromConfig returns the integrations named in the configuration, skipping and logging
// names that are not known.
func FromConfig(names []string, logger *zap.Logger) []Integration {
	found := make([]Integration, 0, len(names))

	for _, name := range names {
		integration := GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown integration", zap.String("integration", name))

			continue
		}

		found = append(found, integration)
	}

	return found
}
