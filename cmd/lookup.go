package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/pkg/integrations"
	"droscher.com/BuzzLog/pkg/model"
)

var ErrNoIntegrations = errors.New("no lookup integration configured")

type LookupCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	Query      string `arg:"" help:"Beer or brewery to search for"`
	Producer   bool   `help:"Search for breweries instead of beers" short:"p"`
}

func (l *LookupCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		return err
	}

	return l.lookup(ctx, integrations.FromConfig(conf.Integrations.Beer, logger), logger)
}

// lookup prints what every integration finds. Failures are only returned when no
// integration could answer.
func (l *LookupCmd) lookup(ctx *Context, lookups []integrations.Integration, logger *zap.Logger) error {
	if len(lookups) == 0 {
		return ErrNoIntegrations
	}

	var errs error

	answered := false

	for _, integration := range lookups {
		var err error

		if l.Producer {
			err = l.printProducers(ctx, integration)
		} else {
			err = l.printBeers(ctx, integration)
		}

		if err != nil {
			logger.Error("lookup failed", zap.String("query", l.Query), zap.Error(err))
			errs = multierr.Append(errs, err)

			continue
		}

		answered = true
	}

	if answered {
		return nil
	}

	return errs
}

func (l *LookupCmd) printBeers(ctx *Context, integration integrations.Integration) error {
	drinks, err := integration.FindBeer(l.Query)
	if err != nil {
		return err
	}

	pointers := make([]*model.Drink, 0, len(drinks))
	for index := range drinks {
		pointers = append(pointers, &drinks[index])
	}

	return writeDrinks(ctx.Stdout, pointers)
}

func (l *LookupCmd) printProducers(ctx *Context, integration integrations.Integration) error {
	producers, err := integration.FindProducer(l.Query)
	if err != nil {
		return err
	}

	for _, producer := range producers {
		if _, err = fmt.Fprintln(ctx.Stdout, producer); err != nil {
			return err
		}
	}

	return nil
}
