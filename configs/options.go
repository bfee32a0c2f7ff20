package configs

import (
	"fmt"
	"strconv"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/stats"
)

// ValidateOptions rejects option values the calculations cannot work with. An unexpected
// sex is let through on purpose: the limit calculations fall back and warn about it.
func ValidateOptions(options model.Options) error {
	switch options.LimitStandard {
	case model.NIAAA, model.CustomLimit:
	default:
		return fmt.Errorf("%w: Options.LimitStandard must be NIAAA or Custom, got %q", ErrConfiguration, options.LimitStandard)
	}

	switch options.Units {
	case model.Imperial, model.Metric:
	default:
		return fmt.Errorf("%w: Options.Units must be Imperial or Metric, got %q", ErrConfiguration, options.Units)
	}

	switch options.DateCalculationMethod {
	case model.Fixed, model.Rolling:
	default:
		return fmt.Errorf("%w: Options.DateCalculationMethod must be Fixed or Rolling, got %q", ErrConfiguration, options.DateCalculationMethod)
	}

	if _, err := stats.ParseWeekday(options.WeekdayStart); err != nil {
		return fmt.Errorf("%w: Options.WeekdayStart: %w", ErrConfiguration, err)
	}

	if _, err := strconv.ParseFloat(options.StdDrinkSize, 64); err != nil {
		return fmt.Errorf("%w: Options.StdDrinkSize %q is not a number", ErrConfiguration, options.StdDrinkSize)
	}

	return nil
}
