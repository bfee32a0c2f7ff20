package stats

import (
	"errors"
	"fmt"
	"strconv"

	"droscher.com/BuzzLog/pkg/model"
)

const (
	maleWeeklyLimit   = 14
	femaleWeeklyLimit = 7
)

var (
	ErrUnrecognizedSex     = errors.New("sex is incorrectly set")
	ErrInvalidStdDrinkSize = errors.New("invalid standard drink size")
)

// ConfigWarning is returned alongside a usable result when the options are inconsistent.
// Callers decide whether to surface it; the accompanying value is still valid.
type ConfigWarning struct {
	Field string
	Value string
	Err   error
}

func (w *ConfigWarning) Error() string {
	return fmt.Sprintf("%v: %s=%q", w.Err, w.Field, w.Value)
}

func (w *ConfigWarning) Unwrap() error {
	return w.Err
}

func IsWarning(err error) bool {
	var warning *ConfigWarning

	return errors.As(err, &warning)
}

func unrecognizedSex(sex model.Sex) *ConfigWarning {
	return &ConfigWarning{Field: "sex", Value: string(sex), Err: ErrUnrecognizedSex}
}

// WeeklyLimit returns the weekly standard drink limit. For the NIAAA standard with an
// unrecognized sex the configured limit is kept and a *ConfigWarning is returned with it.
func WeeklyLimit(options model.Options) (int, error) {
	limit := options.WeeklyLimit

	if options.LimitStandard != model.NIAAA {
		return limit, nil
	}

	switch options.Sex {
	case model.Male:
		return maleWeeklyLimit, nil
	case model.Female:
		return femaleWeeklyLimit, nil
	default:
		return limit, unrecognizedSex(options.Sex)
	}
}

// StandardDrinksRemaining is the weekly limit minus what has been consumed. It goes
// negative once the limit has been exceeded.
func StandardDrinksRemaining(options model.Options, consumed float64) (float64, error) {
	limit, warning := WeeklyLimit(options)

	return float64(limit) - consumed, warning
}

func StdDrinkSize(options model.Options) (float64, error) {
	size, err := strconv.ParseFloat(options.StdDrinkSize, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStdDrinkSize, options.StdDrinkSize)
	}

	return size, nil
}

// VolumeAlcoholRemaining is the remaining weekly allowance in volume of pure alcohol
// (ounces), rounded half-up to two decimals. An unrecognized sex under the NIAAA standard
// yields no allowance at all and a *ConfigWarning; a malformed standard drink size is fatal.
func VolumeAlcoholRemaining(options model.Options, consumed float64) (float64, error) {
	size, err := StdDrinkSize(options)
	if err != nil {
		return 0, err
	}

	var (
		remaining float64
		warning   error
	)

	if options.LimitStandard == model.CustomLimit {
		remaining = size*float64(options.WeeklyLimit) - consumed
	} else {
		switch options.Sex {
		case model.Male:
			remaining = size*maleWeeklyLimit - consumed
		case model.Female:
			remaining = size*femaleWeeklyLimit - consumed
		default:
			warning = unrecognizedSex(options.Sex)
		}
	}

	return RoundToTwoDecimalPoints(remaining), warning
}
