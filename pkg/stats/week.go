package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"droscher.com/BuzzLog/pkg/model"
)

const daysPerWeek = 7

var ErrInvalidWeekday = errors.New("invalid weekday")

func ParseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, nil
		}
	}

	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// WeekStart returns the first calendar day of the current drinking week. With the Fixed
// method that is the most recent configured weekday on or before today; with Rolling it
// is the day six days ago, giving a seven day window that ends today.
func WeekStart(now time.Time, options model.Options) (time.Time, error) {
	today := model.Day(now)

	if options.DateCalculationMethod == model.Rolling {
		return today.AddDate(0, 0, -(daysPerWeek - 1)), nil
	}

	start, err := ParseWeekday(options.WeekdayStart)
	if err != nil {
		return time.Time{}, err
	}

	offset := (int(today.Weekday()) - int(start) + daysPerWeek) % daysPerWeek

	return today.AddDate(0, 0, -offset), nil
}

// VolumeAlcohol is the volume of pure alcohol in a drink, in the unit its size was logged in.
func VolumeAlcohol(drink *model.Drink) float64 {
	return drink.Size * drink.ABV / 100 //nolint:mnd // ABV is a percentage
}

func volumeAlcoholOz(drink *model.Drink, units model.Units) float64 {
	volume := VolumeAlcohol(drink)
	if units == model.Metric {
		return MLToOz(volume)
	}

	return volume
}

func StandardDrinks(drink *model.Drink, options model.Options) (float64, error) {
	size, err := StdDrinkSize(options)
	if err != nil {
		return 0, err
	}

	return volumeAlcoholOz(drink, options.Units) / size, nil
}

// Consumption is how much was drunk over a set of drinks. Volume is pure alcohol in ounces.
type Consumption struct {
	StandardDrinks float64
	VolumeOz       float64
}

func Consumed(drinks []*model.Drink, options model.Options) (Consumption, error) {
	size, err := StdDrinkSize(options)
	if err != nil {
		return Consumption{}, err
	}

	var consumption Consumption

	for _, drink := range drinks {
		volume := volumeAlcoholOz(drink, options.Units)
		consumption.VolumeOz += volume
		consumption.StandardDrinks += volume / size
	}

	return consumption, nil
}
