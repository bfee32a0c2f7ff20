package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/stats"
)

func TestParseWeekday(t *testing.T) {
	day, err := stats.ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	_, err = stats.ParseWeekday("Funday")
	require.ErrorIs(t, err, stats.ErrInvalidWeekday)
}

func TestWeekStart_Fixed(t *testing.T) {
	options := niaaa(model.Male)
	options.DateCalculationMethod = model.Fixed

	tests := []struct {
		name     string
		start    string
		now      time.Time
		expected string
	}{
		{"saturday from sunday", "Sunday", time.Date(2024, 6, 15, 23, 0, 0, 0, time.Local), "2024-06-09"},
		{"start day itself", "Sunday", time.Date(2024, 6, 9, 0, 30, 0, 0, time.Local), "2024-06-09"},
		{"monday start", "Monday", time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local), "2024-06-03"},
		{"across year", "Friday", time.Date(2025, 1, 2, 12, 0, 0, 0, time.Local), "2024-12-27"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options.WeekdayStart = test.start

			start, err := stats.WeekStart(test.now, options)
			require.NoError(t, err)
			assert.Equal(t, test.expected, model.FormatDate(start))
		})
	}
}

func TestWeekStart_Rolling(t *testing.T) {
	options := niaaa(model.Male)
	options.DateCalculationMethod = model.Rolling
	options.WeekdayStart = "not used"

	start, err := stats.WeekStart(time.Date(2024, 3, 2, 8, 0, 0, 0, time.Local), options)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-25", model.FormatDate(start))
}

func TestWeekStart_BadWeekday(t *testing.T) {
	options := niaaa(model.Male)
	options.DateCalculationMethod = model.Fixed
	options.WeekdayStart = "Someday"

	_, err := stats.WeekStart(time.Now(), options)
	require.ErrorIs(t, err, stats.ErrInvalidWeekday)
}

func TestStandardDrinks(t *testing.T) {
	pint := &model.Drink{Size: 12, ABV: 5}

	assert.InDelta(t, 0.6, stats.VolumeAlcohol(pint), 1e-12)

	count, err := stats.StandardDrinks(pint, niaaa(model.Male))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, count, 1e-9)

	options := niaaa(model.Male)
	options.Units = model.Metric

	count, err = stats.StandardDrinks(&model.Drink{Size: 355, ABV: 5}, options)
	require.NoError(t, err)
	assert.InDelta(t, 17.75/29.5735/0.6, count, 1e-9)
}

func TestConsumed(t *testing.T) {
	drinks := []*model.Drink{{Size: 12, ABV: 5}, {Size: 5, ABV: 12}, {Size: 1.5, ABV: 40}}

	consumption, err := stats.Consumed(drinks, niaaa(model.Male))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, consumption.StandardDrinks, 1e-9)
	assert.InDelta(t, 1.8, consumption.VolumeOz, 1e-9)

	consumption, err = stats.Consumed(nil, niaaa(model.Male))
	require.NoError(t, err)
	assert.Zero(t, consumption.StandardDrinks)

	options := niaaa(model.Male)
	options.StdDrinkSize = ""

	_, err = stats.Consumed(drinks, options)
	require.ErrorIs(t, err, stats.ErrInvalidStdDrinkSize)
}
