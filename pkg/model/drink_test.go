package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"droscher.com/BuzzLog/pkg/model"
)

func TestDrinkValidate(t *testing.T) {
	drink := model.Drink{Date: "2024-06-15", Name: "Lights Out", AlcoholType: model.Beer, ABV: 14.3, Size: 12}

	assert.NoError(t, drink.Validate())
}

func TestDrinkValidate_CollectsEveryProblem(t *testing.T) {
	drink := model.Drink{Date: "15/06/2024", AlcoholType: "Cider", ABV: -1, Size: -12}

	err := drink.Validate()

	require.ErrorIs(t, err, model.ErrInvalidDrink)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestParseAlcoholType(t *testing.T) {
	alcoholType, err := model.ParseAlcoholType("Wine")
	require.NoError(t, err)
	assert.Equal(t, model.Wine, alcoholType)

	_, err = model.ParseAlcoholType("beer")
	require.ErrorIs(t, err, model.ErrInvalidDrink)
}

func TestDrinkSentinels(t *testing.T) {
	assert.False(t, model.Drink{IBU: -1}.HasIBU())
	assert.False(t, model.Drink{IBU: 0}.HasIBU())
	assert.True(t, model.Drink{IBU: 35}.HasIBU())
	assert.False(t, model.Drink{Vintage: model.NoVintage}.HasVintage())
	assert.True(t, model.Drink{Vintage: 2019}.HasVintage())
}

func TestDay(t *testing.T) {
	zone := time.FixedZone("PDT", -7*60*60)

	day := model.Day(time.Date(2024, 6, 15, 23, 30, 0, 0, zone))

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, "2024-06-15", model.FormatDate(day))
}
