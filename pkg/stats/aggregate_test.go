package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/stats"
)

func TestFavorites(t *testing.T) {
	drinks := []*model.Drink{
		{Producer: "A", Name: "Lights Out", Type: "Stout"},
		{Producer: "A", Name: "Dat Juice", Type: "IPA"},
		{Producer: "B", Name: "Dat Juice", Type: "IPA"},
	}

	assert.Equal(t, "A", stats.FavoriteProducer(drinks))
	assert.Equal(t, "Dat Juice", stats.FavoriteDrink(drinks))
	assert.Equal(t, "IPA", stats.FavoriteType(drinks))
}

func TestFavorites_Empty(t *testing.T) {
	assert.Empty(t, stats.FavoriteProducer(nil))
	assert.Empty(t, stats.FavoriteDrink([]*model.Drink{}))
	assert.Empty(t, stats.FavoriteType(nil))
}

func TestFavorites_TiesGoToSmallestKey(t *testing.T) {
	drinks := []*model.Drink{
		{Producer: "Zed"},
		{Producer: "Moon"},
		{Producer: "Alpha"},
		{Producer: "Moon"},
		{Producer: "Alpha"},
		{Producer: "Zed"},
	}

	for range 10 {
		assert.Equal(t, "Alpha", stats.FavoriteProducer(drinks))
	}
}

func TestMeanABV(t *testing.T) {
	assert.Equal(t, 5.0, stats.MeanABV([]*model.Drink{{ABV: 4}, {ABV: 6}}))
	assert.Equal(t, 5.67, stats.MeanABV([]*model.Drink{{ABV: 5}, {ABV: 6}, {ABV: 6}}))
	assert.True(t, math.IsNaN(stats.MeanABV(nil)))
}

// The numerator includes non-positive IBU values while the denominator only counts
// positive ones.
func TestMeanIBU_SumsAllValuesButCountsPositiveOnly(t *testing.T) {
	drinks := []*model.Drink{{IBU: 40}, {IBU: -1}, {IBU: 20}}

	assert.InDelta(t, 29.5, stats.MeanIBU(drinks), 1e-12)
}

func TestMeanIBU_NoPositiveValues(t *testing.T) {
	assert.True(t, math.IsNaN(stats.MeanIBU(nil)))
	assert.True(t, math.IsInf(stats.MeanIBU([]*model.Drink{{IBU: -1}}), -1))
	assert.True(t, math.IsNaN(stats.MeanIBU([]*model.Drink{{IBU: 0}})))
}
