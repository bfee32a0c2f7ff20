package stats

import (
	"maps"
	"slices"

	"droscher.com/BuzzLog/pkg/model"
)

func FavoriteProducer(drinks []*model.Drink) string {
	return mostCommon(drinks, func(drink *model.Drink) string { return drink.Producer })
}

func FavoriteDrink(drinks []*model.Drink) string {
	return mostCommon(drinks, func(drink *model.Drink) string { return drink.Name })
}

func FavoriteType(drinks []*model.Drink) string {
	return mostCommon(drinks, func(drink *model.Drink) string { return drink.Type })
}

// mostCommon tallies field values and returns the one with the highest count. Keys are
// scanned in ascending order and only a strictly greater count replaces the current
// favorite, so ties go to the lexically smallest value. No drinks gives "".
func mostCommon(drinks []*model.Drink, field func(*model.Drink) string) string {
	counts := make(map[string]int, len(drinks))

	for _, drink := range drinks {
		counts[field(drink)]++
	}

	var (
		favorite   string
		currentMax int
	)

	for _, value := range slices.Sorted(maps.Keys(counts)) {
		if count := counts[value]; count > currentMax {
			favorite = value
			currentMax = count
		}
	}

	return favorite
}

// MeanABV is the average ABV rounded to two decimals. It is NaN for an empty set.
func MeanABV(drinks []*model.Drink) float64 {
	var abvSum float64

	for _, drink := range drinks {
		abvSum += drink.ABV
	}

	return RoundToTwoDecimalPoints(abvSum / float64(len(drinks)))
}

// MeanIBU divides the sum of every IBU value by the number of drinks that have a positive
// IBU. Non-positive values are still added to the sum.
// NOTE: the numerator is unfiltered while the denominator is filtered. This looks
// unintended but it is what users' historic statistics were computed with, so it is kept.
func MeanIBU(drinks []*model.Drink) float64 {
	var (
		ibuSum float64
		count  int
	)

	for _, drink := range drinks {
		if drink.HasIBU() {
			count++
		}

		ibuSum += drink.IBU
	}

	return ibuSum / float64(count)
}
