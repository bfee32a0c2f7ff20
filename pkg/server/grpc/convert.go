package grpc

import (
	"math"

	"go.openly.dev/pointy"

	"droscher.com/BuzzLog/pkg/model"
	api "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
	"droscher.com/BuzzLog/pkg/summary"
)

const noIBU = -1

func DrinksFromModel(drinks []*model.Drink) []*api.Drink {
	pbDrinks := make([]*api.Drink, 0, len(drinks))

	for _, drink := range drinks {
		pbDrinks = append(pbDrinks, DrinkFromModel(drink))
	}

	return pbDrinks
}

func DrinkFromModel(drink *model.Drink) *api.Drink {
	pbDrink := api.Drink{
		Id:          uint64(drink.ID),
		Date:        drink.Date,
		Name:        drink.Name,
		AlcoholType: string(drink.AlcoholType),
		Type:        drink.Type,
		Subtype:     drink.Subtype,
		Producer:    drink.Producer,
		Abv:         drink.ABV,
		Size:        drink.Size,
		Rating:      int32(drink.Rating), //nolint:gosec // ratings are small
		Notes:       drink.Notes,
		SortOrder:   int32(drink.SortOrder), //nolint:gosec // bounded by row count
		CreatedAt:   drink.CreatedAt,
	}

	if drink.HasIBU() {
		pbDrink.Ibu = pointy.Float64(drink.IBU)
	}

	if drink.HasVintage() {
		pbDrink.Vintage = pointy.Int32(int32(drink.Vintage)) //nolint:gosec // years fit
	}

	return &pbDrink
}

func DrinkToModel(pbDrink *api.Drink) model.Drink {
	drink := model.Drink{
		Date:        pbDrink.Date,
		Name:        pbDrink.Name,
		AlcoholType: model.AlcoholType(pbDrink.AlcoholType),
		Type:        pbDrink.Type,
		Subtype:     pbDrink.Subtype,
		Producer:    pbDrink.Producer,
		ABV:         pbDrink.Abv,
		IBU:         noIBU,
		Size:        pbDrink.Size,
		Rating:      int(pbDrink.Rating),
		Notes:       pbDrink.Notes,
		Vintage:     model.NoVintage,
	}

	if pbDrink.Ibu != nil {
		drink.IBU = *pbDrink.Ibu
	}

	if pbDrink.Vintage != nil {
		drink.Vintage = int(*pbDrink.Vintage)
	}

	return drink
}

// ApplyUpdate copies the fields set in the request onto the drink.
//
//nolint:cyclop // one branch per optional field
func ApplyUpdate(drink *model.Drink, request *api.UpdateDrinkRequest) {
	if request.Date != nil {
		drink.Date = *request.Date
	}

	if request.Name != nil {
		drink.Name = *request.Name
	}

	if request.AlcoholType != nil {
		drink.AlcoholType = model.AlcoholType(*request.AlcoholType)
	}

	if request.Type != nil {
		drink.Type = *request.Type
	}

	if request.Subtype != nil {
		drink.Subtype = *request.Subtype
	}

	if request.Producer != nil {
		drink.Producer = *request.Producer
	}

	if request.Abv != nil {
		drink.ABV = *request.Abv
	}

	if request.Ibu != nil {
		drink.IBU = *request.Ibu
	}

	if request.Size != nil {
		drink.Size = *request.Size
	}

	if request.Rating != nil {
		drink.Rating = int(*request.Rating)
	}

	if request.Notes != nil {
		drink.Notes = *request.Notes
	}

	if request.Vintage != nil {
		drink.Vintage = int(*request.Vintage)
	}
}

func SummaryFromModel(stats *summary.Summary) *api.Summary {
	return &api.Summary{
		AlcoholType:             string(stats.AlcoholType),
		WeekStart:               stats.WeekStart,
		WeeklyLimit:             int32(stats.WeeklyLimit), //nolint:gosec // weekly limits are small
		StandardDrinksConsumed:  stats.StandardDrinksConsumed,
		StandardDrinksRemaining: stats.StandardDrinksRemaining,
		VolumeConsumed:          stats.VolumeConsumed,
		VolumeRemaining:         stats.VolumeRemaining,
		VolumeUnit:              stats.VolumeUnit,
		FavoriteProducer:        stats.FavoriteProducer,
		FavoriteDrink:           stats.FavoriteDrink,
		FavoriteType:            stats.FavoriteType,
		MeanAbv:                 finite(stats.MeanABV),
		MeanIbu:                 finite(stats.MeanIBU),
		DaysInRow:               int32(stats.DaysInRow), //nolint:gosec // bounded by the streak cap
		Warnings:                stats.Warnings,
	}
}

// finite drops NaN and infinite values, which JSON cannot carry.
func finite(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return pointy.Float64(value)
}
