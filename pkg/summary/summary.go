package summary

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/common/clock"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/stats"
)

//go:generate mockery --name=DrinkReader --output=../../mocks
type DrinkReader interface {
	Filter(ctx context.Context, filter repository.Filter) ([]*model.Drink, error)
}

//go:generate mockery --name=StreakCounter --output=../../mocks
type StreakCounter interface {
	DaysInRow(ctx context.Context) (int, error)
}

// Summary is everything the statistics panel shows for one alcohol type. Volumes are
// in ounces for Imperial options and millilitres for Metric. MeanABV and MeanIBU are
// NaN until there is data to average.
type Summary struct {
	AlcoholType             model.AlcoholType
	WeekStart               string
	WeeklyLimit             int
	StandardDrinksConsumed  float64
	StandardDrinksRemaining float64
	VolumeConsumed          float64
	VolumeRemaining         float64
	VolumeUnit              string
	FavoriteProducer        string
	FavoriteDrink           string
	FavoriteType            string
	MeanABV                 float64
	MeanIBU                 float64
	DaysInRow               int
	Warnings                []string
}

type Service struct {
	drinks  DrinkReader
	streaks StreakCounter
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(drinks DrinkReader, streaks StreakCounter, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{drinks: drinks, streaks: streaks, clock: clk, logger: logger}
}

func (s *Service) Summary(ctx context.Context, options model.Options, alcoholType model.AlcoholType) (*Summary, error) {
	summary := Summary{AlcoholType: alcoholType, VolumeUnit: "oz"}

	if err := s.weekly(ctx, options, &summary); err != nil {
		return nil, err
	}

	drinks, err := s.drinks.Filter(ctx, repository.AlcoholTypeFilter{AlcoholType: alcoholType})
	if err != nil {
		return nil, err
	}

	summary.FavoriteProducer = stats.FavoriteProducer(drinks)
	summary.FavoriteDrink = stats.FavoriteDrink(drinks)
	summary.FavoriteType = stats.FavoriteType(drinks)
	summary.MeanABV = stats.MeanABV(drinks)
	summary.MeanIBU = stats.MeanIBU(drinks)

	summary.DaysInRow, err = s.streaks.DaysInRow(ctx)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (s *Service) weekly(ctx context.Context, options model.Options, summary *Summary) error {
	weekStart, err := stats.WeekStart(s.clock.Now(), options)
	if err != nil {
		return err
	}

	summary.WeekStart = model.FormatDate(weekStart)

	thisWeek, err := s.drinks.Filter(ctx, repository.AfterDateFilter{Date: weekStart})
	if err != nil {
		return err
	}

	consumed, err := stats.Consumed(thisWeek, options)
	if err != nil {
		return err
	}

	summary.StandardDrinksConsumed = stats.RoundToTwoDecimalPoints(consumed.StandardDrinks)

	var warning error

	summary.WeeklyLimit, warning = stats.WeeklyLimit(options)
	s.warn(summary, warning)

	summary.StandardDrinksRemaining, warning = stats.StandardDrinksRemaining(options, consumed.StandardDrinks)
	summary.StandardDrinksRemaining = stats.RoundToTwoDecimalPoints(summary.StandardDrinksRemaining)
	s.warn(summary, warning)

	volumeRemaining, err := stats.VolumeAlcoholRemaining(options, consumed.VolumeOz)
	if err != nil && !stats.IsWarning(err) {
		return err
	}

	s.warn(summary, err)

	summary.VolumeConsumed = stats.RoundToTwoDecimalPoints(consumed.VolumeOz)
	summary.VolumeRemaining = volumeRemaining

	if options.Units == model.Metric {
		summary.VolumeUnit = "ml"
		summary.VolumeConsumed = stats.RoundToTwoDecimalPoints(stats.OzToML(consumed.VolumeOz))
		summary.VolumeRemaining = stats.RoundToTwoDecimalPoints(stats.OzToML(volumeRemaining))
	}

	return nil
}

func (s *Service) warn(summary *Summary, warning error) {
	if warning == nil {
		return
	}

	for _, existing := range summary.Warnings {
		if existing == warning.Error() {
			return
		}
	}

	s.logger.Warn("inconsistent options", zap.Error(warning))
	summary.Warnings = append(summary.Warnings, warning.Error())
}
