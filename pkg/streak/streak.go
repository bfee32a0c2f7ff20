package streak

import (
	"context"
	"time"

	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/common/clock"
	"droscher.com/BuzzLog/pkg/model"
)

// maxDays bounds the backwards walk to roughly a century of daily records.
const maxDays = 36525

//go:generate mockery --name=DayChecker --output=../../mocks
type DayChecker interface {
	HasDrinkOn(ctx context.Context, date time.Time) (bool, error)
}

type Calculator struct {
	days   DayChecker
	clock  clock.Clock
	logger *zap.Logger
}

func NewCalculator(days DayChecker, clk clock.Clock, logger *zap.Logger) *Calculator {
	return &Calculator{days: days, clock: clk, logger: logger}
}

// DaysInRow counts the consecutive calendar days, today included, with at least one drink.
// The walk goes backwards from today and stops at the first day without a drink, so a
// day with nothing logged today means no streak at all.
func (c *Calculator) DaysInRow(ctx context.Context) (int, error) {
	day := model.Day(c.clock.Now())
	streak := 0

	for streak < maxDays {
		found, err := c.days.HasDrinkOn(ctx, day)
		if err != nil {
			c.logger.Error("error checking for drinks", zap.String("date", model.FormatDate(day)), zap.Error(err))

			return 0, err
		}

		if !found {
			break
		}

		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}
