package cmd

import (
	"context"
	"fmt"
	"io"
	"math"

	"droscher.com/BuzzLog/pkg/common/clock"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/stats"
	"droscher.com/BuzzLog/pkg/streak"
	"droscher.com/BuzzLog/pkg/summary"
)

type StatsCmd struct {
	ConfigFile  string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	AlcoholType string `default:"Beer" enum:"Beer,Wine,Liquor" help:"Beer, Wine or Liquor" short:"a"`
}

func (s *StatsCmd) Run(ctx *Context) error {
	buzz, err := openApp(s.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	systemClock := &clock.DefaultClock{}
	streaks := streak.NewCalculator(buzz.repo, systemClock, buzz.logger)
	service := summary.NewService(buzz.repo, streaks, systemClock, buzz.logger)

	result, err := service.Summary(context.Background(), buzz.conf.Options, model.AlcoholType(s.AlcoholType))
	if err != nil {
		return err
	}

	return writeSummary(ctx.Stdout, result)
}

type summaryLine struct {
	label string
	value string
}

func writeSummary(out io.Writer, result *summary.Summary) error {
	lines := []summaryLine{
		{"Week started", result.WeekStart},
		{"Weekly limit", fmt.Sprintf("%d standard drinks", result.WeeklyLimit)},
		{"Standard drinks consumed", stats.DoubleToString(result.StandardDrinksConsumed)},
		{"Standard drinks remaining", stats.DoubleToString(result.StandardDrinksRemaining)},
		{"Alcohol consumed", stats.DoubleToString(result.VolumeConsumed) + " " + result.VolumeUnit},
		{"Alcohol remaining", stats.DoubleToString(result.VolumeRemaining) + " " + result.VolumeUnit},
		{"Favorite " + producerLabel(result.AlcoholType), orNone(result.FavoriteProducer)},
		{"Favorite " + drinkLabel(result.AlcoholType), orNone(result.FavoriteDrink)},
		{"Favorite type", orNone(result.FavoriteType)},
		{"Mean ABV", meanValue(result.MeanABV, "%")},
		{"Days in a row", fmt.Sprintf("%d", result.DaysInRow)},
	}

	if result.AlcoholType == model.Beer {
		lines = append(lines, summaryLine{"Mean IBU", meanValue(result.MeanIBU, "")})
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(out, "%-26s %s\n", line.label+":", line.value); err != nil {
			return err
		}
	}

	for _, warning := range result.Warnings {
		if _, err := fmt.Fprintf(out, "warning: %s\n", warning); err != nil {
			return err
		}
	}

	return nil
}

func producerLabel(alcoholType model.AlcoholType) string {
	switch alcoholType {
	case model.Wine:
		return "winery"
	case model.Liquor:
		return "distillery"
	default:
		return "brewery"
	}
}

func drinkLabel(alcoholType model.AlcoholType) string {
	switch alcoholType {
	case model.Wine:
		return "wine"
	case model.Liquor:
		return "liquor"
	default:
		return "beer"
	}
}

func orNone(value string) string {
	if len(value) == 0 {
		return "none yet"
	}

	return value
}

func meanValue(value float64, suffix string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "n/a"
	}

	return stats.DoubleToString(value) + suffix
}

type StreakCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
}

func (s *StreakCmd) Run(ctx *Context) error {
	buzz, err := openApp(s.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	days, err := streak.NewCalculator(buzz.repo, &clock.DefaultClock{}, buzz.logger).DaysInRow(context.Background())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.Stdout, "%d days in a row\n", days)

	return err
}
