package streak_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"droscher.com/BuzzLog/mocks"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/streak"
)

type StreakTestSuite struct {
	suite.Suite
	clock *mocks.MockClock
	days  *mocks.DayChecker
	calc  *streak.Calculator
}

func TestStreakTestSuite(t *testing.T) {
	suite.Run(t, new(StreakTestSuite))
}

func (suite *StreakTestSuite) SetupTest() {
	ctrl := gomock.NewController(suite.T())
	suite.clock = mocks.NewMockClock(ctrl)
	suite.days = mocks.NewDayChecker(suite.T())
	suite.calc = streak.NewCalculator(suite.days, suite.clock, zaptest.NewLogger(suite.T()))
}

func (suite *StreakTestSuite) today(value string) {
	now, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	suite.Require().NoError(err)

	suite.clock.EXPECT().Now().Return(now)
}

func (suite *StreakTestSuite) expectDay(date string, found bool) {
	suite.days.On("HasDrinkOn", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
		return model.FormatDate(day) == date
	})).Return(found, nil).Once()
}

func (suite *StreakTestSuite) TestDaysInRow_TodayOnly() {
	suite.today("2024-06-15 21:30")
	suite.expectDay("2024-06-15", true)
	suite.expectDay("2024-06-14", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, days)
}

func (suite *StreakTestSuite) TestDaysInRow_TodayAndYesterday() {
	suite.today("2024-06-15 08:00")
	suite.expectDay("2024-06-15", true)
	suite.expectDay("2024-06-14", true)
	suite.expectDay("2024-06-13", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Equal(2, days)
}

func (suite *StreakTestSuite) TestDaysInRow_NothingTodayIsNoStreak() {
	suite.today("2024-06-15 23:59")
	suite.expectDay("2024-06-15", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Zero(days)
	suite.days.AssertNumberOfCalls(suite.T(), "HasDrinkOn", 1)
}

func (suite *StreakTestSuite) TestDaysInRow_StopsAtGap() {
	suite.today("2024-06-15 12:00")
	suite.expectDay("2024-06-15", true)
	suite.expectDay("2024-06-14", true)
	suite.expectDay("2024-06-13", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Equal(2, days)
	suite.days.AssertNotCalled(suite.T(), "HasDrinkOn", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
		return model.FormatDate(day) == "2024-06-12"
	}))
}

func (suite *StreakTestSuite) TestDaysInRow_CrossesYearBoundary() {
	suite.today("2024-01-02 18:00")
	suite.expectDay("2024-01-02", true)
	suite.expectDay("2024-01-01", true)
	suite.expectDay("2023-12-31", true)
	suite.expectDay("2023-12-30", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Equal(3, days)
}

func (suite *StreakTestSuite) TestDaysInRow_CrossesLeapDay() {
	suite.today("2024-03-01 18:00")
	suite.expectDay("2024-03-01", true)
	suite.expectDay("2024-02-29", true)
	suite.expectDay("2024-02-28", false)

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().NoError(err)
	suite.Equal(2, days)
}

func (suite *StreakTestSuite) TestDaysInRow_ReturnsStoreError() {
	suite.today("2024-06-15 12:00")
	suite.days.On("HasDrinkOn", mock.Anything, mock.Anything).Return(false, errors.New("disk on fire")).Once()

	days, err := suite.calc.DaysInRow(context.Background())

	suite.Require().EqualError(err, "disk on fire")
	suite.Zero(days)
}
