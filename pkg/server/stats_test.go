package server_test

import (
	"context"
	"math"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"

	"droscher.com/BuzzLog/mocks"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/server"
	apiv1 "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
	"droscher.com/BuzzLog/pkg/stats"
	"droscher.com/BuzzLog/pkg/summary"
)

type StatsTestSuite struct {
	suite.Suite
	summaries *mocks.Summarizer
	streaks   *mocks.StreakCounter
	options   model.Options
	service   *server.StatsServer
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (suite *StatsTestSuite) SetupTest() {
	suite.summaries = mocks.NewSummarizer(suite.T())
	suite.streaks = mocks.NewStreakCounter(suite.T())
	suite.options = model.Options{Sex: model.Female, LimitStandard: model.NIAAA, StdDrinkSize: "0.6"}
	suite.service = server.NewStatsServer(suite.summaries, suite.streaks, suite.options, zap.NewNop())
}

func (suite *StatsTestSuite) TestGetSummary() {
	suite.summaries.On("Summary", mock.Anything, suite.options, model.Liquor).Return(&summary.Summary{
		AlcoholType: model.Liquor,
		WeeklyLimit: 7,
		MeanABV:     40,
		MeanIBU:     math.NaN(),
	}, nil).Once()

	response, err := suite.service.GetSummary(context.Background(), connect.NewRequest(&apiv1.GetSummaryRequest{AlcoholType: "Liquor"}))
	suite.Require().NoError(err)
	suite.Equal(int32(7), response.Msg.Summary.WeeklyLimit)
	suite.InDelta(40, *response.Msg.Summary.MeanAbv, 0.001)
	suite.Nil(response.Msg.Summary.MeanIbu)
}

func (suite *StatsTestSuite) TestGetSummary_BadAlcoholType() {
	_, err := suite.service.GetSummary(context.Background(), connect.NewRequest(&apiv1.GetSummaryRequest{AlcoholType: "Cider"}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *StatsTestSuite) TestGetSummary_BadOptions() {
	suite.summaries.On("Summary", mock.Anything, suite.options, model.Beer).Return(nil, stats.ErrInvalidStdDrinkSize).Once()

	_, err := suite.service.GetSummary(context.Background(), connect.NewRequest(&apiv1.GetSummaryRequest{AlcoholType: "Beer"}))

	suite.Equal(connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func (suite *StatsTestSuite) TestGetStreak() {
	suite.streaks.On("DaysInRow", mock.Anything).Return(4, nil).Once()

	response, err := suite.service.GetStreak(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	suite.Require().NoError(err)
	suite.Equal(int32(4), response.Msg.GetValue())
}
