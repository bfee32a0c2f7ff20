package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/types/known/emptypb"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/mocks"
	"droscher.com/BuzzLog/pkg/auth"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/server"
	apiv1 "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
	"droscher.com/BuzzLog/pkg/server/grpc/api/v1/apiv1connect"
	"droscher.com/BuzzLog/pkg/streak"
	"droscher.com/BuzzLog/pkg/summary"
)

const (
	testSecret   = "not-so-secret"
	testAudience = "buzzlog"
)

// APITestSuite runs the services over HTTP against a SQLite store.
type APITestSuite struct {
	suite.Suite
	repo   *repository.Repository
	drinks *apiv1connect.DrinkServiceClient
	stats  *apiv1connect.StatsServiceClient
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (suite *APITestSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T())

	conf := &configs.Config{
		DB: configs.DB{
			Driver:             configs.DriverSQLite,
			Path:               filepath.Join(suite.T().TempDir(), "buzzlog.db"),
			MaxIdleConnections: 1,
			MaxOpenConnections: 1,
		},
		Auth:    configs.Auth{SecretKey: testSecret, Audience: testAudience},
		Options: model.Options{Sex: model.Male, LimitStandard: model.NIAAA, WeeklyLimit: -1, StdDrinkSize: "0.6", Units: model.Imperial, WeekdayStart: "Sunday", DateCalculationMethod: model.Fixed},
	}

	var err error

	suite.repo, err = repository.Open(conf, logger)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Migrate())

	clock := mocks.NewMockClock(gomock.NewController(suite.T()))
	clock.EXPECT().Now().Return(time.Date(2024, 6, 15, 18, 0, 0, 0, time.Local)).AnyTimes()

	streaks := streak.NewCalculator(suite.repo, clock, logger)
	summaries := summary.NewService(suite.repo, streaks, clock, logger)

	interceptors := connect.WithInterceptors(auth.NewAuthManager(conf.Auth, logger).GrpcAuthInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiv1connect.NewDrinkServiceHandler(server.NewDrinkServer(suite.repo, nil, logger), interceptors))
	mux.Handle(apiv1connect.NewStatsServiceHandler(server.NewStatsServer(summaries, streaks, conf.Options, logger), interceptors))

	httpServer := httptest.NewServer(mux)
	suite.T().Cleanup(httpServer.Close)

	suite.drinks = apiv1connect.NewDrinkServiceClient(httpServer.Client(), httpServer.URL)
	suite.stats = apiv1connect.NewStatsServiceClient(httpServer.Client(), httpServer.URL)
}

func (suite *APITestSuite) TearDownTest() {
	suite.NoError(suite.repo.Close())
}

func token(suite *APITestSuite, audience string) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"aud": audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	suite.Require().NoError(err)

	return signed
}

func authorized[T any](suite *APITestSuite, message *T) *connect.Request[T] {
	request := connect.NewRequest(message)
	request.Header().Set("Authorization", "Bearer "+token(suite, testAudience))

	return request
}

func (suite *APITestSuite) addPint(date string) {
	_, err := suite.drinks.AddDrink(context.Background(), authorized(suite, &apiv1.AddDrinkRequest{Drink: &apiv1.Drink{
		Date:        date,
		Name:        "Dat Juice",
		AlcoholType: "Beer",
		Type:        "IPA",
		Producer:    "Phillips",
		Abv:         5,
		Size:        12,
	}}))
	suite.Require().NoError(err)
}

func (suite *APITestSuite) TestSummaryAndStreakOverHTTP() {
	suite.addPint("2024-06-13")
	suite.addPint("2024-06-14")
	suite.addPint("2024-06-15")

	listed, err := suite.drinks.ListDrinks(context.Background(), authorized(suite, &apiv1.ListDrinksRequest{FilterKind: "Producer", FilterValue: "Phillips"}))
	suite.Require().NoError(err)
	suite.Len(listed.Msg.Drinks, 3)
	suite.Nil(listed.Msg.Drinks[0].Ibu)

	response, err := suite.stats.GetSummary(context.Background(), authorized(suite, &apiv1.GetSummaryRequest{AlcoholType: "Beer"}))
	suite.Require().NoError(err)

	stats := response.Msg.Summary
	suite.Equal("2024-06-09", stats.WeekStart)
	suite.Equal(int32(14), stats.WeeklyLimit)
	suite.InDelta(3.0, stats.StandardDrinksConsumed, 0.001)
	suite.InDelta(11.0, stats.StandardDrinksRemaining, 0.001)
	suite.Equal("Phillips", stats.FavoriteProducer)
	suite.InDelta(5.0, *stats.MeanAbv, 0.001)
	suite.Nil(stats.MeanIbu)
	suite.Equal(int32(3), stats.DaysInRow)

	days, err := suite.stats.GetStreak(context.Background(), authorized(suite, &emptypb.Empty{}))
	suite.Require().NoError(err)
	suite.Equal(int32(3), days.Msg.GetValue())
}

func (suite *APITestSuite) TestNotFoundOverHTTP() {
	_, err := suite.drinks.DeleteDrink(context.Background(), authorized(suite, &apiv1.DeleteDrinkRequest{Id: 99}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *APITestSuite) TestRejectsMissingToken() {
	_, err := suite.stats.GetStreak(context.Background(), connect.NewRequest(&emptypb.Empty{}))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *APITestSuite) TestRejectsWrongAudience() {
	request := connect.NewRequest(&emptypb.Empty{})
	request.Header().Set("Authorization", "Bearer "+token(suite, "someone-else"))

	_, err := suite.stats.GetStreak(context.Background(), request)

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}
