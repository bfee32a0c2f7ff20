package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/server/grpc"
	api "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
	"droscher.com/BuzzLog/pkg/summary"
)

//go:generate mockery --name=summarizer --exported --structname=Summarizer --filename=Summarizer.go --output=../../mocks
type summarizer interface {
	Summary(ctx context.Context, options model.Options, alcoholType model.AlcoholType) (*summary.Summary, error)
}

type StatsServer struct {
	logger    *zap.Logger
	summaries summarizer
	streaks   summary.StreakCounter
	options   model.Options
}

func NewStatsServer(summaries summarizer, streaks summary.StreakCounter, options model.Options, logger *zap.Logger) *StatsServer {
	return &StatsServer{summaries: summaries, streaks: streaks, options: options, logger: logger}
}

func (s *StatsServer) GetSummary(ctx context.Context, request *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	alcoholType, err := model.ParseAlcoholType(request.Msg.AlcoholType)
	if err != nil {
		return nil, connectError(err)
	}

	result, err := s.summaries.Summary(ctx, s.options, alcoholType)
	if err != nil {
		s.logger.Error("error computing summary", zap.String("alcoholType", string(alcoholType)), zap.Error(err))

		return nil, connectError(err)
	}

	response := api.GetSummaryResponse{Summary: grpc.SummaryFromModel(result)}

	return connect.NewResponse(&response), nil
}

func (s *StatsServer) GetStreak(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[wrapperspb.Int32Value], error) {
	days, err := s.streaks.DaysInRow(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(wrapperspb.Int32(int32(days))), nil //nolint:gosec // bounded by the streak cap
}
