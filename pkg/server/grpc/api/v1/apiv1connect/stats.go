package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
)

const StatsServiceName = "buzzlog.api.v1.StatsService"

const (
	StatsServiceGetSummaryProcedure = "/buzzlog.api.v1.StatsService/GetSummary"
	StatsServiceGetStreakProcedure  = "/buzzlog.api.v1.StatsService/GetStreak"
)

type StatsServiceHandler interface {
	GetSummary(context.Context, *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error)
	GetStreak(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[wrapperspb.Int32Value], error)
}

func NewStatsServiceHandler(svc StatsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(StatsServiceGetSummaryProcedure, connect.NewUnaryHandler(StatsServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(StatsServiceGetStreakProcedure, connect.NewUnaryHandler(StatsServiceGetStreakProcedure, svc.GetStreak, opts...))

	return "/" + StatsServiceName + "/", mux
}

type StatsServiceClient struct {
	getSummary *connect.Client[v1.GetSummaryRequest, v1.GetSummaryResponse]
	getStreak  *connect.Client[emptypb.Empty, wrapperspb.Int32Value]
}

func NewStatsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StatsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &StatsServiceClient{
		getSummary: connect.NewClient[v1.GetSummaryRequest, v1.GetSummaryResponse](httpClient, baseURL+StatsServiceGetSummaryProcedure, opts...),
		getStreak:  connect.NewClient[emptypb.Empty, wrapperspb.Int32Value](httpClient, baseURL+StatsServiceGetStreakProcedure, opts...),
	}
}

func (c *StatsServiceClient) GetSummary(ctx context.Context, req *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *StatsServiceClient) GetStreak(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[wrapperspb.Int32Value], error) {
	return c.getStreak.CallUnary(ctx, req)
}
