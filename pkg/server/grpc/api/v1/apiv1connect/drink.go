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

const DrinkServiceName = "buzzlog.api.v1.DrinkService"

const (
	DrinkServiceAddDrinkProcedure       = "/buzzlog.api.v1.DrinkService/AddDrink"
	DrinkServiceUpdateDrinkProcedure    = "/buzzlog.api.v1.DrinkService/UpdateDrink"
	DrinkServiceDeleteDrinkProcedure    = "/buzzlog.api.v1.DrinkService/DeleteDrink"
	DrinkServiceListDrinksProcedure     = "/buzzlog.api.v1.DrinkService/ListDrinks"
	DrinkServiceGetLatestNotesProcedure = "/buzzlog.api.v1.DrinkService/GetLatestNotes"
	DrinkServiceListValuesProcedure     = "/buzzlog.api.v1.DrinkService/ListValues"
	DrinkServiceLookupBeerProcedure     = "/buzzlog.api.v1.DrinkService/LookupBeer"
)

type DrinkServiceHandler interface {
	AddDrink(context.Context, *connect.Request[v1.AddDrinkRequest]) (*connect.Response[v1.AddDrinkResponse], error)
	UpdateDrink(context.Context, *connect.Request[v1.UpdateDrinkRequest]) (*connect.Response[v1.UpdateDrinkResponse], error)
	DeleteDrink(context.Context, *connect.Request[v1.DeleteDrinkRequest]) (*connect.Response[emptypb.Empty], error)
	ListDrinks(context.Context, *connect.Request[v1.ListDrinksRequest]) (*connect.Response[v1.ListDrinksResponse], error)
	GetLatestNotes(context.Context, *connect.Request[v1.GetLatestNotesRequest]) (*connect.Response[wrapperspb.StringValue], error)
	ListValues(context.Context, *connect.Request[v1.ListValuesRequest]) (*connect.Response[v1.ListValuesResponse], error)
	LookupBeer(context.Context, *connect.Request[v1.LookupBeerRequest]) (*connect.Response[v1.LookupBeerResponse], error)
}

// NewDrinkServiceHandler builds an HTTP handler for the drink service. It returns the
// path on which to mount the handler and the handler itself.
func NewDrinkServiceHandler(svc DrinkServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(DrinkServiceAddDrinkProcedure, connect.NewUnaryHandler(DrinkServiceAddDrinkProcedure, svc.AddDrink, opts...))
	mux.Handle(DrinkServiceUpdateDrinkProcedure, connect.NewUnaryHandler(DrinkServiceUpdateDrinkProcedure, svc.UpdateDrink, opts...))
	mux.Handle(DrinkServiceDeleteDrinkProcedure, connect.NewUnaryHandler(DrinkServiceDeleteDrinkProcedure, svc.DeleteDrink, opts...))
	mux.Handle(DrinkServiceListDrinksProcedure, connect.NewUnaryHandler(DrinkServiceListDrinksProcedure, svc.ListDrinks, opts...))
	mux.Handle(DrinkServiceGetLatestNotesProcedure, connect.NewUnaryHandler(DrinkServiceGetLatestNotesProcedure, svc.GetLatestNotes, opts...))
	mux.Handle(DrinkServiceListValuesProcedure, connect.NewUnaryHandler(DrinkServiceListValuesProcedure, svc.ListValues, opts...))
	mux.Handle(DrinkServiceLookupBeerProcedure, connect.NewUnaryHandler(DrinkServiceLookupBeerProcedure, svc.LookupBeer, opts...))

	return "/" + DrinkServiceName + "/", mux
}

type DrinkServiceClient struct {
	addDrink       *connect.Client[v1.AddDrinkRequest, v1.AddDrinkResponse]
	updateDrink    *connect.Client[v1.UpdateDrinkRequest, v1.UpdateDrinkResponse]
	deleteDrink    *connect.Client[v1.DeleteDrinkRequest, emptypb.Empty]
	listDrinks     *connect.Client[v1.ListDrinksRequest, v1.ListDrinksResponse]
	getLatestNotes *connect.Client[v1.GetLatestNotesRequest, wrapperspb.StringValue]
	listValues     *connect.Client[v1.ListValuesRequest, v1.ListValuesResponse]
	lookupBeer     *connect.Client[v1.LookupBeerRequest, v1.LookupBeerResponse]
}

func NewDrinkServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DrinkServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &DrinkServiceClient{
		addDrink:       connect.NewClient[v1.AddDrinkRequest, v1.AddDrinkResponse](httpClient, baseURL+DrinkServiceAddDrinkProcedure, opts...),
		updateDrink:    connect.NewClient[v1.UpdateDrinkRequest, v1.UpdateDrinkResponse](httpClient, baseURL+DrinkServiceUpdateDrinkProcedure, opts...),
		deleteDrink:    connect.NewClient[v1.DeleteDrinkRequest, emptypb.Empty](httpClient, baseURL+DrinkServiceDeleteDrinkProcedure, opts...),
		listDrinks:     connect.NewClient[v1.ListDrinksRequest, v1.ListDrinksResponse](httpClient, baseURL+DrinkServiceListDrinksProcedure, opts...),
		getLatestNotes: connect.NewClient[v1.GetLatestNotesRequest, wrapperspb.StringValue](httpClient, baseURL+DrinkServiceGetLatestNotesProcedure, opts...),
		listValues:     connect.NewClient[v1.ListValuesRequest, v1.ListValuesResponse](httpClient, baseURL+DrinkServiceListValuesProcedure, opts...),
		lookupBeer:     connect.NewClient[v1.LookupBeerRequest, v1.LookupBeerResponse](httpClient, baseURL+DrinkServiceLookupBeerProcedure, opts...),
	}
}

func (c *DrinkServiceClient) AddDrink(ctx context.Context, req *connect.Request[v1.AddDrinkRequest]) (*connect.Response[v1.AddDrinkResponse], error) {
	return c.addDrink.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) UpdateDrink(ctx context.Context, req *connect.Request[v1.UpdateDrinkRequest]) (*connect.Response[v1.UpdateDrinkResponse], error) {
	return c.updateDrink.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) DeleteDrink(ctx context.Context, req *connect.Request[v1.DeleteDrinkRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteDrink.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) ListDrinks(ctx context.Context, req *connect.Request[v1.ListDrinksRequest]) (*connect.Response[v1.ListDrinksResponse], error) {
	return c.listDrinks.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) GetLatestNotes(ctx context.Context, req *connect.Request[v1.GetLatestNotesRequest]) (*connect.Response[wrapperspb.StringValue], error) {
	return c.getLatestNotes.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) ListValues(ctx context.Context, req *connect.Request[v1.ListValuesRequest]) (*connect.Response[v1.ListValuesResponse], error) {
	return c.listValues.CallUnary(ctx, req)
}

func (c *DrinkServiceClient) LookupBeer(ctx context.Context, req *connect.Request[v1.LookupBeerRequest]) (*connect.Response[v1.LookupBeerResponse], error) {
	return c.lookupBeer.CallUnary(ctx, req)
}
