package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"droscher.com/BuzzLog/pkg/auth"
	"droscher.com/BuzzLog/pkg/integrations"
	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/server/grpc"
	api "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
)

type DrinkServer struct {
	logger       *zap.Logger
	repository   repository.DrinkRepository
	integrations []integrations.Integration
}

// nameAndProducerColumn lists "<name> -- (<producer>)" labels for the Name & Producer filter.
const nameAndProducerColumn = "name_producer"

var columns = map[string]repository.Column{
	"name":     repository.NameColumn,
	"type":     repository.TypeColumn,
	"subtype":  repository.SubtypeColumn,
	"producer": repository.ProducerColumn,
}

func NewDrinkServer(repo repository.DrinkRepository, lookups []integrations.Integration, logger *zap.Logger) *DrinkServer {
	return &DrinkServer{repository: repo, integrations: lookups, logger: logger}
}

func (d *DrinkServer) AddDrink(ctx context.Context, request *connect.Request[api.AddDrinkRequest]) (*connect.Response[api.AddDrinkResponse], error) {
	if request.Msg.Drink == nil {
		return nil, connectError(fmt.Errorf("%w: drink is required", ErrInvalidInput))
	}

	drink := grpc.DrinkToModel(request.Msg.Drink)
	if err := drink.Validate(); err != nil {
		return nil, connectError(err)
	}

	newDrink, err := d.repository.AddDrink(ctx, drink)
	if err != nil {
		d.logger.Error("error adding drink", zap.String("name", drink.Name), zap.Error(err))

		return nil, connectError(err)
	}

	subject, _ := auth.Subject(ctx)
	d.logger.Info("added drink", zap.Uint("id", newDrink.ID), zap.String("name", newDrink.Name), zap.String("subject", subject))

	response := api.AddDrinkResponse{Drink: grpc.DrinkFromModel(newDrink)}

	return connect.NewResponse(&response), nil
}

func (d *DrinkServer) UpdateDrink(ctx context.Context, request *connect.Request[api.UpdateDrinkRequest]) (*connect.Response[api.UpdateDrinkResponse], error) {
	drink, err := d.repository.GetDrink(ctx, uint(request.Msg.Id))
	if err != nil {
		return nil, connectError(err)
	}

	grpc.ApplyUpdate(drink, request.Msg)

	if err = drink.Validate(); err != nil {
		return nil, connectError(err)
	}

	updated, err := d.repository.UpdateDrink(ctx, drink)
	if err != nil {
		d.logger.Error("error updating drink", zap.Uint64("id", request.Msg.Id), zap.Error(err))

		return nil, connectError(err)
	}

	response := api.UpdateDrinkResponse{Drink: grpc.DrinkFromModel(updated)}

	return connect.NewResponse(&response), nil
}

func (d *DrinkServer) DeleteDrink(ctx context.Context, request *connect.Request[api.DeleteDrinkRequest]) (*connect.Response[emptypb.Empty], error) {
	if err := d.repository.DeleteDrink(ctx, uint(request.Msg.Id)); err != nil {
		return nil, connectError(err)
	}

	d.logger.Info("deleted drink", zap.Uint64("id", request.Msg.Id))

	return connect.NewResponse(&emptypb.Empty{}), nil
}

func (d *DrinkServer) ListDrinks(ctx context.Context, request *connect.Request[api.ListDrinksRequest]) (*connect.Response[api.ListDrinksResponse], error) {
	var (
		drinks []*model.Drink
		err    error
	)

	if len(request.Msg.FilterKind) == 0 {
		drinks, err = d.repository.ListDrinks(ctx)
	} else {
		var filter repository.Filter

		filter, err = repository.ParseFilter(repository.FilterKind(request.Msg.FilterKind), request.Msg.FilterValue)
		if err != nil {
			return nil, connectError(err)
		}

		drinks, err = d.repository.Filter(ctx, filter)
	}

	if err != nil {
		return nil, connectError(err)
	}

	response := api.ListDrinksResponse{Drinks: grpc.DrinksFromModel(drinks)}

	return connect.NewResponse(&response), nil
}

func (d *DrinkServer) GetLatestNotes(ctx context.Context, request *connect.Request[api.GetLatestNotesRequest]) (*connect.Response[wrapperspb.StringValue], error) {
	alcoholType, err := model.ParseAlcoholType(request.Msg.AlcoholType)
	if err != nil {
		return nil, connectError(err)
	}

	notes, err := d.repository.GetLatestNotes(ctx, request.Msg.Name, alcoholType)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(wrapperspb.String(notes)), nil
}

func (d *DrinkServer) ListValues(ctx context.Context, request *connect.Request[api.ListValuesRequest]) (*connect.Response[api.ListValuesResponse], error) {
	alcoholType, err := model.ParseAlcoholType(request.Msg.AlcoholType)
	if err != nil {
		return nil, connectError(err)
	}

	var values []string

	if request.Msg.Column == nameAndProducerColumn {
		values, err = d.repository.DistinctNamesAndProducers(ctx, alcoholType)
	} else {
		column, found := columns[request.Msg.Column]
		if !found {
			return nil, connectError(fmt.Errorf("%w: %q", repository.ErrUnknownColumn, request.Msg.Column))
		}

		values, err = d.repository.DistinctValues(ctx, alcoholType, column)
	}

	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListValuesResponse{Values: values}), nil
}

// LookupBeer asks every configured integration. A failing integration is logged and
// skipped so the others can still answer.
func (d *DrinkServer) LookupBeer(_ context.Context, request *connect.Request[api.LookupBeerRequest]) (*connect.Response[api.LookupBeerResponse], error) {
	drinks := make([]*api.Drink, 0)

	for _, integration := range d.integrations {
		found, err := integration.FindBeer(request.Msg.Query)
		if err != nil {
			d.logger.Error("failed beer search", zap.String("query", request.Msg.Query), zap.Error(err))

			continue
		}

		for index := range found {
			drinks = append(drinks, grpc.DrinkFromModel(&found[index]))
		}
	}

	response := api.LookupBeerResponse{Drinks: drinks}

	return connect.NewResponse(&response), nil
}
