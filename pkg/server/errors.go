package server

import (
	"errors"

	"github.com/bufbuild/connect-go"
	"google.golang.org/grpc/codes"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/stats"
)

var ErrInvalidInput = errors.New("bad request")

// connectError attaches a status code to err. Connect codes use the gRPC numbering, so
// the gRPC code converts directly.
func connectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	return connect.NewError(connect.Code(statusCode(err)), err)
}

func statusCode(err error) codes.Code {
	switch {
	case errors.Is(err, repository.ErrDrinkNotFound):
		return codes.NotFound
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, model.ErrInvalidDrink),
		errors.Is(err, repository.ErrUnknownFilter),
		errors.Is(err, repository.ErrInvalidFilter),
		errors.Is(err, repository.ErrUnknownColumn),
		errors.Is(err, repository.ErrMissingID):
		return codes.InvalidArgument
	case errors.Is(err, stats.ErrInvalidStdDrinkSize),
		errors.Is(err, stats.ErrInvalidWeekday):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
