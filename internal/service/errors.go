package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/lifecycle"
	"github.com/mmynk/drinkorder/internal/storage"
)

// errInvalidInput marks request validation failures.
var errInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalidInput, fmt.Sprintf(format, args...))
}

// connectError maps domain and storage errors onto Connect codes.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, lifecycle.ErrNotAcceptingChanges):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, lifecycle.ErrInvalidStatus), errors.Is(err, errInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
