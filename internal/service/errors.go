package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/HrisheekeshS/Bill-Split/internal/calculator"
	"github.com/HrisheekeshS/Bill-Split/internal/storage"
)

var (
	ErrMissingName   = errors.New("enter a group name")
	ErrMissingGroup  = errors.New("group_id is required")
	ErrNotMember     = errors.New("you are not a member of this group")
	ErrNotCreator    = errors.New("only the group creator can delete it")
	ErrNotParty      = errors.New("you can only record payments you make or receive")
	ErrUnknownMember = errors.New("payment endpoints must be group members")
	ErrSelfPayment   = errors.New("payer and receiver must differ")
	ErrNoActor       = errors.New("no acting member on request")
)

// toConnectError classifies an error from the store, the calculator, or this
// package into a Connect error code.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrNotMember),
		errors.Is(err, ErrNotCreator),
		errors.Is(err, ErrNotParty):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, ErrNoActor):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, calculator.ErrEmptyDescription),
		errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, calculator.ErrInvalidPayer),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrMissingGroup),
		errors.Is(err, ErrUnknownMember),
		errors.Is(err, ErrSelfPayment):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
