package handler

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/errs"
	"github.com/deppfellow/health-tracker/internal/repository"
)

// requireUser returns a 404 when userID names no user.
func requireUser(ctx context.Context, users repository.UserStore, userID int) error {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NewResourceNotFoundError("user")
	}
	return nil
}

// affected maps an update/delete row count onto the response: zero rows
// is a 404 for resource.
func affected(count int64, err error, resource string) error {
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewResourceNotFoundError(resource)
	}
	return nil
}

// found dereferences a lookup result, 404 when it is nil.
func found[T any](item *T, err error, resource string) (*T, error) {
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NewResourceNotFoundError(resource)
	}
	return item, nil
}
