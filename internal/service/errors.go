package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func notFound(entity string) error {
	return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

// lookupError maps a repository read failure onto not-found or internal.
func lookupError(err error, entity string) error {
	if isNotFound(err) {
		return notFound(entity)
	}
	return internalError(err, "failed to load "+entity)
}

// writeError keeps typed store errors (duplicate key, broken reference) and wraps the rest.
func writeError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return internalError(err, message)
}

// requireReference fails with a validation error when id does not resolve through find.
func requireReference[T any](ctx context.Context, field string, id int64, find func(context.Context, int64) (*T, error)) (*T, error) {
	record, err := find(ctx, id)
	if err == nil {
		return record, nil
	}
	if isNotFound(err) {
		return nil, appErrors.Validation("referenced record does not exist", appErrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("no record with id %d", id),
		})
	}
	return nil, internalError(err, "failed to verify "+field)
}
